// internal/report/report.go

// Package report assembles the valuation data consumed by downstream
// renderers. Rendering itself (PDF, spreadsheets) is out of scope here.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"prospera/internal/domain"
	"prospera/internal/repository"
	"prospera/internal/service"
	"prospera/internal/util"
)

// Data is one user's complete valuation snapshot.
type Data struct {
	User         *domain.User                             `json:"user"`
	Assets       []domain.Asset                           `json:"assets"`
	NetWorth     decimal.Decimal                          `json:"net_worth"`
	Distribution map[domain.AssetCategory]decimal.Decimal `json:"distribution"`
	BaseCurrency string                                   `json:"base_currency"`
	GeneratedAt  time.Time                                `json:"generated_at"`
}

// Builder assembles report data from the user repository and the asset
// valuation service.
type Builder struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	assets     service.AssetService
}

// NewBuilder creates a new Builder.
func NewBuilder(dbExecutor repository.DBExecutor, userRepo repository.UserRepository, assets service.AssetService) *Builder {
	return &Builder{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		assets:     assets,
	}
}

// Build assembles the report data for one user with all values expressed in
// baseCurrency.
func (b *Builder) Build(ctx context.Context, ownerID uuid.UUID, baseCurrency string) (*Data, error) {
	user, err := b.userRepo.GetUserByID(ctx, b.dbExecutor, ownerID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("build report: failed to get user %s: %w", ownerID, err)
	}

	assets, err := b.assets.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	netWorth, err := b.assets.NetWorth(ctx, ownerID, baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	distribution, err := b.assets.Distribution(ctx, ownerID, baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	return &Data{
		User:         user,
		Assets:       assets,
		NetWorth:     netWorth,
		Distribution: distribution,
		BaseCurrency: baseCurrency,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// FormatAmount renders an amount in the display convention of its currency
// (symbol, grouping, fraction digits).
func FormatAmount(amount decimal.Decimal, code string) string {
	cur := money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}
