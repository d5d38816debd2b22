// internal/service/asset_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"prospera/internal/currency"
	"prospera/internal/domain"
	"prospera/internal/repository"
	"prospera/internal/util"
)

var oneHundred = decimal.NewFromInt(100)

// AssetService defines the interface for asset-related business logic:
// CRUD over the repository plus the valuation operations (net worth,
// category distribution, per-asset performance).
type AssetService interface {
	Add(ctx context.Context, asset *domain.Asset) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	UpdateValue(ctx context.Context, id uuid.UUID, value decimal.Decimal) error
	Remove(ctx context.Context, id uuid.UUID) error

	NetWorth(ctx context.Context, ownerID uuid.UUID, baseCurrency string) (decimal.Decimal, error)
	Distribution(ctx context.Context, ownerID uuid.UUID, baseCurrency string) (map[domain.AssetCategory]decimal.Decimal, error)
	Performance(ctx context.Context, ownerID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
	NonZakatable(ctx context.Context, ownerID uuid.UUID) ([]domain.Asset, error)
}

// assetService implements the AssetService interface.
type assetService struct {
	dbExecutor repository.DBExecutor
	assetRepo  repository.AssetRepository
	rates      *currency.Table
}

// NewAssetService creates a new instance of AssetService. The rate table is
// an injected snapshot; callers that need isolated rates pass their own.
func NewAssetService(dbExecutor repository.DBExecutor, assetRepo repository.AssetRepository, rates *currency.Table) AssetService {
	return &assetService{
		dbExecutor: dbExecutor,
		assetRepo:  assetRepo,
		rates:      rates,
	}
}

// validateAsset enforces the asset invariants: known category, non-negative
// purchase price and current value, and a non-empty name.
func validateAsset(asset *domain.Asset) error {
	if asset == nil || asset.Name == "" {
		return util.ErrInvalidInput
	}
	if !asset.Category.Valid() {
		return fmt.Errorf("unknown category %q: %w", asset.Category, util.ErrInvalidInput)
	}
	if asset.PurchasePrice.IsNegative() || asset.CurrentValue.IsNegative() {
		return fmt.Errorf("negative amount: %w", util.ErrInvalidInput)
	}
	return nil
}

// Add stores a new asset after validating its invariants.
func (s *assetService) Add(ctx context.Context, asset *domain.Asset) error {
	if err := validateAsset(asset); err != nil {
		return err
	}
	if err := s.assetRepo.CreateAsset(ctx, s.dbExecutor, asset); err != nil {
		return fmt.Errorf("add asset: %w", err)
	}
	return nil
}

// Get retrieves an asset by ID.
func (s *assetService) Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	asset, err := s.assetRepo.GetAssetByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrAssetNotFound
		}
		return nil, fmt.Errorf("get asset %s: %w", id, err)
	}
	return asset, nil
}

// List retrieves all assets of an owner in insertion order.
func (s *assetService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssetsByOwner(ctx, s.dbExecutor, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list assets for %s: %w", ownerID, err)
	}
	return assets, nil
}

// Update replaces the mutable fields of an existing asset.
func (s *assetService) Update(ctx context.Context, asset *domain.Asset) error {
	if err := validateAsset(asset); err != nil {
		return err
	}
	if err := s.assetRepo.UpdateAsset(ctx, s.dbExecutor, asset); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrAssetNotFound
		}
		return fmt.Errorf("update asset %s: %w", asset.ID, err)
	}
	return nil
}

// UpdateValue sets a new current value for an asset.
func (s *assetService) UpdateValue(ctx context.Context, id uuid.UUID, value decimal.Decimal) error {
	if value.IsNegative() {
		return fmt.Errorf("negative amount: %w", util.ErrInvalidInput)
	}
	if err := s.assetRepo.UpdateCurrentValue(ctx, s.dbExecutor, id, value); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrAssetNotFound
		}
		return fmt.Errorf("update value for asset %s: %w", id, err)
	}
	return nil
}

// Remove deletes an asset.
func (s *assetService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.assetRepo.DeleteAsset(ctx, s.dbExecutor, id); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrAssetNotFound
		}
		return fmt.Errorf("remove asset %s: %w", id, err)
	}
	return nil
}

// NetWorth sums the owner's asset values converted to baseCurrency. Assets
// whose currency cannot be converted contribute zero rather than aborting
// the aggregate; callers needing strict behavior must pre-validate.
func (s *assetService) NetWorth(ctx context.Context, ownerID uuid.UUID, baseCurrency string) (decimal.Decimal, error) {
	assets, err := s.List(ctx, ownerID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range assets {
		converted, err := s.rates.Convert(assets[i].Currency, baseCurrency, assets[i].CurrentValue)
		if err != nil {
			continue // best effort for aggregate displays
		}
		total = total.Add(converted)
	}
	return total, nil
}

// Distribution returns the share of each asset category in the owner's net
// worth, as percentages scaled to 4 decimal places, HALF_UP. The mapping is
// empty when total net worth is zero.
func (s *assetService) Distribution(ctx context.Context, ownerID uuid.UUID, baseCurrency string) (map[domain.AssetCategory]decimal.Decimal, error) {
	assets, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	byCategory := make(map[domain.AssetCategory]decimal.Decimal)
	for i := range assets {
		converted, err := s.rates.Convert(assets[i].Currency, baseCurrency, assets[i].CurrentValue)
		if err != nil {
			continue
		}
		total = total.Add(converted)
		byCategory[assets[i].Category] = byCategory[assets[i].Category].Add(converted)
	}

	distribution := make(map[domain.AssetCategory]decimal.Decimal, len(byCategory))
	if total.IsZero() {
		return distribution, nil
	}
	for category, sum := range byCategory {
		distribution[category] = sum.Div(total).Mul(oneHundred).Round(4)
	}
	return distribution, nil
}

// Performance maps each of the owner's assets to its ROI percentage.
func (s *assetService) Performance(ctx context.Context, ownerID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	assets, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	performance := make(map[uuid.UUID]decimal.Decimal, len(assets))
	for i := range assets {
		performance[assets[i].ID] = assets[i].ROI()
	}
	return performance, nil
}

// NonZakatable lists the owner's assets excluded from zakat by flag.
func (s *assetService) NonZakatable(ctx context.Context, ownerID uuid.UUID) ([]domain.Asset, error) {
	assets, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	excluded := []domain.Asset{}
	for i := range assets {
		if !assets[i].Zakatable {
			excluded = append(excluded, assets[i])
		}
	}
	return excluded, nil
}
