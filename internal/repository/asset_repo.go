// internal/repository/asset_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"prospera/internal/domain"
)

// AssetRepository defines the interface for asset data operations.
type AssetRepository interface {
	// CreateAsset adds a new asset using the provided DBExecutor.
	CreateAsset(ctx context.Context, q DBExecutor, asset *domain.Asset) error
	// GetAssetByID retrieves an asset by its ID using the provided DBExecutor.
	GetAssetByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Asset, error)
	// ListAssetsByOwner retrieves all assets of a user in insertion order.
	ListAssetsByOwner(ctx context.Context, q DBExecutor, ownerID uuid.UUID) ([]domain.Asset, error)
	// UpdateAsset replaces the mutable fields of an existing asset.
	UpdateAsset(ctx context.Context, q DBExecutor, asset *domain.Asset) error
	// UpdateCurrentValue sets a new current value for the asset.
	UpdateCurrentValue(ctx context.Context, q DBExecutor, id uuid.UUID, value decimal.Decimal) error
	// DeleteAsset removes an asset. Deleting a missing asset is an ErrNotFound.
	DeleteAsset(ctx context.Context, q DBExecutor, id uuid.UUID) error
}
