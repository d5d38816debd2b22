// internal/repository/postgres/asset_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"prospera/internal/domain"
	"prospera/internal/repository"
	"prospera/internal/util"
)

// AssetRepository implements repository.AssetRepository for PostgreSQL.
type AssetRepository struct{}

// NewAssetRepository creates a new AssetRepository. Methods receive a
// DBExecutor directly, so no connection is stored.
func NewAssetRepository(db *sqlx.DB) repository.AssetRepository {
	return &AssetRepository{}
}

const assetColumns = `id, owner_id, name, category, purchase_price, purchase_date, current_value, currency, zakatable, created_at, updated_at`

// CreateAsset inserts a new asset using the provided DBExecutor.
func (r *AssetRepository) CreateAsset(ctx context.Context, q repository.DBExecutor, asset *domain.Asset) error {
	query := `INSERT INTO assets (id, owner_id, name, category, purchase_price, purchase_date, current_value, currency, zakatable, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := q.ExecContext(ctx, query,
		asset.ID, asset.OwnerID, asset.Name, asset.Category, asset.PurchasePrice,
		asset.PurchaseDate, asset.CurrentValue, asset.Currency, asset.Zakatable,
		asset.CreatedAt, asset.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// GetAssetByID retrieves an asset by its ID using the provided DBExecutor.
func (r *AssetRepository) GetAssetByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Asset, error) {
	var asset domain.Asset
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	err := q.GetContext(ctx, &asset, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get asset by ID %s: %w", id, err)
	}
	return &asset, nil
}

// ListAssetsByOwner retrieves a user's assets in insertion order.
func (r *AssetRepository) ListAssetsByOwner(ctx context.Context, q repository.DBExecutor, ownerID uuid.UUID) ([]domain.Asset, error) {
	assets := []domain.Asset{}
	query := `SELECT ` + assetColumns + ` FROM assets WHERE owner_id = $1 ORDER BY created_at, id`
	if err := q.SelectContext(ctx, &assets, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list assets for owner %s: %w", ownerID, err)
	}
	return assets, nil
}

// UpdateAsset replaces the mutable fields of an existing asset.
func (r *AssetRepository) UpdateAsset(ctx context.Context, q repository.DBExecutor, asset *domain.Asset) error {
	query := `UPDATE assets
              SET owner_id = $1, name = $2, category = $3, purchase_price = $4, purchase_date = $5,
                  current_value = $6, currency = $7, zakatable = $8, updated_at = $9
              WHERE id = $10`
	result, err := q.ExecContext(ctx, query,
		asset.OwnerID, asset.Name, asset.Category, asset.PurchasePrice, asset.PurchaseDate,
		asset.CurrentValue, asset.Currency, asset.Zakatable, time.Now().UTC(), asset.ID)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.ID, err)
	}
	return requireRowsAffected(result, asset.ID)
}

// UpdateCurrentValue sets a new current value for the asset.
func (r *AssetRepository) UpdateCurrentValue(ctx context.Context, q repository.DBExecutor, id uuid.UUID, value decimal.Decimal) error {
	query := `UPDATE assets SET current_value = $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, value, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update current value for asset %s: %w", id, err)
	}
	return requireRowsAffected(result, id)
}

// DeleteAsset removes an asset.
func (r *AssetRepository) DeleteAsset(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	result, err := q.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", id, err)
	}
	return requireRowsAffected(result, id)
}

// requireRowsAffected maps a zero-row write to ErrNotFound.
func requireRowsAffected(result sql.Result, id uuid.UUID) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for asset %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
