// internal/domain/asset.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// AssetCategory classifies an asset. The set is closed.
type AssetCategory string

const (
	CategoryCash       AssetCategory = "CASH"
	CategoryStocks     AssetCategory = "STOCKS"
	CategoryGold       AssetCategory = "GOLD"
	CategoryRealEstate AssetCategory = "REAL_ESTATE"
	CategoryCrypto     AssetCategory = "CRYPTO"
	CategoryOther      AssetCategory = "OTHER"
)

// Valid reports whether c is one of the known categories.
func (c AssetCategory) Valid() bool {
	switch c {
	case CategoryCash, CategoryStocks, CategoryGold, CategoryRealEstate, CategoryCrypto, CategoryOther:
		return true
	}
	return false
}

// Asset represents a single holding owned by a user.
// Purchase price and current value are tagged with the asset's currency code.
type Asset struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	OwnerID       uuid.UUID       `db:"owner_id" json:"owner_id"`
	Name          string          `db:"name" json:"name"`
	Category      AssetCategory   `db:"category" json:"category"`
	PurchasePrice decimal.Decimal `db:"purchase_price" json:"purchase_price"`
	PurchaseDate  *time.Time      `db:"purchase_date" json:"purchase_date"` // nil when unknown
	CurrentValue  decimal.Decimal `db:"current_value" json:"current_value"`
	Currency      string          `db:"currency" json:"currency"` // ISO 4217-style 3-letter code
	Zakatable     bool            `db:"zakatable" json:"zakatable"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// NewAsset creates a new Asset instance. Assets are zakatable unless the
// owner opts them out later.
func NewAsset(ownerID uuid.UUID, name string, category AssetCategory, purchasePrice decimal.Decimal,
	purchaseDate *time.Time, currentValue decimal.Decimal, currency string) *Asset {
	now := time.Now().UTC()
	return &Asset{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		Category:      category,
		PurchasePrice: purchasePrice,
		PurchaseDate:  purchaseDate,
		CurrentValue:  currentValue,
		Currency:      currency,
		Zakatable:     true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ROI returns the return on investment as a percentage, scaled to 4 decimal
// places, HALF_UP. Zero when the purchase price is zero or unset.
func (a *Asset) ROI() decimal.Decimal {
	if a.PurchasePrice.IsZero() {
		return decimal.Zero
	}
	profit := a.CurrentValue.Sub(a.PurchasePrice)
	return profit.DivRound(a.PurchasePrice, 4).Mul(decimal.NewFromInt(100))
}
