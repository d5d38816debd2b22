// internal/service/asset_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prospera/internal/currency"
	"prospera/internal/domain"
	"prospera/internal/util"
)

func newTestAssetService(t *testing.T) (AssetService, *MockAssetRepository) {
	t.Helper()
	assetRepo := new(MockAssetRepository)
	return NewAssetService(new(MockDBExecutor), assetRepo, currency.NewTable()), assetRepo
}

func testAsset(ownerID uuid.UUID, category domain.AssetCategory, value, code string) domain.Asset {
	purchase := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return domain.Asset{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          "test asset",
		Category:      category,
		PurchasePrice: decimal.RequireFromString(value),
		PurchaseDate:  &purchase,
		CurrentValue:  decimal.RequireFromString(value),
		Currency:      code,
		Zakatable:     true,
	}
}

func TestNetWorth(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	ownerID := uuid.New()

	// 1000 USD + 1000 EUR at rate 1.13 = 2130.00 USD
	assets := []domain.Asset{
		testAsset(ownerID, domain.CategoryCash, "1000", "USD"),
		testAsset(ownerID, domain.CategoryStocks, "1000", "EUR"),
	}
	assetRepo.On("ListAssetsByOwner", mock.Anything, mock.Anything, ownerID).Return(assets, nil)

	netWorth, err := svc.NetWorth(context.Background(), ownerID, "USD")
	require.NoError(t, err)
	assert.True(t, netWorth.Equal(decimal.RequireFromString("2130.00")), "got %s", netWorth)
}

func TestNetWorthSkipsUnconvertibleAssets(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	ownerID := uuid.New()

	// The XYZ asset has no registered rate and must contribute zero
	// instead of failing the aggregate.
	assets := []domain.Asset{
		testAsset(ownerID, domain.CategoryCash, "1000", "USD"),
		testAsset(ownerID, domain.CategoryCrypto, "9999", "XYZ"),
	}
	assetRepo.On("ListAssetsByOwner", mock.Anything, mock.Anything, ownerID).Return(assets, nil)

	netWorth, err := svc.NetWorth(context.Background(), ownerID, "USD")
	require.NoError(t, err)
	assert.True(t, netWorth.Equal(decimal.RequireFromString("1000.00")), "got %s", netWorth)
}

func TestNetWorthIsIdempotent(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	ownerID := uuid.New()

	assets := []domain.Asset{
		testAsset(ownerID, domain.CategoryCash, "123.45", "GBP"),
		testAsset(ownerID, domain.CategoryGold, "67.89", "EGP"),
	}
	assetRepo.On("ListAssetsByOwner", mock.Anything, mock.Anything, ownerID).Return(assets, nil)

	first, err := svc.NetWorth(context.Background(), ownerID, "USD")
	require.NoError(t, err)
	second, err := svc.NetWorth(context.Background(), ownerID, "USD")
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestDistribution(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	ownerID := uuid.New()

	// equal converted values in two categories: 50% each
	assets := []domain.Asset{
		testAsset(ownerID, domain.CategoryCash, "1130", "USD"),
		testAsset(ownerID, domain.CategoryStocks, "1000", "EUR"),
	}
	assetRepo.On("ListAssetsByOwner", mock.Anything, mock.Anything, ownerID).Return(assets, nil)

	distribution, err := svc.Distribution(context.Background(), ownerID, "USD")
	require.NoError(t, err)
	require.Len(t, distribution, 2)
	assert.Equal(t, "50.0000", distribution[domain.CategoryCash].StringFixed(4))
	assert.Equal(t, "50.0000", distribution[domain.CategoryStocks].StringFixed(4))
}

func TestDistributionZeroTotal(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	ownerID := uuid.New()

	assets := []domain.Asset{
		testAsset(ownerID, domain.CategoryCash, "0", "USD"),
	}
	assetRepo.On("ListAssetsByOwner", mock.Anything, mock.Anything, ownerID).Return(assets, nil)

	distribution, err := svc.Distribution(context.Background(), ownerID, "USD")
	require.NoError(t, err)
	assert.Empty(t, distribution)
}

func TestDistributionGroupsByCategory(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	ownerID := uuid.New()

	assets := []domain.Asset{
		testAsset(ownerID, domain.CategoryCash, "250", "USD"),
		testAsset(ownerID, domain.CategoryCash, "250", "USD"),
		testAsset(ownerID, domain.CategoryGold, "500", "USD"),
	}
	assetRepo.On("ListAssetsByOwner", mock.Anything, mock.Anything, ownerID).Return(assets, nil)

	distribution, err := svc.Distribution(context.Background(), ownerID, "USD")
	require.NoError(t, err)
	require.Len(t, distribution, 2)
	assert.Equal(t, "50.0000", distribution[domain.CategoryCash].StringFixed(4))
	assert.Equal(t, "50.0000", distribution[domain.CategoryGold].StringFixed(4))
}

func TestPerformance(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	ownerID := uuid.New()

	gainer := testAsset(ownerID, domain.CategoryStocks, "100", "USD")
	gainer.CurrentValue = decimal.RequireFromString("150")
	flat := testAsset(ownerID, domain.CategoryCash, "100", "USD")

	assetRepo.On("ListAssetsByOwner", mock.Anything, mock.Anything, ownerID).
		Return([]domain.Asset{gainer, flat}, nil)

	performance, err := svc.Performance(context.Background(), ownerID)
	require.NoError(t, err)
	assert.True(t, performance[gainer.ID].Equal(decimal.NewFromInt(50)), "got %s", performance[gainer.ID])
	assert.True(t, performance[flat.ID].IsZero())
}

func TestAddValidation(t *testing.T) {
	svc, _ := newTestAssetService(t)
	ownerID := uuid.New()

	bad := testAsset(ownerID, "BEANIE_BABIES", "100", "USD")
	assert.ErrorIs(t, svc.Add(context.Background(), &bad), util.ErrInvalidInput)

	negative := testAsset(ownerID, domain.CategoryCash, "100", "USD")
	negative.CurrentValue = decimal.RequireFromString("-1")
	assert.ErrorIs(t, svc.Add(context.Background(), &negative), util.ErrInvalidInput)

	unnamed := testAsset(ownerID, domain.CategoryCash, "100", "USD")
	unnamed.Name = ""
	assert.ErrorIs(t, svc.Add(context.Background(), &unnamed), util.ErrInvalidInput)
}

func TestAdd(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	asset := testAsset(uuid.New(), domain.CategoryCash, "100", "USD")

	assetRepo.On("CreateAsset", mock.Anything, mock.Anything, &asset).Return(nil)
	require.NoError(t, svc.Add(context.Background(), &asset))
	assetRepo.AssertExpectations(t)
}

func TestGetNotFound(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	id := uuid.New()

	assetRepo.On("GetAssetByID", mock.Anything, mock.Anything, id).Return(nil, util.ErrNotFound)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, util.ErrAssetNotFound)
}

func TestUpdateValueRejectsNegative(t *testing.T) {
	svc, _ := newTestAssetService(t)

	err := svc.UpdateValue(context.Background(), uuid.New(), decimal.RequireFromString("-5"))
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestNonZakatable(t *testing.T) {
	svc, assetRepo := newTestAssetService(t)
	ownerID := uuid.New()

	excluded := testAsset(ownerID, domain.CategoryRealEstate, "5000", "USD")
	excluded.Zakatable = false
	included := testAsset(ownerID, domain.CategoryCash, "100", "USD")

	assetRepo.On("ListAssetsByOwner", mock.Anything, mock.Anything, ownerID).
		Return([]domain.Asset{excluded, included}, nil)

	assets, err := svc.NonZakatable(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, excluded.ID, assets[0].ID)
}
