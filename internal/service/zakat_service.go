// internal/service/zakat_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"prospera/internal/currency"
	"prospera/internal/domain"
	"prospera/internal/repository"
	"prospera/internal/util"
	"prospera/internal/zakat"
)

// AssessmentInput carries the caller-supplied market data for one zakat
// computation: per-gram metal spot prices and the currency every figure is
// expressed in. Prices are externally supplied, never fetched.
type AssessmentInput struct {
	GoldPricePerGram   decimal.Decimal
	SilverPricePerGram decimal.Decimal
	Currency           string
}

// AssessmentResult is the outcome of one zakat workflow: the dual
// assessment plus the selection actually counted after eligibility
// filtering, all normalized to Currency.
type AssessmentResult struct {
	zakat.Assessment
	Currency string      `json:"currency"`
	Counted  []uuid.UUID `json:"counted_asset_ids"`
}

// HawlAnnotation decorates an asset with its hawl state for the selection
// view. CompletionDate is nil when the asset has no purchase date.
type HawlAnnotation struct {
	Asset          domain.Asset     `json:"asset"`
	CompletionDate *time.Time       `json:"hawl_completion_date"`
	Status         zakat.HawlStatus `json:"hawl_status,omitempty"`
}

// ZakatService orchestrates the zakat workflow: selection, eligibility
// filtering, currency normalization, nisab thresholds, and the levy.
type ZakatService interface {
	// Assess computes the dual gold/silver zakat figures over the owner's
	// selected assets. Every selected value is normalized into
	// input.Currency before any total is computed; an unconvertible
	// currency aborts the whole assessment.
	Assess(ctx context.Context, ownerID uuid.UUID, selectedIDs []uuid.UUID, input AssessmentInput) (*AssessmentResult, error)
	// AnnotateHawl returns the owner's assets with their hawl dates and
	// states for the selection view.
	AnnotateHawl(ctx context.Context, ownerID uuid.UUID) ([]HawlAnnotation, error)
}

// zakatService implements the ZakatService interface.
type zakatService struct {
	dbExecutor repository.DBExecutor
	assetRepo  repository.AssetRepository
	rates      *currency.Table
	hawl       *zakat.Tracker
}

// NewZakatService creates a new instance of ZakatService.
func NewZakatService(dbExecutor repository.DBExecutor, assetRepo repository.AssetRepository,
	rates *currency.Table, hawl *zakat.Tracker) ZakatService {
	return &zakatService{
		dbExecutor: dbExecutor,
		assetRepo:  assetRepo,
		rates:      rates,
		hawl:       hawl,
	}
}

func (s *zakatService) Assess(ctx context.Context, ownerID uuid.UUID, selectedIDs []uuid.UUID, input AssessmentInput) (*AssessmentResult, error) {
	if input.Currency == "" {
		return nil, fmt.Errorf("assess: missing assessment currency: %w", util.ErrInvalidInput)
	}

	assets, err := s.assetRepo.ListAssetsByOwner(ctx, s.dbExecutor, ownerID)
	if err != nil {
		return nil, fmt.Errorf("assess: failed to list assets for %s: %w", ownerID, err)
	}
	byID := make(map[uuid.UUID]*domain.Asset, len(assets))
	for i := range assets {
		byID[assets[i].ID] = &assets[i]
	}

	// Selection order is the caller's; assets not owned by ownerID are a
	// hard error rather than a silent skip.
	values := make([]decimal.Decimal, 0, len(selectedIDs))
	counted := make([]uuid.UUID, 0, len(selectedIDs))
	for _, id := range selectedIDs {
		asset, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("assess: asset %s: %w", id, util.ErrAssetNotFound)
		}
		if !asset.Zakatable {
			continue
		}
		passed, err := s.hawl.HasPassed(asset)
		if err != nil {
			return nil, fmt.Errorf("assess: %w", err)
		}
		if !passed {
			continue
		}
		// Normalize before selection enters the zakat math: conversion
		// failures abort here, before any total exists.
		converted, err := s.rates.Convert(asset.Currency, input.Currency, asset.CurrentValue)
		if err != nil {
			return nil, fmt.Errorf("assess: asset %s: %w", id, err)
		}
		values = append(values, converted)
		counted = append(counted, id)
	}

	thresholds := zakat.ComputeThresholds(input.GoldPricePerGram, input.SilverPricePerGram)
	return &AssessmentResult{
		Assessment: zakat.Assess(thresholds, values),
		Currency:   input.Currency,
		Counted:    counted,
	}, nil
}

func (s *zakatService) AnnotateHawl(ctx context.Context, ownerID uuid.UUID) ([]HawlAnnotation, error) {
	assets, err := s.assetRepo.ListAssetsByOwner(ctx, s.dbExecutor, ownerID)
	if err != nil {
		return nil, fmt.Errorf("annotate hawl: failed to list assets for %s: %w", ownerID, err)
	}

	annotations := make([]HawlAnnotation, 0, len(assets))
	for i := range assets {
		annotation := HawlAnnotation{Asset: assets[i]}
		completion, err := s.hawl.CompletionDate(&assets[i])
		if err == nil {
			status, statusErr := s.hawl.Status(&assets[i])
			if statusErr != nil {
				return nil, fmt.Errorf("annotate hawl: %w", statusErr)
			}
			annotation.CompletionDate = &completion
			annotation.Status = status
		} else if !util.IsError(err, util.ErrMissingPurchaseDate) {
			return nil, fmt.Errorf("annotate hawl: %w", err)
		}
		annotations = append(annotations, annotation)
	}
	return annotations, nil
}
