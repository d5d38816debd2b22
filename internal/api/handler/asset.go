// internal/api/handler/asset.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"prospera/internal/api/types"
	"prospera/internal/domain"
	"prospera/internal/report"
	"prospera/internal/service"
	"prospera/internal/util"
)

// AssetHandler handles HTTP requests for asset management and valuation.
type AssetHandler struct {
	service service.AssetService
	reports *report.Builder
	logger  *slog.Logger
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(svc service.AssetService, reports *report.Builder, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		service: svc,
		reports: reports,
		logger:  logger,
	}
}

// AssetRequest represents the request body for creating or updating an asset.
type AssetRequest struct {
	OwnerID       uuid.UUID            `json:"owner_id"`
	Name          string               `json:"name"`
	Category      domain.AssetCategory `json:"category"`
	PurchasePrice decimal.Decimal      `json:"purchase_price"`
	PurchaseDate  *time.Time           `json:"purchase_date"`
	CurrentValue  decimal.Decimal      `json:"current_value"`
	Currency      string               `json:"currency"`
	Zakatable     *bool                `json:"zakatable"`
}

// Create handles POST /assets.
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	asset := domain.NewAsset(req.OwnerID, req.Name, req.Category, req.PurchasePrice, req.PurchaseDate, req.CurrentValue, req.Currency)
	if req.Zakatable != nil {
		asset.Zakatable = *req.Zakatable
	}
	if err := h.service.Add(r.Context(), asset); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusCreated, asset)
}

// Get handles GET /assets/{assetID}.
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "assetID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	asset, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, asset)
}

// Update handles PUT /assets/{assetID}.
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "assetID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	var req AssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	asset := &domain.Asset{
		ID:            id,
		OwnerID:       req.OwnerID,
		Name:          req.Name,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		CurrentValue:  req.CurrentValue,
		Currency:      req.Currency,
		Zakatable:     req.Zakatable == nil || *req.Zakatable,
	}
	if err := h.service.Update(r.Context(), asset); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, asset)
}

// UpdateValueRequest represents the request body for a value edit.
type UpdateValueRequest struct {
	CurrentValue decimal.Decimal `json:"current_value"`
}

// UpdateValue handles PUT /assets/{assetID}/value.
func (h *AssetHandler) UpdateValue(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "assetID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	var req UpdateValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if err := h.service.UpdateValue(r.Context(), id, req.CurrentValue); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"asset_id":      id,
		"current_value": req.CurrentValue,
	})
}

// Delete handles DELETE /assets/{assetID}.
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "assetID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if err := h.service.Remove(r.Context(), id); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListByOwner handles GET /users/{userID}/assets.
func (h *AssetHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathUUID(r, "userID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	assets, err := h.service.List(r.Context(), ownerID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, types.ListResponse[domain.Asset]{Data: assets, Count: len(assets)})
}

// NetWorth handles GET /users/{userID}/networth?base=USD.
func (h *AssetHandler) NetWorth(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathUUID(r, "userID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	base := baseCurrency(r)
	netWorth, err := h.service.NetWorth(r.Context(), ownerID, base)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"owner_id":      ownerID,
		"base_currency": base,
		"net_worth":     netWorth,
		"display":       report.FormatAmount(netWorth, base),
	})
}

// Distribution handles GET /users/{userID}/distribution?base=USD.
func (h *AssetHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathUUID(r, "userID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	base := baseCurrency(r)
	distribution, err := h.service.Distribution(r.Context(), ownerID, base)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"owner_id":      ownerID,
		"base_currency": base,
		"distribution":  distribution,
	})
}

// Report handles GET /users/{userID}/report?base=USD.
func (h *AssetHandler) Report(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathUUID(r, "userID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	data, err := h.reports.Build(r.Context(), ownerID, baseCurrency(r))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, data)
}

func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, param))
}

func baseCurrency(r *http.Request) string {
	if base := r.URL.Query().Get("base"); base != "" {
		return base
	}
	return "USD"
}
