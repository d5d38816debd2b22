// internal/api/handler/zakat.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"prospera/internal/api/types"
	"prospera/internal/service"
	"prospera/internal/util"
)

// ZakatHandler handles HTTP requests for zakat assessments and the
// hawl-annotated selection view.
type ZakatHandler struct {
	service service.ZakatService
	logger  *slog.Logger
}

// NewZakatHandler creates a new ZakatHandler.
func NewZakatHandler(svc service.ZakatService, logger *slog.Logger) *ZakatHandler {
	return &ZakatHandler{
		service: svc,
		logger:  logger,
	}
}

// AssessmentRequest represents the request body for a zakat computation.
// Metal prices are per gram, quoted in Currency.
type AssessmentRequest struct {
	OwnerID            uuid.UUID       `json:"owner_id"`
	AssetIDs           []uuid.UUID     `json:"asset_ids"`
	GoldPricePerGram   decimal.Decimal `json:"gold_price_per_gram"`
	SilverPricePerGram decimal.Decimal `json:"silver_price_per_gram"`
	Currency           string          `json:"currency"`
}

// Assess handles POST /zakat/assessments.
func (h *ZakatHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.Currency == "" {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	result, err := h.service.Assess(r.Context(), req.OwnerID, req.AssetIDs, service.AssessmentInput{
		GoldPricePerGram:   req.GoldPricePerGram,
		SilverPricePerGram: req.SilverPricePerGram,
		Currency:           req.Currency,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, result)
}

// Hawl handles GET /users/{userID}/hawl.
func (h *ZakatHandler) Hawl(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathUUID(r, "userID")
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	annotations, err := h.service.AnnotateHawl(r.Context(), ownerID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, types.ListResponse[service.HawlAnnotation]{Data: annotations, Count: len(annotations)})
}
