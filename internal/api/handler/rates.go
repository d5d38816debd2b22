// internal/api/handler/rates.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"prospera/internal/currency"
	"prospera/internal/util"
)

// RateHandler handles exchange-rate registration and lookup.
type RateHandler struct {
	rates  *currency.Table
	logger *slog.Logger
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rates *currency.Table, logger *slog.Logger) *RateHandler {
	return &RateHandler{
		rates:  rates,
		logger: logger,
	}
}

// RegisterRateRequest represents the request body for a rate update.
// The rate is relative to the USD numeraire.
type RegisterRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// Register handles PUT /rates/{code}. Last write wins; no history kept.
func (h *RateHandler) Register(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	if len(code) != 3 {
		respondWithError(h.logger, w, util.ErrInvalidCurrency)
		return
	}
	var req RegisterRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if err := h.rates.Register(code, req.Rate); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"code": code,
		"rate": req.Rate,
	})
}

// List handles GET /rates.
func (h *RateHandler) List(w http.ResponseWriter, r *http.Request) {
	codes := h.rates.Codes()
	rates := make(map[string]decimal.Decimal, len(codes))
	for _, code := range codes {
		if rate, ok := h.rates.Rate(code); ok {
			rates[code] = rate
		}
	}
	respondWithJSON(h.logger, w, http.StatusOK, rates)
}
