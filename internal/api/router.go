// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"prospera/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(
	authHandler *handler.AuthHandler,
	assetHandler *handler.AssetHandler,
	zakatHandler *handler.ZakatHandler,
	rateHandler *handler.RateHandler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Auth
	r.Post("/signup", authHandler.Signup)
	r.Post("/login", authHandler.Login)

	// Asset management
	r.Route("/assets", func(r chi.Router) {
		r.Post("/", assetHandler.Create)
		r.Get("/{assetID}", assetHandler.Get)
		r.Put("/{assetID}", assetHandler.Update)
		r.Put("/{assetID}/value", assetHandler.UpdateValue)
		r.Delete("/{assetID}", assetHandler.Delete)
	})

	// Per-user valuation views
	r.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/assets", assetHandler.ListByOwner)
		r.Get("/networth", assetHandler.NetWorth)
		r.Get("/distribution", assetHandler.Distribution)
		r.Get("/report", assetHandler.Report)
		r.Get("/hawl", zakatHandler.Hawl)
	})

	// Exchange rates
	r.Route("/rates", func(r chi.Router) {
		r.Get("/", rateHandler.List)
		r.Put("/{code}", rateHandler.Register)
	})

	// Zakat computation is a top-level endpoint; one assessment spans a
	// selection of assets, not a single resource.
	r.Post("/zakat/assessments", zakatHandler.Assess)

	return r
}
