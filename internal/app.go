// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "prospera/internal/api"
	"prospera/internal/api/handler"
	"prospera/internal/config"
	"prospera/internal/currency"
	"prospera/internal/report"
	"prospera/internal/repository"
	"prospera/internal/repository/postgres"
	"prospera/internal/service"
	"prospera/internal/util"
	"prospera/internal/zakat"
	"prospera/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Engine state
	Rates       *currency.Table
	HawlTracker *zakat.Tracker

	// Repositories
	UserRepository  repository.UserRepository
	AssetRepository repository.AssetRepository

	// Services
	AuthService   service.AuthService
	AssetService  service.AssetService
	ZakatService  service.ZakatService
	ReportBuilder *report.Builder

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize the engine state: the shared rate table (seed defaults
	// plus any configured overrides) and the hawl tracker.
	app.Rates = currency.NewTable()
	for code, rate := range app.Config.Engine.SeedRates {
		if err := app.Rates.Register(code, rate); err != nil {
			return fmt.Errorf("failed to register configured rate for %s: %w", code, err)
		}
	}
	app.HawlTracker = zakat.NewTracker()
	app.Logger.Info("Exchange-rate table seeded.", "codes", app.Rates.Codes())

	// 5. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.AssetRepository = postgres.NewAssetRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 6. Initialize Services
	app.AuthService = service.NewAuthService(
		app.DB, // DBTxBeginner
		app.DB, // DBExecutor
		app.UserRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.AssetService = service.NewAssetService(app.DB, app.AssetRepository, app.Rates)
	app.ZakatService = service.NewZakatService(app.DB, app.AssetRepository, app.Rates, app.HawlTracker)
	app.ReportBuilder = report.NewBuilder(app.DB, app.UserRepository, app.AssetService)
	app.Logger.Info("Services initialized.")

	// 7. Initialize HTTP Handlers and Router
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	assetHandler := handler.NewAssetHandler(app.AssetService, app.ReportBuilder, app.Logger)
	zakatHandler := handler.NewZakatHandler(app.ZakatService, app.Logger)
	rateHandler := handler.NewRateHandler(app.Rates, app.Logger)
	app.HTTPHandler = router.NewRouter(authHandler, assetHandler, zakatHandler, rateHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
