// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"prospera/pkg/db"
)

// EngineConfig holds the valuation/zakat engine defaults. The metal prices
// and exchange rates are illustrative seeds, not live data; all of them can
// be overridden by environment or at runtime through the API.
type EngineConfig struct {
	BaseCurrency       string // default currency for aggregate displays
	DisplayCurrency    string // currency the seed metal prices are quoted in
	GoldPricePerGram   decimal.Decimal
	SilverPricePerGram decimal.Decimal
	SeedRates          map[string]decimal.Decimal // extra/overriding exchange rates
}

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config
	Engine     EngineConfig
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*AppConfig, error) {
	serverPort := getEnv("SERVER_PORT", "8080")

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	goldPrice, err := decimalEnv("GOLD_PRICE_PER_GRAM", "4780")
	if err != nil {
		return nil, err
	}
	silverPrice, err := decimalEnv("SILVER_PRICE_PER_GRAM", "52.22")
	if err != nil {
		return nil, err
	}
	seedRates, err := parseRates(os.Getenv("EXCHANGE_RATES"))
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "user"),
			Password: getEnv("DB_PASSWORD", "password"),
			DBName:   getEnv("DB_NAME", "prosperadb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Engine: EngineConfig{
			BaseCurrency:       getEnv("BASE_CURRENCY", "USD"),
			DisplayCurrency:    getEnv("DISPLAY_CURRENCY", "EGP"),
			GoldPricePerGram:   goldPrice,
			SilverPricePerGram: silverPrice,
			SeedRates:          seedRates,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func decimalEnv(key, fallback string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

// parseRates parses "EUR=1.13,GBP=1.33" style overrides.
func parseRates(raw string) (map[string]decimal.Decimal, error) {
	rates := map[string]decimal.Decimal{}
	if raw == "" {
		return rates, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		code, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("invalid EXCHANGE_RATES entry %q", pair)
		}
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("invalid EXCHANGE_RATES entry %q: %w", pair, err)
		}
		rates[strings.ToUpper(code)] = rate
	}
	return rates, nil
}
