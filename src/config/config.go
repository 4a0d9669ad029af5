package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port string

	PlaidClientID string
	PlaidSecret   string
	PlaidEnv      string
	ClientName    string

	GeminiAPIKey string
	GeminiModel  string

	// DatabaseURL, when set, selects the durable credential store.
	DatabaseURL string

	// EmissionFactorsFile optionally overrides the built-in factor table.
	EmissionFactorsFile string

	// CarbonExcludeCategories is a comma-separated list of categories kept
	// out of carbon accounting. Empty means the built-in default set.
	CarbonExcludeCategories string

	AllowedOrigins []string
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:                    getEnv("PORT", "8080"),
		PlaidClientID:           getEnv("PLAID_CLIENT_ID", ""),
		PlaidSecret:             getEnv("PLAID_SECRET", ""),
		PlaidEnv:                getEnv("PLAID_ENV", "sandbox"),
		ClientName:              getEnv("CLIENT_NAME", "EcoFinance App"),
		GeminiAPIKey:            getEnv("GEMINI_API_KEY", ""),
		GeminiModel:             getEnv("GEMINI_MODEL", ""),
		DatabaseURL:             getEnv("DATABASE_URL", ""),
		EmissionFactorsFile:     getEnv("EMISSION_FACTORS_FILE", ""),
		CarbonExcludeCategories: getEnv("CARBON_EXCLUDE_CATEGORIES", ""),
		AllowedOrigins:          splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if cfg.PlaidClientID == "" || cfg.PlaidSecret == "" {
		log.Fatal().Msg("PLAID_CLIENT_ID and PLAID_SECRET are required")
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
