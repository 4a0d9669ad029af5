package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"ecofinance-server/src/api"
	"ecofinance-server/src/carbon"
	"ecofinance-server/src/config"
	"ecofinance-server/src/finance"
	"ecofinance-server/src/insights"
	"ecofinance-server/src/logger"
	plaidapi "ecofinance-server/src/plaid"
	"ecofinance-server/src/store"
)

const txCacheTTL = 5 * time.Minute

func main() {
	log.Logger = logger.New()
	cfg := config.Load()
	ctx := context.Background()

	plaidClient, err := plaidapi.NewClient(cfg.PlaidClientID, cfg.PlaidSecret, cfg.PlaidEnv, cfg.ClientName)
	if err != nil {
		log.Fatal().Err(err).Msg("plaid client setup failed")
	}

	advisor, err := insights.NewAdvisor(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("advisor setup failed")
	}

	factors := carbon.DefaultFactorTable()
	if cfg.EmissionFactorsFile != "" {
		factors, err = carbon.LoadFactorTable(cfg.EmissionFactorsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("emission factor table load failed")
		}
		log.Info().Str("file", cfg.EmissionFactorsFile).Msg("loaded emission factors")
	}

	exclusions := carbon.DefaultExclusions()
	if cfg.CarbonExcludeCategories != "" {
		exclusions = carbon.ParseExclusions(cfg.CarbonExcludeCategories)
	}

	engine := finance.NewEngine(factors, exclusions)

	// Credentials live in memory unless a database is configured. A restart
	// of the in-memory store loses every linked item.
	var creds store.CredentialStore
	if cfg.DatabaseURL != "" {
		pgStore, err := store.NewPostgresCredentialStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("credential store setup failed")
		}
		defer pgStore.Close()
		creds = pgStore
	} else {
		log.Warn().Msg("DATABASE_URL not set, linked credentials will not survive restarts")
		creds = store.NewMemoryCredentialStore()
	}

	cache, err := store.NewTxCache(txCacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("transaction cache setup failed")
	}

	convs := store.NewConversationStore()

	router := api.NewRouter(cfg, plaidClient, advisor, engine, creds, convs, cache)

	log.Info().Str("port", cfg.Port).Str("plaid_env", cfg.PlaidEnv).Msg("API server running")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
