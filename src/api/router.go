package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ecofinance-server/src/config"
	"ecofinance-server/src/finance"
	"ecofinance-server/src/handlers"
	"ecofinance-server/src/insights"
	"ecofinance-server/src/middleware"
	plaidapi "ecofinance-server/src/plaid"
	"ecofinance-server/src/store"
)

func NewRouter(cfg config.Config, plaidClient *plaidapi.Client, advisor *insights.Advisor, engine *finance.Engine, creds store.CredentialStore, convs *store.ConversationStore, cache *store.TxCache) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/create_link_token", handlers.CreateLinkToken(plaidClient, cfg.PlaidClientID))
		r.Post("/exchange_public_token", handlers.ExchangePublicToken(plaidClient, creds, cache, cfg.PlaidClientID))

		r.Get("/transactions", handlers.GetTransactions(plaidClient, creds, cache, engine, cfg.PlaidClientID))
		r.Get("/carbon_footprint", handlers.GetCarbonFootprint(plaidClient, creds, cache, engine, cfg.PlaidClientID))
		r.Get("/financial_overview", handlers.GetFinancialOverview(plaidClient, creds, cache, engine, cfg.PlaidClientID))
		r.Get("/account_summary", handlers.GetAccountSummary(plaidClient, creds, cache, engine, cfg.PlaidClientID))

		r.Post("/chat", handlers.Chat(advisor, plaidClient, creds, convs, cache, engine, cfg.PlaidClientID))
		r.Get("/recommendations", handlers.GetRecommendations(advisor, plaidClient, creds, cache, engine, cfg.PlaidClientID))
	})

	return r
}
