package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"ecofinance-server/src/finance"
	"ecofinance-server/src/models"
	plaidapi "ecofinance-server/src/plaid"
	"ecofinance-server/src/store"
)

// GetFinancialOverview serves the trailing 180-day monthly
// income/spending/saving chart.
func GetFinancialOverview(client *plaidapi.Client, creds store.CredentialStore, cache *store.TxCache, engine *finance.Engine, defaultClientID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := clientID(r, defaultClientID)

		cred, err := creds.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotLinked) {
			writeError(w, http.StatusBadRequest, notLinkedMsg)
			return
		}
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("credential lookup failed")
			writeError(w, http.StatusInternalServerError, upstreamUnavailableMsg)
			return
		}

		now := time.Now()
		txs, err := fetchWindow(r.Context(), client, cache, id, cred.AccessToken, now.AddDate(0, 0, -finance.OverviewWindowDays), now)
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("transaction fetch failed")
			writeError(w, http.StatusBadGateway, upstreamUnavailableMsg)
			return
		}

		overview := engine.ByMonth(txs)
		if overview == nil {
			overview = []models.MonthlyAggregate{}
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

// GetAccountSummary serves the whole-portfolio dashboard card. Callers with
// no linked account get the zero-valued summary, not an error; the frontend
// depends on that for its "not yet connected" state.
func GetAccountSummary(client *plaidapi.Client, creds store.CredentialStore, cache *store.TxCache, engine *finance.Engine, defaultClientID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := clientID(r, defaultClientID)

		cred, err := creds.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotLinked) {
			writeJSON(w, http.StatusOK, finance.ZeroSummary())
			return
		}
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("credential lookup failed")
			writeError(w, http.StatusInternalServerError, upstreamUnavailableMsg)
			return
		}

		accounts, err := client.FetchAccounts(r.Context(), cred.AccessToken)
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("account fetch failed")
			writeError(w, http.StatusBadGateway, upstreamUnavailableMsg)
			return
		}

		// Fetch two spending windows so the summary can compare against the
		// prior period.
		now := time.Now()
		start := now.AddDate(0, 0, -2*finance.SpendingWindowDays-1)
		txs, err := fetchWindow(r.Context(), client, cache, id, cred.AccessToken, start, now)
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("transaction fetch failed")
			writeError(w, http.StatusBadGateway, upstreamUnavailableMsg)
			return
		}

		writeJSON(w, http.StatusOK, engine.BuildAccountSummary(accounts, txs, now))
	}
}
