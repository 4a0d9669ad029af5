package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"ecofinance-server/src/finance"
	plaidapi "ecofinance-server/src/plaid"
	"ecofinance-server/src/store"
)

// GetCarbonFootprint serves the trailing 30-day carbon breakdown by category
// as pie-chart rows.
func GetCarbonFootprint(client *plaidapi.Client, creds store.CredentialStore, cache *store.TxCache, engine *finance.Engine, defaultClientID string) http.HandlerFunc {
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
		txs, err := fetchWindow(r.Context(), client, cache, id, cred.AccessToken, now.AddDate(0, 0, -finance.SpendingWindowDays), now)
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("transaction fetch failed")
			writeError(w, http.StatusBadGateway, upstreamUnavailableMsg)
			return
		}

		writeJSON(w, http.StatusOK, engine.CarbonChart(txs))
	}
}
