package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"ecofinance-server/src/finance"
	plaidapi "ecofinance-server/src/plaid"
	"ecofinance-server/src/store"
)

// GetTransactions serves the trailing 30-day transaction list with carbon
// annotations per row.
func GetTransactions(client *plaidapi.Client, creds store.CredentialStore, cache *store.TxCache, engine *finance.Engine, defaultClientID string) http.HandlerFunc {
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

		start, end, err := windowFromQuery(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date range")
			return
		}

		txs, err := fetchWindow(r.Context(), client, cache, id, cred.AccessToken, start, end)
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("transaction fetch failed")
			writeError(w, http.StatusBadGateway, upstreamUnavailableMsg)
			return
		}

		writeJSON(w, http.StatusOK, engine.TransactionViews(txs))
	}
}
