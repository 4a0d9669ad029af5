package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"ecofinance-server/src/finance"
	"ecofinance-server/src/insights"
	"ecofinance-server/src/models"
	plaidapi "ecofinance-server/src/plaid"
	"ecofinance-server/src/store"
)

// GetRecommendations serves three structured eco/finance suggestions derived
// from the caller's 180-day summary. Malformed model output degrades to an
// empty list.
func GetRecommendations(advisor *insights.Advisor, client *plaidapi.Client, creds store.CredentialStore, cache *store.TxCache, engine *finance.Engine, defaultClientID string) http.HandlerFunc {
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

		spendingWindow := finance.TrailingWindow(txs, now, finance.SpendingWindowDays)
		payload := insights.BuildSummaryPayload(engine.ByCategory(spendingWindow), engine.ByMonth(txs))
		summaryJSON, err := payload.JSON()
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("summary payload marshal failed")
			writeError(w, http.StatusInternalServerError, upstreamUnavailableMsg)
			return
		}

		recs, err := advisor.Recommendations(r.Context(), summaryJSON)
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("recommendations request failed")
			writeError(w, http.StatusBadGateway, upstreamUnavailableMsg)
			return
		}
		if recs == nil {
			recs = []models.Recommendation{}
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": recs})
	}
}
