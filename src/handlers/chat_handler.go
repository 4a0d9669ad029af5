package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"ecofinance-server/src/finance"
	"ecofinance-server/src/insights"
	plaidapi "ecofinance-server/src/plaid"
	"ecofinance-server/src/store"
)

// chatFallbackMsg is returned when the assistant cannot produce a reply.
const chatFallbackMsg = "I apologize, but I'm having trouble processing your request right now. Please try again later."

// Chat serves the conversational assistant. When the caller has linked
// account data, the model is given a 30-day financial summary as context;
// otherwise it answers without one. Assistant failures degrade to a fallback
// message rather than an error.
func Chat(advisor *insights.Advisor, client *plaidapi.Client, creds store.CredentialStore, convs *store.ConversationStore, cache *store.TxCache, engine *finance.Engine, defaultClientID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ClientID string `json:"client_id"`
			Message  string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		id := req.ClientID
		if id == "" {
			id = defaultClientID
		}

		summaryJSON := financialContext(r, client, creds, cache, engine, id)
		history := convs.History(id)

		reply, err := advisor.Chat(r.Context(), req.Message, history, summaryJSON)
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("chat request failed")
			writeJSON(w, http.StatusOK, map[string]string{"response": chatFallbackMsg})
			return
		}

		convs.Append(id, "user", req.Message)
		convs.Append(id, "model", reply)

		writeJSON(w, http.StatusOK, map[string]string{"response": reply})
	}
}

// financialContext builds the 30-day summary block for the chat preamble.
// Any failure here only drops the context; the chat still proceeds.
func financialContext(r *http.Request, client *plaidapi.Client, creds store.CredentialStore, cache *store.TxCache, engine *finance.Engine, id string) string {
	cred, err := creds.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotLinked) {
		return ""
	}
	if err != nil {
		log.Error().Err(err).Str("client_id", id).Msg("credential lookup failed")
		return ""
	}

	now := time.Now()
	txs, err := fetchWindow(r.Context(), client, cache, id, cred.AccessToken, now.AddDate(0, 0, -finance.SpendingWindowDays), now)
	if err != nil {
		log.Error().Err(err).Str("client_id", id).Msg("transaction fetch for chat context failed")
		return ""
	}

	payload := insights.BuildSummaryPayload(engine.ByCategory(txs), nil)
	summaryJSON, err := payload.JSON()
	if err != nil {
		log.Error().Err(err).Str("client_id", id).Msg("summary payload marshal failed")
		return ""
	}
	return summaryJSON
}
