package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"ecofinance-server/src/finance"
	"ecofinance-server/src/models"
	plaidapi "ecofinance-server/src/plaid"
	"ecofinance-server/src/store"
)

// Upstream provider failures map to this generic message. Provider error
// bodies are logged, never forwarded to the caller.
const upstreamUnavailableMsg = "service temporarily unavailable"

const notLinkedMsg = "no linked account"

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// clientID resolves the caller identity from the request, defaulting to the
// configured client id when none is supplied.
func clientID(r *http.Request, fallback string) string {
	if id := r.URL.Query().Get("client_id"); id != "" {
		return id
	}
	return fallback
}

// windowFromQuery reads an optional caller-supplied [start_date, end_date]
// range, defaulting to the trailing 30-day window ending today.
func windowFromQuery(r *http.Request) (start, end time.Time, err error) {
	end = time.Now()
	start = end.AddDate(0, 0, -finance.SpendingWindowDays)

	if v := r.URL.Query().Get("start_date"); v != "" {
		if start, err = time.Parse("2006-01-02", v); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		if end, err = time.Parse("2006-01-02", v); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

// fetchWindow returns the caller's transactions for [start, end], serving
// from the window cache when fresh and falling back to the provider.
func fetchWindow(ctx context.Context, client *plaidapi.Client, cache *store.TxCache, id, accessToken string, start, end time.Time) ([]models.Transaction, error) {
	if txs, ok := cache.Get(id, start, end); ok {
		return txs, nil
	}

	txs, err := client.FetchTransactions(ctx, accessToken, start, end)
	if err != nil {
		return nil, err
	}

	cache.Set(id, start, end, txs)
	return txs, nil
}
