package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	plaidapi "ecofinance-server/src/plaid"
	"ecofinance-server/src/store"
)

func CreateLinkToken(client *plaidapi.Client, defaultClientID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := clientID(r, defaultClientID)

		linkToken, expiration, err := client.CreateLinkToken(r.Context(), id)
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("plaid link token creation failed")
			writeError(w, http.StatusBadGateway, upstreamUnavailableMsg)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"link_token": linkToken,
			"expiration": expiration,
		})
	}
}

func ExchangePublicToken(client *plaidapi.Client, creds store.CredentialStore, cache *store.TxCache, defaultClientID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PublicToken string `json:"public_token"`
			ClientID    string `json:"client_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PublicToken == "" {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		id := req.ClientID
		if id == "" {
			id = defaultClientID
		}

		accessToken, itemID, err := client.ExchangePublicToken(r.Context(), req.PublicToken)
		if err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("plaid public token exchange failed")
			writeError(w, http.StatusBadGateway, upstreamUnavailableMsg)
			return
		}

		cred := store.Credential{
			AccessToken: accessToken,
			ItemID:      itemID,
			LinkedAt:    time.Now().UTC(),
		}
		if err := creds.Put(r.Context(), id, cred); err != nil {
			log.Error().Err(err).Str("client_id", id).Msg("failed to store credential")
			writeError(w, http.StatusInternalServerError, "failed to save linked account")
			return
		}

		// Data for this caller may have changed; drop any cached windows.
		cache.Invalidate(id)

		log.Info().Str("client_id", id).Str("item_id", itemID).Msg("linked new item")
		writeJSON(w, http.StatusCreated, map[string]string{
			"item_id":   itemID,
			"client_id": id,
		})
	}
}
