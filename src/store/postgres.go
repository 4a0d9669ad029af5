package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const credentialsSchema = `
	CREATE TABLE IF NOT EXISTS plaid_credentials (
		client_id    TEXT PRIMARY KEY,
		access_token TEXT NOT NULL,
		item_id      TEXT NOT NULL,
		linked_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// PostgresCredentialStore persists credentials across restarts. Selected at
// startup when DATABASE_URL is set.
type PostgresCredentialStore struct {
	pool *pgxpool.Pool
}

func NewPostgresCredentialStore(ctx context.Context, url string) (*PostgresCredentialStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect credential store: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping credential store: %w", err)
	}
	if _, err := pool.Exec(ctx, credentialsSchema); err != nil {
		return nil, fmt.Errorf("ensure credentials table: %w", err)
	}
	return &PostgresCredentialStore{pool: pool}, nil
}

func (s *PostgresCredentialStore) Get(ctx context.Context, clientID string) (Credential, error) {
	query := `SELECT access_token, item_id, linked_at FROM plaid_credentials WHERE client_id = $1`

	var cred Credential
	err := s.pool.QueryRow(ctx, query, clientID).Scan(&cred.AccessToken, &cred.ItemID, &cred.LinkedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Credential{}, ErrNotLinked
	}
	if err != nil {
		return Credential{}, err
	}
	return cred, nil
}

func (s *PostgresCredentialStore) Put(ctx context.Context, clientID string, cred Credential) error {
	query := `
		INSERT INTO plaid_credentials (client_id, access_token, item_id, linked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id) DO UPDATE
		SET access_token = EXCLUDED.access_token, item_id = EXCLUDED.item_id, linked_at = EXCLUDED.linked_at
	`
	_, err := s.pool.Exec(ctx, query, clientID, cred.AccessToken, cred.ItemID, cred.LinkedAt)
	return err
}

func (s *PostgresCredentialStore) Delete(ctx context.Context, clientID string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM plaid_credentials WHERE client_id = $1`, clientID)
	return err
}

func (s *PostgresCredentialStore) Close() {
	s.pool.Close()
}
