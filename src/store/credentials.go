// Package store holds the caller-keyed state the service depends on: the
// access-credential mapping, per-caller conversation history, and a short-TTL
// cache of fetched transaction windows.
package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotLinked is returned when a caller has no stored credential, i.e. no
// bank account has been linked yet.
var ErrNotLinked = errors.New("no linked credential for client")

// Credential is the provider access credential obtained from a completed
// link flow.
type Credential struct {
	AccessToken string
	ItemID      string
	LinkedAt    time.Time
}

// CredentialStore maps a caller identity to its access credential. Writes to
// different keys must not interfere; the last write to the same key wins.
type CredentialStore interface {
	Get(ctx context.Context, clientID string) (Credential, error)
	Put(ctx context.Context, clientID string, cred Credential) error
	Delete(ctx context.Context, clientID string) error
}

// MemoryCredentialStore is the default, process-lifetime store. A restart
// loses every linked item; use the Postgres store for durability.
type MemoryCredentialStore struct {
	mu    sync.RWMutex
	creds map[string]Credential
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{creds: make(map[string]Credential)}
}

func (s *MemoryCredentialStore) Get(_ context.Context, clientID string) (Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.creds[clientID]
	if !ok {
		return Credential{}, ErrNotLinked
	}
	return cred, nil
}

func (s *MemoryCredentialStore) Put(_ context.Context, clientID string, cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[clientID] = cred
	return nil
}

func (s *MemoryCredentialStore) Delete(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, clientID)
	return nil
}
