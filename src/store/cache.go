package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"

	"ecofinance-server/src/models"
)

// TxCache caches fetched transaction windows so the dashboard routes, which
// all read the same window, hit the provider once per TTL. Keys are tracked
// per client so a re-link can invalidate every window for that client.
type TxCache struct {
	cache *ristretto.Cache
	ttl   time.Duration

	clientKeys struct {
		sync.Mutex
		m map[string]map[string]struct{}
	}
}

func NewTxCache(ttl time.Duration) (*TxCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     1000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("init transaction cache: %w", err)
	}

	c := &TxCache{cache: cache, ttl: ttl}
	c.clientKeys.m = make(map[string]map[string]struct{})
	return c, nil
}

// Get returns the cached window for (clientID, start, end) if present.
func (c *TxCache) Get(clientID string, start, end time.Time) ([]models.Transaction, bool) {
	value, ok := c.cache.Get(windowKey(clientID, start, end))
	if !ok {
		return nil, false
	}
	txs, ok := value.([]models.Transaction)
	return txs, ok
}

// Set caches a fetched window for the configured TTL.
func (c *TxCache) Set(clientID string, start, end time.Time, txs []models.Transaction) {
	key := windowKey(clientID, start, end)

	c.clientKeys.Lock()
	keys := c.clientKeys.m[clientID]
	if keys == nil {
		keys = make(map[string]struct{})
		c.clientKeys.m[clientID] = keys
	}
	keys[key] = struct{}{}
	c.clientKeys.Unlock()

	c.cache.SetWithTTL(key, txs, 1, c.ttl)
}

// Invalidate drops every cached window for the client, e.g. after a new
// account link.
func (c *TxCache) Invalidate(clientID string) {
	c.clientKeys.Lock()
	for key := range c.clientKeys.m[clientID] {
		c.cache.Del(key)
	}
	delete(c.clientKeys.m, clientID)
	c.clientKeys.Unlock()
}

func windowKey(clientID string, start, end time.Time) string {
	return clientID + "|" + start.Format("2006-01-02") + "|" + end.Format("2006-01-02")
}
