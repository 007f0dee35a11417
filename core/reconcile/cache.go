package reconcile

import (
	"context"
	"sync"
	"time"

	"practice-ledger/core/player"

	"golang.org/x/sync/singleflight"
)

// Standings is a sorted snapshot of the player store.
type Standings struct {
	// Players are ordered by case-insensitive name.
	Players []player.Player

	// Built is the timestamp when this snapshot was loaded.
	Built time.Time
}

// StandingsCache holds the last loaded standings for the read path.
type StandingsCache struct {
	store Store
	ttl   time.Duration

	mu      sync.RWMutex
	current *Standings
	sf      singleflight.Group
}

// NewStandingsCache creates a cache over the given store.
// A zero TTL disables caching: every Get reloads the store.
func NewStandingsCache(store Store, ttl time.Duration) *StandingsCache {
	return &StandingsCache{store: store, ttl: ttl}
}

func (c *StandingsCache) isFresh(s *Standings) bool {
	if s == nil || c.ttl == 0 {
		return false
	}
	return time.Since(s.Built) <= c.ttl
}

// Get returns the cached standings, or loads them if absent or expired.
// Concurrent loads are collapsed into one store read.
func (c *StandingsCache) Get(ctx context.Context) (*Standings, error) {
	c.mu.RLock()
	current := c.current
	c.mu.RUnlock()

	if c.isFresh(current) {
		return current, nil
	}

	result, err, _ := c.sf.Do("standings", func() (interface{}, error) {
		c.mu.RLock()
		current := c.current
		c.mu.RUnlock()
		if c.isFresh(current) {
			return current, nil
		}

		ledger, err := LoadPlayers(ctx, c.store)
		if err != nil {
			return nil, err
		}
		fresh := &Standings{Players: ledger.Sorted(), Built: time.Now()}

		c.mu.Lock()
		c.current = fresh
		c.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Standings), nil
}

// Invalidate drops the cached snapshot so the next Get reloads the store.
func (c *StandingsCache) Invalidate() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}
