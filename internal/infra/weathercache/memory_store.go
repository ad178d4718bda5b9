package weathercache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/weather-outfit/internal/domain/weather"
)

type cachedObservation struct {
	payload   weather.Observation
	expiresAt time.Time
}

// MemoryStore is an in-process observation cache used for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]cachedObservation
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]cachedObservation)}
}

// Get implements weather.Store.
func (s *MemoryStore) Get(_ context.Context, location string) (weather.Observation, bool, error) {
	if location == "" {
		return weather.Observation{}, false, nil
	}
	s.mu.RLock()
	entry, ok := s.entries[location]
	s.mu.RUnlock()
	if !ok {
		return weather.Observation{}, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, location)
		s.mu.Unlock()
		return weather.Observation{}, false, nil
	}
	return entry.payload, true, nil
}

// Save caches the observation with optional TTL.
func (s *MemoryStore) Save(_ context.Context, location string, obs weather.Observation, ttl time.Duration) error {
	if location == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.entries[location] = cachedObservation{payload: obs, expiresAt: exp}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ weather.Store = (*MemoryStore)(nil)
