// Package dedup remembers message ids so that redelivered webhook events are
// answered only once.
package dedup

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps seen ids in process memory.
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore creates a store whose ids expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(ttl, 2*ttl),
	}
}

// Seen records key and reports whether it was already recorded.
func (s *MemoryStore) Seen(_ context.Context, key string) (bool, error) {
	if err := s.cache.Add(key, struct{}{}, cache.DefaultExpiration); err != nil {
		return true, nil
	}
	return false, nil
}
