package cache

import (
	"context"
	"sync"
	"time"

	"enableboard/internal/model"
)

// memoryThreadCache is the in-process fallback used when REDIS_URI is not
// configured. Good enough for a single-instance internal dashboard.
type memoryThreadCache struct {
	mu      sync.RWMutex
	threads map[string]model.ThreadContext
	ttl     time.Duration
}

// NewMemoryThreadCache creates an in-memory thread cache
func NewMemoryThreadCache() ThreadCache {
	return &memoryThreadCache{
		threads: make(map[string]model.ThreadContext),
		ttl:     24 * time.Hour,
	}
}

func (c *memoryThreadCache) GetThread(_ context.Context, threadID string) (*model.ThreadContext, error) {
	c.mu.RLock()
	tc, ok := c.threads[threadID]
	c.mu.RUnlock()
	if !ok || time.Since(tc.UpdatedAt) > c.ttl {
		return nil, nil
	}
	out := tc
	return &out, nil
}

func (c *memoryThreadCache) SetThread(_ context.Context, tc *model.ThreadContext) error {
	tc.UpdatedAt = time.Now()
	c.mu.Lock()
	c.threads[tc.ThreadID] = *tc
	c.mu.Unlock()
	return nil
}
