package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"enableboard/internal/model"
)

// ThreadCache stores conversational thread state between /v1/ask turns so a
// follow-up question can resolve pronouns against the prior focus.
type ThreadCache interface {
	GetThread(ctx context.Context, threadID string) (*model.ThreadContext, error)
	SetThread(ctx context.Context, tc *model.ThreadContext) error
}

type threadCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewThreadCache creates a Redis-backed thread cache
func NewThreadCache(client *redis.Client) ThreadCache {
	return &threadCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *threadCache) threadKey(threadID string) string {
	return fmt.Sprintf("thread:%s:ctx", threadID)
}

func (c *threadCache) GetThread(ctx context.Context, threadID string) (*model.ThreadContext, error) {
	data, err := c.client.Get(ctx, c.threadKey(threadID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var tc model.ThreadContext
	if err := json.Unmarshal([]byte(data), &tc); err != nil {
		return nil, err
	}
	return &tc, nil
}

func (c *threadCache) SetThread(ctx context.Context, tc *model.ThreadContext) error {
	tc.UpdatedAt = time.Now()
	data, err := json.Marshal(tc)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.threadKey(tc.ThreadID), data, c.ttl).Err()
}
