package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Cache is the read-view store; *cache.Client satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const moviesCacheKey = "movies:all"

func movieCacheKey(id uuid.UUID) string {
	return "movie:" + id.String()
}

func cacheTTL(seconds int) time.Duration {
	if seconds <= 0 {
		return time.Minute
	}
	return time.Duration(seconds) * time.Second
}

// storeJSON marshals v into the cache; failures only cost a later miss.
func storeJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, data, ttl)
}
