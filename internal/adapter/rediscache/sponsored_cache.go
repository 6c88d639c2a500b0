package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"casa-boost/internal/core/port"
)

// sponsoredKey is the single cache key; the selection is global, not
// per-user.
const sponsoredKey = "casa-boost:sponsored"

// SponsoredCache caches the homepage slot selection in Redis with a short
// TTL. It backs the advisory client-side refresh poll only; a stale or
// missing entry is always acceptable and callers fall through to the store.
type SponsoredCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSponsoredCache returns a cache storing entries for ttl.
func NewSponsoredCache(client *redis.Client, ttl time.Duration) *SponsoredCache {
	return &SponsoredCache{client: client, ttl: ttl}
}

// Get returns the cached selection or (nil, nil) on a miss. A corrupt
// entry is treated as a miss.
func (c *SponsoredCache) Get(ctx context.Context) (*port.SponsoredSelection, error) {
	bs, err := c.client.Get(ctx, sponsoredKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sel port.SponsoredSelection
	if err := json.Unmarshal(bs, &sel); err != nil {
		return nil, nil
	}
	return &sel, nil
}

// Set stores the selection for the configured TTL.
func (c *SponsoredCache) Set(ctx context.Context, sel *port.SponsoredSelection) error {
	bs, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sponsoredKey, bs, c.ttl).Err()
}
