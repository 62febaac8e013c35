// README: Redis-backed coordinate cache shared across instances.
package geocode

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"farecast/internal/types"
)

type cachedCoordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RedisCache implements Cache on a shared Redis backend. A Redis failure is
// treated as a cache miss; resolution then falls through to the upstream
// geocoder as usual.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (types.Coordinate, bool) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return types.Coordinate{}, false
	}
	var v cachedCoordinate
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return types.Coordinate{}, false
	}
	return types.Coordinate{Lat: v.Lat, Lng: v.Lng}, true
}

func (c *RedisCache) Put(ctx context.Context, key string, coord types.Coordinate) {
	raw, err := json.Marshal(cachedCoordinate{Lat: coord.Lat, Lng: coord.Lng})
	if err != nil {
		return
	}
	// No expiry: entries are added on first resolution and never removed.
	_ = c.client.Set(ctx, key, raw, 0).Err()
}
