package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
)

// RedisGeocodeCache keeps address -> coordinate mappings in Redis.
// Entries expire so stale geocodes eventually refresh; geocoding the same
// address twice within the TTL costs nothing.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

const defaultGeocodeTTL = 30 * 24 * time.Hour

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: defaultGeocodeTTL}
}

type cachedCoord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

func geocodeKey(addr string) string { return "geocode:" + addr }

// Fetch cached coordinates for the given addresses.
func (r *RedisGeocodeCache) GetMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.redis.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	uniq := dedupAddresses(addresses)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	keys := make([]string, len(uniq))
	for i, a := range uniq {
		keys[i] = geocodeKey(a)
	}

	vals, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(uniq))
	for i, v := range vals {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		var c cachedCoord
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			// A corrupt entry behaves like a miss; it will be overwritten.
			continue
		}
		out[uniq[i]] = domain.Coordinates{Lon: c.Lon, Lat: c.Lat}
	}

	return out, nil
}

// Store address -> coordinate mappings in the cache.
func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	ttl := r.TTL
	if ttl <= 0 {
		ttl = defaultGeocodeTTL
	}

	pipe := r.Client.Pipeline()
	for addr, c := range results {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("insert geocode cache: empty address key")
		}
		payload, err := json.Marshal(cachedCoord{Lon: c.Lon, Lat: c.Lat})
		if err != nil {
			return fmt.Errorf("insert geocode cache addr=%q: marshal: %w", addr, err)
		}
		pipe.Set(ctx, geocodeKey(addr), payload, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis pipeline: %w", err)
	}

	return nil
}
