// README: Coordinate resolver; free-text place name -> coordinate with caching.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"farecast/internal/config"
	"farecast/internal/types"
)

// ErrNotFound means the place could not be resolved to a coordinate. It is a
// normal outcome the caller must handle, not a fatal error: timeouts,
// transport failures, and empty result sets all map to it.
var ErrNotFound = errors.New("place not found")

// Resolver resolves place names against a Nominatim-style geocoding service,
// consulting the injected cache first.
type Resolver struct {
	cache     Cache
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewResolver(cfg config.GeocodeConfig, cache Cache) *Resolver {
	return &Resolver{
		cache:     cache,
		client:    &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns the coordinate for place. A cache hit returns immediately
// with no external call; a miss issues a single bounded-timeout lookup for
// the best match and caches the result for all future callers.
func (r *Resolver) Resolve(ctx context.Context, place string) (types.Coordinate, error) {
	key := PlaceKey(place)
	if coord, ok := r.cache.Get(ctx, key); ok {
		return coord, nil
	}

	coord, err := r.lookup(ctx, place)
	if err != nil {
		return types.Coordinate{}, ErrNotFound
	}
	r.cache.Put(ctx, key, coord)
	return coord, nil
}

func (r *Resolver) lookup(ctx context.Context, place string) (types.Coordinate, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return types.Coordinate{}, err
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return types.Coordinate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Coordinate{}, errors.New("geocoding status " + resp.Status)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return types.Coordinate{}, err
	}
	if len(results) == 0 {
		return types.Coordinate{}, errors.New("empty result set")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return types.Coordinate{}, err
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return types.Coordinate{}, err
	}
	return types.Coordinate{Lat: lat, Lng: lng}, nil
}
