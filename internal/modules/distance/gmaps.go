// README: Google Maps Directions router (alternate Router implementation).
package distance

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"farecast/internal/types"
)

// GoogleRouter resolves route length through the Google Maps Directions API.
// It assumes driving mode and takes the first returned route.
type GoogleRouter struct {
	client *maps.Client
}

// NewGoogleRouter creates a GoogleRouter with the given API key.
func NewGoogleRouter(apiKey string) (*GoogleRouter, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleRouter{client: client}, nil
}

// RouteMeters returns the driving route length in meters between a and b.
func (r *GoogleRouter) RouteMeters(ctx context.Context, a, b types.Coordinate) (float64, error) {
	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", a.Lat, a.Lng),
		Destination: fmt.Sprintf("%f,%f", b.Lat, b.Lng),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := r.client.Directions(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, fmt.Errorf("no route found")
	}

	total := 0
	for _, leg := range routes[0].Legs {
		total += leg.Distance.Meters
	}
	return float64(total), nil
}
