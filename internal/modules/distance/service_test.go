package distance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farecast/internal/types"
)

type fakeGeocoder struct {
	coords map[string]types.Coordinate
}

func (g *fakeGeocoder) Resolve(_ context.Context, place string) (types.Coordinate, error) {
	c, ok := g.coords[place]
	if !ok {
		return types.Coordinate{}, errors.New("place not found")
	}
	return c, nil
}

type fakeRouter struct {
	meters float64
	err    error
}

func (r *fakeRouter) RouteMeters(context.Context, types.Coordinate, types.Coordinate) (float64, error) {
	return r.meters, r.err
}

var testCoords = map[string]types.Coordinate{
	"delhi":  {Lat: 28.6139, Lng: 77.2090},
	"mumbai": {Lat: 19.0760, Lng: 72.8777},
}

func TestResolve_RoutedWhenRoutingSucceeds(t *testing.T) {
	resolver := NewResolver(
		&fakeGeocoder{coords: testCoords},
		&fakeRouter{meters: 12340},
		time.Second, 75.0, nil)

	got := resolver.Resolve(context.Background(), "delhi", "mumbai")
	if got.Source != SourceRouted {
		t.Fatalf("source = %s, want ROUTED", got.Source)
	}
	if got.Kilometers != 12.34 {
		t.Errorf("kilometers = %v, want 12.34", got.Kilometers)
	}
}

func TestResolve_EstimatedWhenRoutingFails(t *testing.T) {
	resolver := NewResolver(
		&fakeGeocoder{coords: testCoords},
		&fakeRouter{err: errors.New("routing down")},
		time.Second, 75.0, nil)

	got := resolver.Resolve(context.Background(), "delhi", "mumbai")
	if got.Source != SourceEstimated {
		t.Fatalf("source = %s, want ESTIMATED", got.Source)
	}
	want := Estimate(testCoords["delhi"], testCoords["mumbai"])
	if got.Kilometers != want {
		t.Errorf("kilometers = %v, want %v", got.Kilometers, want)
	}
}

func TestResolve_FallbackWhenGeocodingFails(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"start unresolvable", "atlantis", "mumbai"},
		{"end unresolvable", "delhi", "atlantis"},
		{"both unresolvable", "atlantis", "elysium"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// routing would succeed, but must never be consulted
			resolver := NewResolver(
				&fakeGeocoder{coords: testCoords},
				&fakeRouter{meters: 1000},
				time.Second, 75.0, nil)

			got := resolver.Resolve(context.Background(), tt.start, tt.end)
			if got.Source != SourceFallback {
				t.Fatalf("source = %s, want FALLBACK", got.Source)
			}
			if got.Kilometers != 75.0 {
				t.Errorf("kilometers = %v, want 75.0", got.Kilometers)
			}
		})
	}
}

func TestOSRMRouter_ParsesRouteDistance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"routes":[{"distance":144321.7}]}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(srv.URL, srv.Client())
	meters, err := router.RouteMeters(context.Background(), testCoords["delhi"], testCoords["mumbai"])
	if err != nil {
		t.Fatalf("RouteMeters: %v", err)
	}
	if meters != 144321.7 {
		t.Errorf("meters = %v, want 144321.7", meters)
	}
}

func TestOSRMRouter_NoRouteIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"routes":[]}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(srv.URL, srv.Client())
	if _, err := router.RouteMeters(context.Background(), testCoords["delhi"], testCoords["mumbai"]); err == nil {
		t.Error("expected error for empty route set")
	}
}
