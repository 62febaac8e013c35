package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"farecast/internal/config"
	"farecast/internal/types"
)

func TestPlaceKey_Normalization(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"case and spaces collapse", "New  Delhi", "new delhi", true},
		{"tabs and trailing space collapse", "\tMumbai ", "mumbai", true},
		{"different places differ", "Pune", "Goa", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, kb := PlaceKey(tt.a), PlaceKey(tt.b)
			if (ka == kb) != tt.same {
				t.Errorf("PlaceKey(%q)=%q, PlaceKey(%q)=%q, same=%v want %v",
					tt.a, ka, tt.b, kb, ka == kb, tt.same)
			}
		})
	}
}

func TestPlaceKey_Prefix(t *testing.T) {
	if got := PlaceKey("New Delhi"); got != "geo_newdelhi" {
		t.Errorf("PlaceKey = %q, want geo_newdelhi", got)
	}
}

func newTestResolver(t *testing.T, handler http.HandlerFunc) (*Resolver, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.GeocodeConfig{
		BaseURL:   srv.URL,
		UserAgent: "farecast-test",
		Timeout:   2 * time.Second,
	}
	return NewResolver(cfg, NewMemoryCache()), srv
}

func TestResolve_CacheIdempotence(t *testing.T) {
	var calls int
	resolver, _ := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"28.6139","lon":"77.2090"}]`))
	})

	ctx := context.Background()
	first, err := resolver.Resolve(ctx, "New Delhi")
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	// Same place, different formatting: must hit the cache.
	second, err := resolver.Resolve(ctx, "  new  delhi ")
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if calls != 1 {
		t.Errorf("external lookups = %d, want 1", calls)
	}
	if first != second {
		t.Errorf("cached coordinate differs: %v vs %v", first, second)
	}
	if first.Lat != 28.6139 || first.Lng != 77.2090 {
		t.Errorf("unexpected coordinate: %+v", first)
	}
}

func TestResolve_EmptyResultIsNotFound(t *testing.T) {
	resolver, _ := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	if _, err := resolver.Resolve(context.Background(), "nowhere"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResolve_TransportFailureIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // resolver now dials a dead server
	cfg := config.GeocodeConfig{BaseURL: srv.URL, UserAgent: "farecast-test", Timeout: time.Second}
	resolver := NewResolver(cfg, NewMemoryCache())

	if _, err := resolver.Resolve(context.Background(), "anywhere"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestResolve_ServerErrorIsNotFound(t *testing.T) {
	resolver, _ := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	if _, err := resolver.Resolve(context.Background(), "anywhere"); err != ErrNotFound {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryCache_ConcurrentWriters(t *testing.T) {
	cache := NewMemoryCache()
	coord := types.Coordinate{Lat: 1.0, Lng: 2.0}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Put(context.Background(), "geo_x", coord)
			cache.Get(context.Background(), "geo_x")
		}()
	}
	wg.Wait()

	got, ok := cache.Get(context.Background(), "geo_x")
	if !ok || got != coord {
		t.Errorf("Get = %v, %v; want %v, true", got, ok, coord)
	}
}
