// README: Route distance resolver; the routed -> estimated -> fixed fallback ladder.
package distance

import (
	"context"
	"time"

	"go.uber.org/zap"

	"farecast/internal/types"
)

// Geocoder resolves a free-text place name to a coordinate.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (types.Coordinate, error)
}

// Router returns the shortest driving route length in meters.
type Router interface {
	RouteMeters(ctx context.Context, a, b types.Coordinate) (float64, error)
}

// Resolver turns two place names into a road distance, degrading through
// three failure domains without ever returning an error: a quote must always
// be producible.
type Resolver struct {
	geocoder   Geocoder
	router     Router
	timeout    time.Duration
	fallbackKm float64
	logger     *zap.Logger
}

func NewResolver(geocoder Geocoder, router Router, timeout time.Duration, fallbackKm float64, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		geocoder:   geocoder,
		router:     router,
		timeout:    timeout,
		fallbackKm: fallbackKm,
		logger:     logger,
	}
}

// Resolve evaluates the ladder in strict order:
//  1. geocode both endpoints; if either fails, the fixed fallback constant
//     is returned (no routed or estimated distance is computable),
//  2. ask the routing service for the route length,
//  3. on routing failure, estimate from the great circle.
func (r *Resolver) Resolve(ctx context.Context, start, end string) Result {
	a, err := r.geocoder.Resolve(ctx, start)
	if err != nil {
		r.logger.Info("geocoding failed, using fallback distance",
			zap.String("place", start), zap.Float64("fallback_km", r.fallbackKm))
		return Result{Kilometers: r.fallbackKm, Source: SourceFallback}
	}
	b, err := r.geocoder.Resolve(ctx, end)
	if err != nil {
		r.logger.Info("geocoding failed, using fallback distance",
			zap.String("place", end), zap.Float64("fallback_km", r.fallbackKm))
		return Result{Kilometers: r.fallbackKm, Source: SourceFallback}
	}

	routeCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	meters, err := r.router.RouteMeters(routeCtx, a, b)
	if err != nil {
		km := Estimate(a, b)
		r.logger.Info("routing failed, using great-circle estimate",
			zap.Error(err), zap.Float64("estimated_km", km))
		return Result{Kilometers: km, Source: SourceEstimated}
	}

	return Result{Kilometers: round2(meters / 1000), Source: SourceRouted}
}
