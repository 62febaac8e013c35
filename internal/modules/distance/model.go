// README: Distance resolution result and source tagging.
package distance

// Source records which stage of the fallback ladder produced a distance.
type Source string

const (
	// SourceRouted means the road-routing service returned a route.
	SourceRouted Source = "ROUTED"
	// SourceEstimated means routing failed and the great-circle estimate
	// was used on the resolved coordinates.
	SourceEstimated Source = "ESTIMATED"
	// SourceFallback means geocoding failed for at least one endpoint and
	// the fixed fallback constant was used.
	SourceFallback Source = "FALLBACK"
)

// Result is the outcome of distance resolution. It is always usable: the
// ladder never propagates an upstream failure.
type Result struct {
	Kilometers float64
	Source     Source
}
