// README: Learned price source contract; pluggable alternative baseline to the rate engine.
package ml

import "context"

// FeatureRecord is the structured input to a learned price model.
type FeatureRecord struct {
	Category     string  `json:"category"`
	Transmission string  `json:"transmission"`
	RideType     string  `json:"ride_type"`
	DistanceKm   float64 `json:"distance_km"`
	DaysCharged  int     `json:"days_charged"`
}

// PriceModel returns a single numeric price estimate for a feature record.
// Implementations may call remote models; failures are expected and the
// caller falls back to the rule engine.
type PriceModel interface {
	EstimatePrice(ctx context.Context, rec FeatureRecord) (float64, error)
}
