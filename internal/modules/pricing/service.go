// README: Quote service; orchestrates distance resolution, classification, and composition.
package pricing

import (
	"context"
	"math"

	"go.uber.org/zap"

	"farecast/internal/config"
	"farecast/internal/ml"
	"farecast/internal/modules/distance"
)

// DistanceResolver turns two place names into a usable road distance.
type DistanceResolver interface {
	Resolve(ctx context.Context, start, end string) distance.Result
}

// Service computes price quotes. An optional learned price model may
// override the predicted price; the rule-engine breakdown is always
// returned.
type Service struct {
	rates    config.RatesConfig
	distance DistanceResolver
	model    ml.PriceModel
	logger   *zap.Logger
}

func NewService(rates config.RatesConfig, resolver DistanceResolver, model ml.PriceModel, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{rates: rates, distance: resolver, model: model, logger: logger}
}

// Quote prices a trip. Distance is floored to the configured minimum before
// any tier logic runs; days charged is never below 1, even for inverted
// date ranges. Upstream failures never surface here: distance resolution
// always yields a value.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (Quote, error) {
	res := s.distance.Resolve(ctx, req.StartLocation, req.EndLocation)
	distanceKm := math.Max(res.Kilometers, s.rates.MinKm)

	days := daysCharged(req)

	tier := Classify(distanceKm, days)
	catMult := categoryMultiplier(s.rates, req.Category)
	transFee := transmissionFee(s.rates, req.Transmission)

	comp := computeRate(s.rates, tier, distanceKm, days, catMult)
	surge := surgeMultiplier(s.rates, req.StartDate.Hour())
	buffer := bufferMultiplier(s.rates, tier, distanceKm)

	quote := compose(s.rates, tier, comp, transFee, surge, buffer, distanceKm, days)

	s.logger.Info("quote computed",
		zap.String("ride_type", string(tier)),
		zap.Float64("distance_km", distanceKm),
		zap.String("distance_source", string(res.Source)),
		zap.Int("days_charged", days),
		zap.Int("predicted_price", quote.PredictedPrice))

	if s.model != nil {
		if est, err := s.model.EstimatePrice(ctx, ml.FeatureRecord{
			Category:     req.Category,
			Transmission: req.Transmission,
			RideType:     string(tier),
			DistanceKm:   distanceKm,
			DaysCharged:  days,
		}); err == nil {
			quote.PredictedPrice = int(math.Round(est))
		} else {
			s.logger.Warn("price model unavailable, keeping rule-engine price", zap.Error(err))
		}
	}

	return quote, nil
}

// daysCharged bills whole days, rounding any partial day up and charging at
// least one day even for same-day or inverted ranges.
func daysCharged(req QuoteRequest) int {
	days := int(math.Ceil(req.EndDate.Sub(req.StartDate).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
