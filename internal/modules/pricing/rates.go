// README: Tier-specific rate formulas (base fare, distance cost, billable km).
package pricing

import (
	"math"

	"farecast/internal/config"
)

// rateComponents are the raw (unrounded) tier-specific cost parts.
type rateComponents struct {
	base         float64
	distanceCost float64
	billableKm   float64
}

// computeRate applies the tier's rate formula. distanceKm must already be
// clamped to the configured minimum floor by the caller.
func computeRate(r config.RatesConfig, tier RideType, distanceKm float64, days int, catMult float64) rateComponents {
	switch tier {
	case RideIntracity:
		billable := math.Min(distanceKm, r.IntracityCapKm)
		return rateComponents{
			base:         r.IntracityBase * catMult,
			distanceCost: billable * r.IntracityPerKm,
			billableKm:   billable,
		}
	case RideExpress:
		return rateComponents{
			base:         r.PerDayBase * catMult,
			distanceCost: distanceKm * r.ExpressPerKm,
			billableKm:   distanceKm,
		}
	default: // RideIntercity
		return rateComponents{
			base:         r.PerDayBase * float64(days) * catMult,
			distanceCost: distanceKm * r.IntercityPerKm,
			billableKm:   distanceKm,
		}
	}
}

// categoryMultiplier resolves the vehicle category to its multiplier.
// An absent category takes the configured default category; an unknown one
// resolves to 1.0.
func categoryMultiplier(r config.RatesConfig, category string) float64 {
	if category == "" {
		category = r.DefaultCategory
	}
	if m, ok := r.CategoryMultiplier[category]; ok {
		return m
	}
	return 1.0
}

// transmissionFee resolves the transmission type to its surcharge.
// An absent transmission takes the configured default; an unknown one
// resolves to 0.
func transmissionFee(r config.RatesConfig, transmission string) float64 {
	if transmission == "" {
		transmission = r.DefaultTransmission
	}
	if f, ok := r.TransmissionFee[transmission]; ok {
		return f
	}
	return 0
}
