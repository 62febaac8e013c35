// README: Price composition; surge and buffer multipliers, platform fee, rounding.
package pricing

import (
	"math"

	"farecast/internal/config"
)

// surgeMultiplier returns the peak surge when startHour falls inside the
// morning or evening peak window (bounds inclusive on both ends), else 1.0.
func surgeMultiplier(r config.RatesConfig, startHour int) float64 {
	if (startHour >= r.MorningPeakStart && startHour <= r.MorningPeakEnd) ||
		(startHour >= r.EveningPeakStart && startHour <= r.EveningPeakEnd) {
		return r.PeakSurge
	}
	return 1.0
}

// bufferMultiplier returns the tier-dependent buffer. INTERCITY uses a
// two-tier step function over distance; the boundary is inclusive toward the
// high buffer.
func bufferMultiplier(r config.RatesConfig, tier RideType, distanceKm float64) float64 {
	switch tier {
	case RideIntracity:
		return 1.0
	case RideExpress:
		return r.ExpressBuffer
	default: // RideIntercity
		if distanceKm < r.IntercityBufferKm {
			return r.IntercityLowBuffer
		}
		return r.IntercityHighBuffer
	}
}

// compose assembles the final quote from the rate components. The final
// price is rounded to the nearest whole currency unit; breakdown parts are
// rounded independently.
func compose(r config.RatesConfig, tier RideType, comp rateComponents, transFee float64, surge, buffer float64, distanceKm float64, days int) Quote {
	subtotal := comp.base + comp.distanceCost + transFee
	final := subtotal*surge*buffer + r.PlatformFee

	return Quote{
		RideType:       tier,
		PredictedPrice: int(math.Round(final)),
		DistanceKm:     distanceKm,
		DaysCharged:    days,
		Breakdown: Breakdown{
			BaseFare:         int(math.Round(comp.base)),
			DistanceCost:     int(math.Round(comp.distanceCost)),
			TransmissionFee:  int(math.Round(transFee)),
			SurgeMultiplier:  surge,
			BufferMultiplier: buffer,
			PlatformFee:      int(math.Round(r.PlatformFee)),
		},
	}
}
