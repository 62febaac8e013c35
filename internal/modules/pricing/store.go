// README: Rate table overrides backed by PostgreSQL.
package pricing

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"farecast/internal/config"
)

// Store loads operator overrides for the rate table. Multiple slightly
// different tariff variants exist in the wild; the table is the single place
// where a deployment picks its numbers.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadRates applies rows of rate_params(name, value) on top of defaults and
// returns the merged table. Scalar parameters use plain names ("min_km",
// "platform_fee", ...); map entries use "category.<name>" and
// "transmission.<name>" prefixes.
func (s *Store) LoadRates(ctx context.Context, defaults config.RatesConfig) (config.RatesConfig, error) {
	rates := defaults
	rates.CategoryMultiplier = copyMap(defaults.CategoryMultiplier)
	rates.TransmissionFee = copyMap(defaults.TransmissionFee)

	rows, err := s.db.Query(ctx, `SELECT name, value FROM rate_params`)
	if err != nil {
		return defaults, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return defaults, err
		}
		applyRateParam(&rates, name, value)
	}
	if err := rows.Err(); err != nil {
		return defaults, err
	}
	return rates, nil
}

func copyMap(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func applyRateParam(r *config.RatesConfig, name string, value float64) {
	if category, ok := strings.CutPrefix(name, "category."); ok {
		r.CategoryMultiplier[category] = value
		return
	}
	if transmission, ok := strings.CutPrefix(name, "transmission."); ok {
		r.TransmissionFee[transmission] = value
		return
	}

	switch name {
	case "min_km":
		r.MinKm = value
	case "platform_fee":
		r.PlatformFee = value
	case "per_day_base":
		r.PerDayBase = value
	case "express_per_km":
		r.ExpressPerKm = value
	case "intracity_base":
		r.IntracityBase = value
	case "intracity_per_km":
		r.IntracityPerKm = value
	case "intracity_cap_km":
		r.IntracityCapKm = value
	case "intercity_per_km":
		r.IntercityPerKm = value
	case "express_buffer":
		r.ExpressBuffer = value
	case "intercity_low_buffer":
		r.IntercityLowBuffer = value
	case "intercity_high_buffer":
		r.IntercityHighBuffer = value
	case "intercity_buffer_km":
		r.IntercityBufferKm = value
	case "peak_surge":
		r.PeakSurge = value
	}
}
