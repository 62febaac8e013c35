// README: Config loader with env defaults for HTTP, upstreams, and the rate tables.
package config

import (
	"os"
	"strconv"
	"time"
)

type GeocodeConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type RoutingConfig struct {
	// Provider selects the road-routing backend: "osrm" or "gmaps".
	Provider     string
	OSRMBaseURL  string
	GoogleAPIKey string
	Timeout      time.Duration
	// FallbackKm is the fixed distance used when geocoding fails for
	// either endpoint and no route or estimate is computable.
	FallbackKm float64
}

// RatesConfig carries every pricing constant. The numbers are configuration,
// not behavior; these defaults match the reference tariff.
type RatesConfig struct {
	MinKm       float64
	PlatformFee float64

	PerDayBase   float64
	ExpressPerKm float64

	IntracityBase  float64
	IntracityPerKm float64
	IntracityCapKm float64

	IntercityPerKm float64

	ExpressBuffer       float64
	IntercityLowBuffer  float64
	IntercityHighBuffer float64
	IntercityBufferKm   float64

	PeakSurge        float64
	MorningPeakStart int
	MorningPeakEnd   int
	EveningPeakStart int
	EveningPeakEnd   int

	// Unknown values in the maps resolve to multiplier 1.0 / fee 0;
	// absent request fields resolve to the named defaults first.
	CategoryMultiplier  map[string]float64
	DefaultCategory     string
	TransmissionFee     map[string]float64
	DefaultTransmission string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN is optional; when empty the rate table keeps its defaults.
		DSN string
	}
	Redis struct {
		// Addr is optional; when empty the geocode cache is in-process.
		Addr string
	}
	Geocode GeocodeConfig
	Routing RoutingConfig
	Rates   RatesConfig
	AI      struct {
		// GeminiKey is optional; when empty the learned price source is off.
		GeminiKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FARECAST_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("FARECAST_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("FARECAST_REDIS_ADDR", "")

	cfg.Geocode.BaseURL = envOrDefault("FARECAST_GEOCODE_URL", "https://nominatim.openstreetmap.org")
	cfg.Geocode.UserAgent = envOrDefault("FARECAST_GEOCODE_AGENT", "farecast-pricing-engine")
	cfg.Geocode.Timeout = envOrDefaultDuration("FARECAST_GEOCODE_TIMEOUT", 5*time.Second)

	cfg.Routing.Provider = envOrDefault("FARECAST_ROUTER", "osrm")
	cfg.Routing.OSRMBaseURL = envOrDefault("FARECAST_OSRM_URL", "http://router.project-osrm.org")
	cfg.Routing.GoogleAPIKey = envOrDefault("GOOGLE_MAPS_API_KEY", "")
	cfg.Routing.Timeout = envOrDefaultDuration("FARECAST_ROUTING_TIMEOUT", 5*time.Second)
	cfg.Routing.FallbackKm = envOrDefaultFloat("FARECAST_FALLBACK_KM", 75.0)

	cfg.Rates = DefaultRates()
	cfg.Rates.MinKm = envOrDefaultFloat("FARECAST_MIN_KM", cfg.Rates.MinKm)
	cfg.Rates.PlatformFee = envOrDefaultFloat("FARECAST_PLATFORM_FEE", cfg.Rates.PlatformFee)
	cfg.Rates.PerDayBase = envOrDefaultFloat("FARECAST_PER_DAY_BASE", cfg.Rates.PerDayBase)
	cfg.Rates.PeakSurge = envOrDefaultFloat("FARECAST_PEAK_SURGE", cfg.Rates.PeakSurge)

	cfg.AI.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	return cfg, nil
}

// DefaultRates returns the built-in tariff. Callers mutate their copy freely.
func DefaultRates() RatesConfig {
	return RatesConfig{
		MinKm:       5.0,
		PlatformFee: 100,

		PerDayBase:   350,
		ExpressPerKm: 24,

		IntracityBase:  180,
		IntracityPerKm: 18,
		IntracityCapKm: 40,

		IntercityPerKm: 22,

		ExpressBuffer:       1.35,
		IntercityLowBuffer:  1.25,
		IntercityHighBuffer: 1.35,
		IntercityBufferKm:   150,

		PeakSurge:        1.25,
		MorningPeakStart: 8,
		MorningPeakEnd:   10,
		EveningPeakStart: 17,
		EveningPeakEnd:   21,

		CategoryMultiplier: map[string]float64{
			"Hatchback": 1.5,
			"Sedan":     1.9,
			"SUV":       2.3,
			"Luxury":    3.5,
		},
		DefaultCategory: "Hatchback",
		TransmissionFee: map[string]float64{
			"Manual":    100,
			"Automatic": 200,
		},
		DefaultTransmission: "Manual",
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
