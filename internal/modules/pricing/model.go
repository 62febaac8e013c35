// README: Pricing tier, breakdown, and quote definitions.
package pricing

import "time"

// RideType is the pricing tier a trip is classified into. It decides which
// rate formula and buffer apply.
type RideType string

const (
	RideIntracity RideType = "INTRACITY"
	RideExpress   RideType = "EXPRESS"
	RideIntercity RideType = "INTERCITY"
)

// Breakdown itemizes the quote. Each component is rounded independently of
// the final price; the parts are not guaranteed to sum to the rounded whole.
// That discrepancy is accepted, not a bug.
type Breakdown struct {
	BaseFare         int     `json:"base_fare"`
	DistanceCost     int     `json:"distance_cost"`
	TransmissionFee  int     `json:"transmission_fee"`
	SurgeMultiplier  float64 `json:"surge_multiplier"`
	BufferMultiplier float64 `json:"buffer_multiplier"`
	PlatformFee      int     `json:"platform_fee"`
}

// Quote is the final priced result for a trip.
type Quote struct {
	RideType       RideType  `json:"ride_type"`
	PredictedPrice int       `json:"predicted_price"`
	DistanceKm     float64   `json:"distance_km"`
	DaysCharged    int       `json:"days_charged"`
	Breakdown      Breakdown `json:"breakdown"`
}

// QuoteRequest is the validated input for a quote. Dates are parsed and
// checked at the HTTP boundary; by the time a request reaches the service it
// carries concrete timestamps.
type QuoteRequest struct {
	StartLocation string
	EndLocation   string
	StartDate     time.Time
	EndDate       time.Time
	Category      string
	Transmission  string
}
