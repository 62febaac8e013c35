// README: Quote handler; validates the request envelope and delegates to pricing.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"farecast/internal/modules/pricing"
)

type QuoteHandler struct {
	pricing *pricing.Service
}

func NewQuoteHandler(svc *pricing.Service) *QuoteHandler {
	return &QuoteHandler{pricing: svc}
}

type quoteRequest struct {
	StartLocation string `json:"startLocation"`
	EndLocation   string `json:"endLocation"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Category      string `json:"category"`
	Transmission  string `json:"transmission"`
}

type quoteResponse struct {
	Success        bool              `json:"success"`
	RideType       pricing.RideType  `json:"ride_type"`
	PredictedPrice int               `json:"predicted_price"`
	DistanceKm     float64           `json:"distance_km"`
	DaysCharged    int               `json:"days_charged"`
	Breakdown      pricing.Breakdown `json:"breakdown"`
}

// Predict handles POST /api/quote. Malformed input is the only failure a
// caller can see; unknown category or transmission values are resolved to
// defaults, not rejected.
func (h *QuoteHandler) Predict(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.StartLocation == "" || req.EndLocation == "" {
		writeError(c, http.StatusBadRequest, "startLocation and endLocation are required")
		return
	}

	start, err := parseISO(req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := parseISO(req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid endDate")
		return
	}

	quote, err := h.pricing.Quote(c.Request.Context(), pricing.QuoteRequest{
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		StartDate:     start,
		EndDate:       end,
		Category:      req.Category,
		Transmission:  req.Transmission,
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(c, http.StatusOK, quoteResponse{
		Success:        true,
		RideType:       quote.RideType,
		PredictedPrice: quote.PredictedPrice,
		DistanceKm:     quote.DistanceKm,
		DaysCharged:    quote.DaysCharged,
		Breakdown:      quote.Breakdown,
	})
}

// isoLayouts covers the ISO-8601 shapes clients actually send, from full
// RFC 3339 down to a bare date.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseISO(s string) (time.Time, error) {
	var err error
	for _, layout := range isoLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
