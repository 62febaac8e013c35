// README: Ride classification from distance and booked days.
package pricing

// Classify maps a trip's distance and duration to its pricing tier.
// Distance thresholds are inclusive; a multi-day booking is never INTRACITY
// or EXPRESS regardless of distance.
func Classify(distanceKm float64, days int) RideType {
	switch {
	case distanceKm <= 30 && days == 1:
		return RideIntracity
	case distanceKm <= 60 && days == 1:
		return RideExpress
	default:
		return RideIntercity
	}
}
