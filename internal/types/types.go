// README: Common value objects shared across modules.
package types

// Coordinate is a geographic point in decimal degrees. Immutable once
// resolved; always passed by value.
type Coordinate struct {
	Lat float64
	Lng float64
}
