// README: Place-key normalization for coordinate cache lookups.
package geocode

import (
	"strings"
	"unicode"
)

// PlaceKey normalizes a free-text place name into a cache key: lower-cased
// with all whitespace removed, prefixed so geo entries never collide with
// other keys in a shared backend. Two inputs that normalize identically
// always resolve to the same cached coordinate.
func PlaceKey(place string) string {
	var b strings.Builder
	b.WriteString("geo_")
	for _, r := range strings.ToLower(place) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
