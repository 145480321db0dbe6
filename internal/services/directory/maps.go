// File: internal/services/directory/maps.go
package directory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pharmago/pharmago/internal/domain"
)

const mapsPlaceBase = "https://www.google.com/maps/place/"

// Coordinate text in the deep link is truncated, not rounded. The shorter
// form is what the maps frontend expects for a centered view.
const (
	latTextLen = 11
	lngTextLen = 10
)

// BuildMapURL derives the Google Maps deep link for one directory row.
// With coordinates the address part is suffixed with a "/@lat,lng" anchor;
// without them the link is address-only.
func BuildMapURL(row *domain.Pharmacy) string {
	place := mapsPlaceBase +
		plusEncode(row.Address) + ",+" +
		plusEncode(row.Commune) + ",+" +
		plusEncode(row.RegionName)

	if !row.HasCoordinates() {
		return place
	}
	return fmt.Sprintf("%s/@%s,%s",
		place,
		truncateCoordinate(*row.Lat, latTextLen),
		truncateCoordinate(*row.Lng, lngTextLen),
	)
}

func plusEncode(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "+")
}

func truncateCoordinate(v float64, maxLen int) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if len(text) > maxLen {
		return text[:maxLen]
	}
	return text
}
