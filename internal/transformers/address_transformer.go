package transformers

import (
	"strings"

	"house-info-api/internal/models"

	"googlemaps.github.io/maps"
)

// street suffix abbreviations applied when building cache keys
var streetSuffixes = []struct{ full, abbr string }{
	{"drive", "dr"},
	{"street", "st"},
	{"avenue", "ave"},
	{"road", "rd"},
	{"boulevard", "blvd"},
	{"lane", "ln"},
	{"circle", "cir"},
	{"court", "ct"},
	{"terrace", "ter"},
	{"place", "pl"},
	{"highway", "hwy"},
}

type addressTransformer struct{}

func NewAddressTransformer() AddressTransformer {
	return &addressTransformer{}
}

// CacheKeyComponent folds case, punctuation spacing and common street suffixes
// so that equivalent spellings share one cache entry.
func (t *addressTransformer) CacheKeyComponent(address string) string {
	s := strings.ToLower(address)
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, ".", " ")
	words := strings.Fields(s)
	for i, w := range words {
		if i == 0 {
			continue
		}
		for _, suffix := range streetSuffixes {
			if w == suffix.full {
				words[i] = suffix.abbr
				break
			}
		}
	}
	return strings.Join(words, " ")
}

func (t *addressTransformer) TransformGeocodeResult(query string, result maps.GeocodingResult) *models.AddressResult {
	return &models.AddressResult{
		Address:          query,
		FormattedAddress: result.FormattedAddress,
		Latitude:         result.Geometry.Location.Lat,
		Longitude:        result.Geometry.Location.Lng,
		PlaceID:          result.PlaceID,
	}
}
