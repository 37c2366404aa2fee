package transformers

import (
	"iter"

	"house-info-api/internal/models"

	"googlemaps.github.io/maps"
)

type AddressExtractor interface {
	ExtractCandidates(lines []string) iter.Seq[string]
	Candidates(lines []string) []string
	BestCandidate(lines []string) (string, bool)
}

type AddressTransformer interface {
	CacheKeyComponent(address string) string
	TransformGeocodeResult(query string, result maps.GeocodingResult) *models.AddressResult
}
