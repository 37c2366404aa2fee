package services

import (
	"math/rand/v2"
	"strings"
	"sync"

	"house-info-api/internal/models"
)

const singleFamilyHome = "Single Family Home"

var bathroomChoices = []float64{1.0, 1.5, 2.0, 2.5, 3.0}

type valueRange struct{ min, max int }

var (
	californiaValues = valueRange{800_000, 2_000_000}
	newYorkValues    = valueRange{600_000, 1_500_000}
	defaultValues    = valueRange{200_000, 600_000}
)

// ValuationService fabricates demo property details for a geocoded address.
// The figures are random and carry no real market data.
type ValuationService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewValuationService uses rng for every figure it produces; pass a seeded
// source for reproducible output. A nil rng gets a randomly seeded source.
func NewValuationService(rng *rand.Rand) *ValuationService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ValuationService{rng: rng}
}

func (s *ValuationService) Estimate(address models.AddressResult) *models.PropertyInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.intBetween(baseValueRange(address.FormattedAddress))
	bedrooms := s.intBetween(valueRange{2, 5})
	bathrooms := bathroomChoices[s.rng.IntN(len(bathroomChoices))]
	squareFeet := s.intBetween(valueRange{1200, 3500})
	yearBuilt := s.intBetween(valueRange{1950, 2020})
	lastSale := int(float64(base) * (0.8 + 0.4*s.rng.Float64()))
	propertyType := singleFamilyHome

	return &models.PropertyInfo{
		Address:        address,
		EstimatedValue: &base,
		PropertyType:   &propertyType,
		Bedrooms:       &bedrooms,
		Bathrooms:      &bathrooms,
		SquareFeet:     &squareFeet,
		YearBuilt:      &yearBuilt,
		LastSalePrice:  &lastSale,
	}
}

// baseValueRange matches the state code anywhere in the formatted address.
func baseValueRange(formatted string) valueRange {
	switch {
	case strings.Contains(formatted, "CA"):
		return californiaValues
	case strings.Contains(formatted, "NY"):
		return newYorkValues
	default:
		return defaultValues
	}
}

// intBetween returns an int in [r.min, r.max]. Callers hold s.mu.
func (s *ValuationService) intBetween(r valueRange) int {
	return r.min + s.rng.IntN(r.max-r.min+1)
}
