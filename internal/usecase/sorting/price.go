package sorting

import (
	"slices"
	"strings"

	"github.com/aalvaropc/carlens/internal/domain"
)

// Price orders vehicles by their price in one currency, highest first.
// Vehicles without that currency rank as if priced at zero.
type Price struct {
	currency string
	enricher Enricher
}

func NewPrice(currency string, enricher Enricher) *Price {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &Price{currency: currency, enricher: enricher}
}

func (s *Price) Sort(vehicles []domain.Vehicle) []domain.Vehicle {
	out := s.enricher.Enrich(vehicles)
	slices.SortStableFunc(out, func(a, b domain.Vehicle) int {
		return priceOrZero(b, s.currency).Cmp(priceOrZero(a, s.currency))
	})
	return out
}
