package sorting

import (
	"slices"
	"strings"

	"github.com/aalvaropc/carlens/internal/domain"
)

// TypeCurrency groups vehicles by upper-cased type and ranks each group by the
// currency configured for it.
//
// Configured groups come first, in configuration order, followed by the other
// groups in order of first appearance ranked by USD. Each group is sorted
// ascending with unpriced vehicles last. When descending, the whole
// concatenation is reversed, so group order flips along with the order inside
// each group.
type TypeCurrency struct {
	mapping   []domain.TypeCurrency
	ascending bool
	enricher  Enricher
}

type TypeCurrencyOption func(*TypeCurrency)

// WithMapping replaces the default SUV/SEDAN/TRUCK grouping.
func WithMapping(m []domain.TypeCurrency) TypeCurrencyOption {
	return func(s *TypeCurrency) { s.mapping = domain.NormalizeTypeCurrencies(m) }
}

func WithAscending(asc bool) TypeCurrencyOption {
	return func(s *TypeCurrency) { s.ascending = asc }
}

func NewTypeCurrency(enricher Enricher, opts ...TypeCurrencyOption) *TypeCurrency {
	s := &TypeCurrency{
		mapping:   domain.DefaultTypeCurrencies(),
		ascending: true,
		enricher:  enricher,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TypeCurrency) Sort(vehicles []domain.Vehicle) []domain.Vehicle {
	enriched := s.enricher.Enrich(vehicles)

	groups := map[string][]domain.Vehicle{}
	var order []string
	for _, v := range enriched {
		key := strings.ToUpper(strings.TrimSpace(v.Type))
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], v)
	}

	out := make([]domain.Vehicle, 0, len(enriched))
	for _, tc := range s.mapping {
		group, ok := groups[tc.Type]
		if !ok {
			continue
		}
		out = append(out, sortGroup(group, tc.Currency)...)
		delete(groups, tc.Type)
	}
	for _, key := range order {
		group, ok := groups[key]
		if !ok {
			continue
		}
		out = append(out, sortGroup(group, domain.DefaultCurrency)...)
	}

	if !s.ascending {
		slices.Reverse(out)
	}
	return out
}

func sortGroup(group []domain.Vehicle, currency string) []domain.Vehicle {
	slices.SortStableFunc(group, func(a, b domain.Vehicle) int {
		return comparePricesAscNullsLast(a, b, currency)
	})
	return group
}
