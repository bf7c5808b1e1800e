// Package sorting orders vehicle snapshots. Every sorter enriches its input
// once with a batched brand lookup, then applies a stable sort; sorting never
// drops or adds records.
package sorting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/domain"
)

// Sorter returns a new, ordered slice.
type Sorter interface {
	Sort(vehicles []domain.Vehicle) []domain.Vehicle
}

// Enricher resolves brand metadata for a batch of vehicles.
type Enricher interface {
	Enrich(vehicles []domain.Vehicle) []domain.Vehicle
}

// priceOrZero is the price sort key: an absent price ranks as zero.
func priceOrZero(v domain.Vehicle, currency string) decimal.Decimal {
	if p, ok := v.Price(currency); ok {
		return p
	}
	return decimal.Zero
}

// compareDatesDesc orders resolved release dates newest first and unresolved ones last.
func compareDatesDesc(a, b domain.Vehicle) int {
	da, okA := a.ReleaseDate()
	db, okB := b.ReleaseDate()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return compareTimes(db, da)
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// comparePricesAscNullsLast ranks vehicles lacking currency after every priced one.
func comparePricesAscNullsLast(a, b domain.Vehicle, currency string) int {
	pa, okA := a.Price(currency)
	pb, okB := b.Price(currency)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return pa.Cmp(pb)
}
