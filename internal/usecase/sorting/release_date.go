package sorting

import (
	"slices"

	"github.com/aalvaropc/carlens/internal/domain"
)

// ReleaseDate orders vehicles by their brand's release date, newest first.
// Vehicles whose brand could not be resolved keep their relative order at the end.
type ReleaseDate struct {
	enricher Enricher
}

func NewReleaseDate(enricher Enricher) *ReleaseDate {
	return &ReleaseDate{enricher: enricher}
}

func (s *ReleaseDate) Sort(vehicles []domain.Vehicle) []domain.Vehicle {
	out := s.enricher.Enrich(vehicles)
	slices.SortStableFunc(out, compareDatesDesc)
	return out
}
