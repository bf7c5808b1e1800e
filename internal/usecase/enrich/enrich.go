// Package enrich attaches brand metadata to vehicle records with a single
// batched catalog lookup per call.
package enrich

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

// Enricher holds no state besides its collaborators; Enrich is a pure function
// of its input and the read-only catalog.
type Enricher struct {
	brands ports.BrandCatalog
	log    *slog.Logger
}

type Option func(*Enricher)

func WithLogger(l *slog.Logger) Option {
	return func(e *Enricher) {
		if l != nil {
			e.log = l
		}
	}
}

func New(brands ports.BrandCatalog, opts ...Option) *Enricher {
	e := &Enricher{
		brands: brands,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enrich returns a new slice of the same length and order. Records that already
// carry brand info are passed through; the rest get the matching brand when the
// catalog knows it. Unresolved brands and lookup faults leave BrandInfo nil.
func (e *Enricher) Enrich(vehicles []domain.Vehicle) []domain.Vehicle {
	out := make([]domain.Vehicle, len(vehicles))
	copy(out, vehicles)

	names := missingBrandNames(vehicles)
	if len(names) == 0 {
		return out
	}

	found, err := e.brands.FindAllByNames(names)
	if err != nil {
		e.log.Warn("enrich.lookup_failed", "brands", len(names), "err", err)
		return out
	}

	byKey := make(map[string]domain.Brand, len(found))
	for _, b := range found {
		k := domain.BrandKey(b.Name)
		if _, dup := byKey[k]; !dup {
			byKey[k] = b
		}
	}

	resolved := 0
	for i, v := range out {
		if v.BrandInfo != nil || !v.HasBrand() {
			continue
		}
		if b, ok := byKey[domain.BrandKey(v.Brand)]; ok {
			out[i] = v.WithBrandInfo(b)
			resolved++
		}
	}

	e.log.Debug("enrich.done", "vehicles", len(vehicles), "lookups", len(names), "resolved", resolved)
	return out
}

// missingBrandNames collects the distinct brand names still lacking metadata,
// first spelling wins.
func missingBrandNames(vehicles []domain.Vehicle) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, v := range vehicles {
		if v.BrandInfo != nil || !v.HasBrand() {
			continue
		}
		k := domain.BrandKey(v.Brand)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		names = append(names, v.Brand)
	}
	return names
}
