// Package memcatalog holds the catalogs in memory once they have been parsed.
// Both catalogs are read-only after construction and safe for concurrent readers.
package memcatalog

import (
	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

type BrandCatalog struct {
	brands []domain.Brand
}

func NewBrandCatalog(brands []domain.Brand) *BrandCatalog {
	cp := make([]domain.Brand, len(brands))
	copy(cp, brands)
	return &BrandCatalog{brands: cp}
}

var _ ports.BrandCatalog = (*BrandCatalog)(nil)

// FindByName returns the first brand whose name folds to the same key.
func (c *BrandCatalog) FindByName(name string) (domain.Brand, bool, error) {
	key := domain.BrandKey(name)
	if key == "" {
		return domain.Brand{}, false, nil
	}
	for _, b := range c.brands {
		if domain.BrandKey(b.Name) == key {
			return b, true, nil
		}
	}
	return domain.Brand{}, false, nil
}

// FindAllByNames returns every catalog entry matching one of names, in catalog order.
func (c *BrandCatalog) FindAllByNames(names []string) ([]domain.Brand, error) {
	if len(names) == 0 {
		return []domain.Brand{}, nil
	}

	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		if k := domain.BrandKey(n); k != "" {
			wanted[k] = struct{}{}
		}
	}

	out := []domain.Brand{}
	for _, b := range c.brands {
		if _, ok := wanted[domain.BrandKey(b.Name)]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

// All returns a copy of every brand in load order.
func (c *BrandCatalog) All() []domain.Brand {
	out := make([]domain.Brand, len(c.brands))
	copy(out, c.brands)
	return out
}
