package ports

import "github.com/aalvaropc/carlens/internal/domain"

// BrandCatalog is a read-only lookup of brand metadata.
// Names are matched case-insensitively; a miss is not an error.
type BrandCatalog interface {
	// FindByName returns the first brand matching name.
	FindByName(name string) (domain.Brand, bool, error)
	// FindAllByNames resolves many names at once. Order of the result is unspecified
	// and only matches are returned; an empty input yields an empty result.
	FindAllByNames(names []string) ([]domain.Brand, error)
}
