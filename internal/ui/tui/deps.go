package tui

import (
	"log/slog"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/usecase"
)

// BrandLister exposes the loaded brand catalog for the brands screen.
type BrandLister interface {
	All() []domain.Brand
}

type Deps struct {
	Root   string
	Query  *usecase.RunQuery
	Brands BrandLister

	// Format and Currency seed the output settings; the format can be
	// changed from the menu.
	Format   string
	Currency string

	Logger *slog.Logger
	Debug  bool
}
