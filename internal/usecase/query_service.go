package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
	"github.com/aalvaropc/carlens/internal/usecase/enrich"
	"github.com/aalvaropc/carlens/internal/usecase/filter"
	"github.com/aalvaropc/carlens/internal/usecase/sorting"
)

// QueryService is the single entry point for catalog queries. Every call works
// on a fresh snapshot of the vehicle catalog and never returns a nil slice.
type QueryService struct {
	vehicles ports.VehicleCatalog
	filters  *filter.Factory
	sorters  *sorting.Factory
	log      *slog.Logger
}

type QueryOption func(*queryOptions)

type queryOptions struct {
	log *slog.Logger
}

func WithLogger(l *slog.Logger) QueryOption {
	return func(o *queryOptions) {
		if l != nil {
			o.log = l
		}
	}
}

func NewQueryService(vehicles ports.VehicleCatalog, brands ports.BrandCatalog, q domain.QueryConfig, opts ...QueryOption) *QueryService {
	o := queryOptions{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	enricher := enrich.New(brands, enrich.WithLogger(o.log))
	return &QueryService{
		vehicles: vehicles,
		filters:  filter.NewFactory(brands, q.Currency, o.log),
		sorters:  sorting.NewFactory(enricher, q),
		log:      o.log,
	}
}

// FilterByBrandAndPrice returns vehicles of brand priced within [min, max].
// Unset bounds default to zero and filter.MaxPrice.
func (s *QueryService) FilterByBrandAndPrice(brand string, min, max decimal.NullDecimal) ([]domain.Vehicle, error) {
	f, err := s.filters.BrandPrice(brand, min, max)
	if err != nil {
		return nil, err
	}
	return s.applyFilter("brand_price", f), nil
}

// FilterByBrandAndReleaseDate returns vehicles of brand released within [start, end].
func (s *QueryService) FilterByBrandAndReleaseDate(brand string, start, end time.Time) ([]domain.Vehicle, error) {
	f, err := s.filters.BrandDate(brand, start, end)
	if err != nil {
		return nil, err
	}
	return s.applyFilter("brand_date", f), nil
}

func (s *QueryService) SortByPrice() []domain.Vehicle {
	return s.applySort("price", s.sorters.Price())
}

func (s *QueryService) SortByReleaseDate() []domain.Vehicle {
	return s.applySort("release_date", s.sorters.ReleaseDate())
}

func (s *QueryService) SortByTypeAndCurrency() []domain.Vehicle {
	return s.applySort("type_currency", s.sorters.TypeCurrency())
}

func (s *QueryService) applyFilter(name string, f filter.Filter) []domain.Vehicle {
	snap := s.snapshot()
	out := filter.Apply(f, snap)
	s.log.Debug("query.filter", "filter", name, "scanned", len(snap), "matched", len(out))
	return out
}

func (s *QueryService) applySort(name string, sorter sorting.Sorter) []domain.Vehicle {
	out := sorter.Sort(s.snapshot())
	s.log.Debug("query.sort", "sort", name, "vehicles", len(out))
	return out
}

// snapshot drops empty records an upstream parser may have left behind.
func (s *QueryService) snapshot() []domain.Vehicle {
	all := s.vehicles.FindAll()
	out := make([]domain.Vehicle, 0, len(all))
	for _, v := range all {
		if isEmptyRecord(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func isEmptyRecord(v domain.Vehicle) bool {
	return v.Type == "" && v.Brand == "" && v.Model == "" && len(v.Prices) == 0 && v.BrandInfo == nil
}
