package filter

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

// BrandDateParams configures a BrandDate filter. Both dates are inclusive.
type BrandDateParams struct {
	Brand string    `validate:"required"`
	Start time.Time `validate:"required"`
	End   time.Time `validate:"required"`
}

// BrandDate matches vehicles of one brand whose brand was released in [start, end].
// The release date is looked up per vehicle; lookup faults count as no match.
type BrandDate struct {
	brand  string
	start  time.Time
	end    time.Time
	brands ports.BrandCatalog
	log    *slog.Logger
}

type BrandDateOption func(*BrandDate)

func WithLogger(l *slog.Logger) BrandDateOption {
	return func(f *BrandDate) {
		if l != nil {
			f.log = l
		}
	}
}

func NewBrandDate(p BrandDateParams, brands ports.BrandCatalog, opts ...BrandDateOption) (*BrandDate, error) {
	p.Brand = strings.TrimSpace(p.Brand)
	if err := validate.Struct(p); err != nil {
		return nil, domain.InvalidArgument("filter.brand_date", err)
	}
	if brands == nil {
		return nil, domain.InvalidArgument("filter.brand_date",
			fmt.Errorf("%w: brand catalog is required", domain.ErrInvalidArgument))
	}

	start := domain.ReleaseDay(p.Start)
	end := domain.ReleaseDay(p.End)
	if start.After(end) {
		return nil, domain.InvalidArgument("filter.brand_date",
			fmt.Errorf("%w: start date %s is after end date %s",
				domain.ErrInvalidRange, start.Format(domain.DateLayout), end.Format(domain.DateLayout)))
	}

	f := &BrandDate{
		brand:  p.Brand,
		start:  start,
		end:    end,
		brands: brands,
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *BrandDate) Match(v domain.Vehicle) bool {
	if !domain.SameBrand(f.brand, v.Brand) {
		return false
	}

	b, ok, err := f.lookup(v.Brand)
	if err != nil {
		f.log.Warn("filter.brand_date.lookup_failed", "brand", v.Brand, "model", v.Model, "err", err)
		return false
	}
	if !ok {
		return false
	}

	d := b.ReleaseDate
	return !d.IsZero() && !d.Before(f.start) && !d.After(f.end)
}

// lookup converts a panicking catalog into a failed lookup so one bad record
// cannot abort the whole query.
func (f *BrandDate) lookup(name string) (b domain.Brand, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok, err = domain.Brand{}, false, fmt.Errorf("brand lookup panicked: %v", r)
		}
	}()
	return f.brands.FindByName(name)
}
