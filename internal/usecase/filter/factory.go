package filter

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/ports"
)

// Factory builds filters bound to a brand catalog.
type Factory struct {
	brands   ports.BrandCatalog
	currency string
	log      *slog.Logger
}

func NewFactory(brands ports.BrandCatalog, currency string, log *slog.Logger) *Factory {
	if log == nil {
		log = discardLogger()
	}
	return &Factory{brands: brands, currency: currency, log: log}
}

func (f *Factory) BrandPrice(brand string, min, max decimal.NullDecimal) (Filter, error) {
	bp, err := NewBrandPrice(BrandPriceParams{
		Brand:    brand,
		Min:      min,
		Max:      max,
		Currency: f.currency,
	})
	if err != nil {
		return nil, err
	}
	return bp, nil
}

func (f *Factory) BrandDate(brand string, start, end time.Time) (Filter, error) {
	bd, err := NewBrandDate(BrandDateParams{
		Brand: brand,
		Start: start,
		End:   end,
	}, f.brands, WithLogger(f.log))
	if err != nil {
		return nil, err
	}
	return bd, nil
}
