package sorting

import "github.com/aalvaropc/carlens/internal/domain"

// Factory builds sorters sharing one enricher.
type Factory struct {
	enricher Enricher
	query    domain.QueryConfig
}

func NewFactory(enricher Enricher, query domain.QueryConfig) *Factory {
	return &Factory{enricher: enricher, query: query}
}

func (f *Factory) Price() Sorter {
	return NewPrice(f.query.Currency, f.enricher)
}

func (f *Factory) ReleaseDate() Sorter {
	return NewReleaseDate(f.enricher)
}

func (f *Factory) TypeCurrency() Sorter {
	opts := []TypeCurrencyOption{WithAscending(f.query.Ascending)}
	if len(f.query.TypeCurrency) > 0 {
		opts = append(opts, WithMapping(f.query.TypeCurrency))
	}
	return NewTypeCurrency(f.enricher, opts...)
}
