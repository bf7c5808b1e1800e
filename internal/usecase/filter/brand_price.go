package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/domain"
)

// MaxPrice is the upper bound used when none is given.
var MaxPrice = decimal.NewFromInt(math.MaxInt64)

// BrandPriceParams configures a BrandPrice filter. Unset bounds default to
// zero and MaxPrice; an empty currency defaults to USD.
type BrandPriceParams struct {
	Brand    string `validate:"required"`
	Min      decimal.NullDecimal
	Max      decimal.NullDecimal
	Currency string
}

// BrandPrice matches vehicles of one brand priced within [min, max] in a currency.
type BrandPrice struct {
	brand    string
	min      decimal.Decimal
	max      decimal.Decimal
	currency string
}

func NewBrandPrice(p BrandPriceParams) (*BrandPrice, error) {
	p.Brand = strings.TrimSpace(p.Brand)
	if err := validate.Struct(p); err != nil {
		return nil, domain.InvalidArgument("filter.brand_price", err)
	}

	f := &BrandPrice{
		brand:    p.Brand,
		min:      decimal.Zero,
		max:      MaxPrice,
		currency: strings.ToUpper(strings.TrimSpace(p.Currency)),
	}
	if p.Min.Valid {
		f.min = p.Min.Decimal
	}
	if p.Max.Valid {
		f.max = p.Max.Decimal
	}
	if f.currency == "" {
		f.currency = domain.DefaultCurrency
	}

	if f.min.GreaterThan(f.max) {
		return nil, domain.InvalidArgument("filter.brand_price",
			fmt.Errorf("%w: min price %s is greater than max price %s", domain.ErrInvalidRange, f.min, f.max))
	}
	return f, nil
}

func (f *BrandPrice) Match(v domain.Vehicle) bool {
	if !domain.SameBrand(f.brand, v.Brand) {
		return false
	}
	price, ok := v.Price(f.currency)
	if !ok {
		return false
	}
	return price.GreaterThanOrEqual(f.min) && price.LessThanOrEqual(f.max)
}

func (f *BrandPrice) Currency() string { return f.currency }
