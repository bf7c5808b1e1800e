package domain

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// DefaultCurrency is used wherever a price lookup does not name a currency.
const DefaultCurrency = "USD"

// DateLayout is the ISO calendar date layout accepted on the command line.
const DateLayout = "2006-01-02"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Brand is brand metadata resolved from the brand catalog.
type Brand struct {
	Name        string    `json:"name" validate:"required"`
	ReleaseDate time.Time `json:"releaseDate" validate:"required"`
}

// NewBrand validates its input and returns a Brand whose release date is
// truncated to a UTC calendar date.
func NewBrand(name string, releaseDate time.Time) (Brand, error) {
	b := Brand{
		Name:        strings.TrimSpace(name),
		ReleaseDate: ReleaseDay(releaseDate),
	}
	if err := validate.Struct(b); err != nil {
		return Brand{}, InvalidArgument("domain.new_brand", err)
	}
	return b, nil
}

// ReleaseDay drops the clock part of t, keeping its calendar date in UTC.
func ReleaseDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Day is a shorthand for a UTC calendar date.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// BrandKey folds a brand name for case-insensitive comparison.
// Blank names fold to "" and never match anything.
func BrandKey(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return cases.Fold().String(name)
}

// SameBrand reports whether a and b name the same brand.
func SameBrand(a, b string) bool {
	ka := BrandKey(a)
	return ka != "" && ka == BrandKey(b)
}

// Prices maps a currency code to a non-negative amount.
type Prices map[string]decimal.Decimal

// Get is safe on a nil map.
func (p Prices) Get(currency string) (decimal.Decimal, bool) {
	if p == nil {
		return decimal.Decimal{}, false
	}
	v, ok := p[currency]
	return v, ok
}

// Clone never returns nil.
func (p Prices) Clone() Prices {
	out := make(Prices, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Vehicle is one catalog record. BrandInfo is nil until enrichment resolves it.
// Values are treated as immutable: use Clone/WithBrandInfo to derive new ones.
type Vehicle struct {
	Type      string `json:"type"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Prices    Prices `json:"prices"`
	BrandInfo *Brand `json:"brandInfo,omitempty"`
}

// NewVehicle copies prices so the caller keeps no handle on the record's map.
func NewVehicle(typ, brand, model string, prices Prices) Vehicle {
	return Vehicle{
		Type:   typ,
		Brand:  brand,
		Model:  model,
		Prices: prices.Clone(),
	}
}

// HasBrand reports whether the record names a brand at all.
func (v Vehicle) HasBrand() bool {
	return strings.TrimSpace(v.Brand) != ""
}

// Price returns the amount in currency, if present.
func (v Vehicle) Price(currency string) (decimal.Decimal, bool) {
	return v.Prices.Get(currency)
}

// ReleaseDate returns the enriched release date, if any.
func (v Vehicle) ReleaseDate() (time.Time, bool) {
	if v.BrandInfo == nil {
		return time.Time{}, false
	}
	return v.BrandInfo.ReleaseDate, true
}

// WithBrandInfo returns a copy carrying b. The receiver is left untouched.
func (v Vehicle) WithBrandInfo(b Brand) Vehicle {
	out := v.Clone()
	out.BrandInfo = &b
	return out
}

// Clone returns a deep copy.
func (v Vehicle) Clone() Vehicle {
	out := v
	out.Prices = v.Prices.Clone()
	if v.BrandInfo != nil {
		b := *v.BrandInfo
		out.BrandInfo = &b
	}
	return out
}

// CloneVehicles deep-copies a slice and never returns nil.
func CloneVehicles(in []Vehicle) []Vehicle {
	out := make([]Vehicle, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}
