package domain

import "strings"

// Config represents the carlens configuration loaded from carlens.yaml.
type Config struct {
	Data    DataConfig
	Output  OutputConfig
	Query   QueryConfig
	Results ResultsConfig
}

// DataConfig points at the files the catalogs are loaded from.
// Relative paths are resolved against the workspace root.
type DataConfig struct {
	BrandsFile   string
	VehiclesFile string
}

type OutputConfig struct {
	Format   string
	Currency string
}

type QueryConfig struct {
	Currency     string
	TypeCurrency []TypeCurrency
	Ascending    bool
}

type ResultsConfig struct {
	Dir  string
	Save bool
}

// TypeCurrency binds a vehicle type to the currency used to rank it.
// Order in a slice of these is significant.
type TypeCurrency struct {
	Type     string
	Currency string
}

// DefaultTypeCurrencies returns a fresh copy of the built-in grouping.
func DefaultTypeCurrencies() []TypeCurrency {
	return []TypeCurrency{
		{Type: "SUV", Currency: "EUR"},
		{Type: "TRUCK", Currency: "USD"},
		{Type: "SEDAN", Currency: "JPY"},
	}
}

// NormalizeTypeCurrencies uppercases both sides, drops blanks and keeps the
// first occurrence of a repeated type.
func NormalizeTypeCurrencies(in []TypeCurrency) []TypeCurrency {
	seen := make(map[string]bool, len(in))
	out := make([]TypeCurrency, 0, len(in))
	for _, tc := range in {
		typ := strings.ToUpper(strings.TrimSpace(tc.Type))
		cur := strings.ToUpper(strings.TrimSpace(tc.Currency))
		if typ == "" || cur == "" || seen[typ] {
			continue
		}
		seen[typ] = true
		out = append(out, TypeCurrency{Type: typ, Currency: cur})
	}
	return out
}

// DefaultConfig provides sane defaults if carlens.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Data: DataConfig{
			BrandsFile:   "data/brands.csv",
			VehiclesFile: "data/vehicles.xml",
		},
		Output: OutputConfig{
			Format:   "table",
			Currency: DefaultCurrency,
		},
		Query: QueryConfig{
			Currency:     DefaultCurrency,
			TypeCurrency: DefaultTypeCurrencies(),
			Ascending:    true,
		},
		Results: ResultsConfig{
			Dir: "results",
		},
	}
}
