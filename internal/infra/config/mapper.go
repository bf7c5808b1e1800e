package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/carlens/internal/domain"
)

var knownFormats = map[string]bool{"table": true, "json": true, "xml": true}

// apply copies every value set in y onto cfg.
func apply(path string, cfg domain.Config, y yamlCarlens) (domain.Config, error) {
	if s := strings.TrimSpace(y.Data.Brands); s != "" {
		cfg.Data.BrandsFile = s
	}
	if s := strings.TrimSpace(y.Data.Vehicles); s != "" {
		cfg.Data.VehiclesFile = s
	}

	if s := strings.ToLower(strings.TrimSpace(y.Output.Format)); s != "" {
		if !knownFormats[s] {
			return cfg, invalidField(path, "output.format", fmt.Sprintf("unsupported format %q", y.Output.Format))
		}
		cfg.Output.Format = s
	}
	if s := strings.TrimSpace(y.Output.Currency); s != "" {
		cfg.Output.Currency = strings.ToUpper(s)
	}

	if s := strings.TrimSpace(y.Query.Currency); s != "" {
		cfg.Query.Currency = strings.ToUpper(s)
	}
	if y.Query.Ascending != nil {
		cfg.Query.Ascending = *y.Query.Ascending
	}
	if !y.Query.TypeCurrency.IsZero() {
		tcs, err := mapTypeCurrency(path, &y.Query.TypeCurrency)
		if err != nil {
			return cfg, err
		}
		cfg.Query.TypeCurrency = tcs
	}

	if s := strings.TrimSpace(y.Results.Dir); s != "" {
		cfg.Results.Dir = s
	}
	if y.Results.Save != nil {
		cfg.Results.Save = *y.Results.Save
	}

	return cfg, nil
}

// mapTypeCurrency reads a TYPE: CURRENCY mapping in document order.
func mapTypeCurrency(path string, n *yaml.Node) ([]domain.TypeCurrency, error) {
	if n.Kind != yaml.MappingNode {
		return nil, invalidField(path, "query.type_currency", "expected a mapping of type to currency")
	}

	raw := make([]domain.TypeCurrency, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, invalidField(path, "query.type_currency."+k.Value, "currency must be a scalar")
		}
		raw = append(raw, domain.TypeCurrency{Type: k.Value, Currency: v.Value})
	}

	out := domain.NormalizeTypeCurrencies(raw)
	if len(out) == 0 {
		return nil, invalidField(path, "query.type_currency", "mapping is empty")
	}
	return out, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
