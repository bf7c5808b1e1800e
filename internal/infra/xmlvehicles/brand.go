package xmlvehicles

import "strings"

// UnknownBrand is assigned when no rule matches the model name.
const UnknownBrand = "Unknown"

type modelRule struct {
	fragment string
	brand    string
}

// modelRules are checked in order against the lower-cased model name.
var modelRules = []modelRule{
	{"rav4", "Toyota"},
	{"civic", "Honda"},
	{"f-150", "Ford"},
	{"330i", "Audi"},
	{"q5", "Audi"},
	{"silverado", "Chevrolet"},
	{"rogue", "Nissan"},
	{"elantra", "Hyundai"},
}

// InferBrand maps a model name to its brand.
func InferBrand(model string) string {
	m := strings.ToLower(strings.TrimSpace(model))
	if m == "" {
		return UnknownBrand
	}

	for _, r := range modelRules {
		if strings.Contains(m, r.fragment) {
			return r.brand
		}
	}

	switch {
	case strings.HasPrefix(m, "model"):
		return "Tesla"
	case strings.HasPrefix(m, "c-"):
		return "Mercedes-Benz"
	}
	return UnknownBrand
}
