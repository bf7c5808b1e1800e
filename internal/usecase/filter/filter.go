// Package filter holds the predicates used to narrow the vehicle catalog.
// Every filter is immutable after construction and safe to reuse.
package filter

import (
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/carlens/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Filter decides whether a single vehicle is part of the result.
type Filter interface {
	Match(v domain.Vehicle) bool
}

// Apply keeps the matching vehicles in their original relative order.
func Apply(f Filter, vehicles []domain.Vehicle) []domain.Vehicle {
	out := []domain.Vehicle{}
	for _, v := range vehicles {
		if f.Match(v) {
			out = append(out, v)
		}
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
