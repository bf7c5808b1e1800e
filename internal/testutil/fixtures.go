package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/domain"
)

// Brand builds a brand and panics on invalid input; fixtures are always valid.
func Brand(name string, y int, m time.Month, d int) domain.Brand {
	b, err := domain.NewBrand(name, domain.Day(y, m, d))
	if err != nil {
		panic(err)
	}
	return b
}

// Vehicle builds a record from alternating currency/amount pairs, e.g. "USD", 30000.
func Vehicle(typ, brand, model string, pairs ...any) domain.Vehicle {
	prices := domain.Prices{}
	for i := 0; i+1 < len(pairs); i += 2 {
		cur := pairs[i].(string)
		switch amt := pairs[i+1].(type) {
		case int:
			prices[cur] = decimal.NewFromInt(int64(amt))
		case string:
			prices[cur] = decimal.RequireFromString(amt)
		case decimal.Decimal:
			prices[cur] = amt
		}
	}
	return domain.NewVehicle(typ, brand, model, prices)
}

// Models lists the model names of vs in order.
func Models(vs []domain.Vehicle) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Model
	}
	return out
}
