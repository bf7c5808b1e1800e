package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewBrand(t *testing.T) {
	b, err := NewBrand("  Toyota ", time.Date(2022, 5, 10, 15, 4, 5, 0, time.FixedZone("x", 3600)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Name != "Toyota" {
		t.Fatalf("expected trimmed name, got %q", b.Name)
	}
	if !b.ReleaseDate.Equal(Day(2022, 5, 10)) {
		t.Fatalf("expected calendar date, got %v", b.ReleaseDate)
	}
}

func TestNewBrand_RequiresFields(t *testing.T) {
	cases := []struct {
		name string
		in   string
		date time.Time
	}{
		{"missing name", "", Day(2020, 1, 1)},
		{"blank name", "   ", Day(2020, 1, 1)},
		{"missing date", "Ford", time.Time{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewBrand(c.in, c.date)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !IsKind(err, KindInvalidArgument) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestBrandKey(t *testing.T) {
	if BrandKey("TOYOTA") != BrandKey("toyota") {
		t.Fatalf("expected folded keys to match")
	}
	if BrandKey("  ") != "" {
		t.Fatalf("expected blank to fold to empty")
	}
	if SameBrand("", "") {
		t.Fatalf("blank brands must never match")
	}
	if !SameBrand("Mercedes-Benz", "mercedes-benz") {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestPricesNilSafe(t *testing.T) {
	var p Prices
	if _, ok := p.Get("USD"); ok {
		t.Fatalf("expected miss on nil prices")
	}
	if c := p.Clone(); c == nil {
		t.Fatalf("expected non-nil clone")
	}
}

func TestNewVehicle_CopiesPrices(t *testing.T) {
	src := Prices{"USD": decimal.NewFromInt(30000)}
	v := NewVehicle("SUV", "Toyota", "RAV4", src)

	src["USD"] = decimal.NewFromInt(1)
	got, ok := v.Price("USD")
	if !ok || !got.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("expected record to be isolated from caller map, got %v", got)
	}
}

func TestWithBrandInfo_DoesNotMutateReceiver(t *testing.T) {
	v := NewVehicle("SUV", "Toyota", "RAV4", nil)
	b, err := NewBrand("Toyota", Day(2022, 5, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enriched := v.WithBrandInfo(b)
	if v.BrandInfo != nil {
		t.Fatalf("expected original to stay unenriched")
	}
	d, ok := enriched.ReleaseDate()
	if !ok || !d.Equal(Day(2022, 5, 10)) {
		t.Fatalf("expected release date on enriched copy, got %v", d)
	}
}

func TestCloneVehicles_Deep(t *testing.T) {
	b, _ := NewBrand("Ford", Day(2021, 1, 1))
	in := []Vehicle{NewVehicle("TRUCK", "Ford", "F-150", Prices{"USD": decimal.NewFromInt(40000)}).WithBrandInfo(b)}

	out := CloneVehicles(in)
	out[0].Prices["USD"] = decimal.Zero
	out[0].BrandInfo.Name = "changed"

	if p, _ := in[0].Price("USD"); !p.Equal(decimal.NewFromInt(40000)) {
		t.Fatalf("expected source prices untouched")
	}
	if in[0].BrandInfo.Name != "Ford" {
		t.Fatalf("expected source brand untouched")
	}
	if CloneVehicles(nil) == nil {
		t.Fatalf("expected non-nil result")
	}
}
