package xmlvehicles

import (
	"encoding/xml"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

// Loader reads vehicles from an XML document:
//
//	<cars>
//	  <car>
//	    <type>SUV</type>
//	    <model>RAV4</model>
//	    <price currency="USD">30000</price>
//	    <prices><price currency="EUR">28000</price></prices>
//	  </car>
//	</cars>
//
// The brand is not part of the document; it is inferred from the model name.
type Loader struct {
	log *slog.Logger
}

type Option func(*Loader)

func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.VehicleSource = (*Loader)(nil)

type xmlCars struct {
	XMLName xml.Name `xml:"cars"`
	Cars    []xmlCar `xml:"car"`
}

type xmlCar struct {
	Type   string     `xml:"type"`
	Model  string     `xml:"model"`
	Price  []xmlPrice `xml:"price"`
	Prices []xmlPrice `xml:"prices>price"`
}

type xmlPrice struct {
	Currency string `xml:"currency,attr"`
	Amount   string `xml:",chardata"`
}

func (l *Loader) LoadVehicles(path string) ([]domain.Vehicle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "xmlvehicles.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	var doc xmlCars
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, &domain.OpError{
			Op:   "xmlvehicles.decode",
			Kind: domain.KindParse,
			Path: path,
			Err:  err,
		}
	}

	out := make([]domain.Vehicle, 0, len(doc.Cars))
	for i, c := range doc.Cars {
		model := strings.TrimSpace(c.Model)
		prices := l.parsePrices(path, i, c)
		out = append(out, domain.NewVehicle(strings.TrimSpace(c.Type), InferBrand(model), model, prices))
	}
	return out, nil
}

// parsePrices merges the direct <price> with the <prices> list; later entries
// win on a repeated currency.
func (l *Loader) parsePrices(path string, idx int, c xmlCar) domain.Prices {
	prices := domain.Prices{}

	all := make([]xmlPrice, 0, 1+len(c.Prices))
	if len(c.Price) > 0 {
		all = append(all, c.Price[0])
	}
	all = append(all, c.Prices...)

	for _, p := range all {
		cur := strings.ToUpper(strings.TrimSpace(p.Currency))
		if cur == "" {
			l.log.Warn("xmlvehicles.skip_price", "path", path, "car", idx, "reason", "missing currency")
			continue
		}
		amt, err := decimal.NewFromString(strings.TrimSpace(p.Amount))
		if err != nil || amt.IsNegative() {
			l.log.Warn("xmlvehicles.skip_price", "path", path, "car", idx, "currency", cur, "amount", p.Amount)
			continue
		}
		prices[cur] = amt
	}
	return prices
}
