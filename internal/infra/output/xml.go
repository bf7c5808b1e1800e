package output

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

// XMLDateLayout is the release date layout used in XML output.
const XMLDateLayout = "01/02/2006"

// XML renders <cars><car>…</car></cars> with a single formatted price column.
type XML struct {
	Currency string
}

var _ ports.Formatter = (*XML)(nil)

type xmlCars struct {
	XMLName xml.Name `xml:"cars"`
	Cars    []xmlCar `xml:"car"`
}

type xmlCar struct {
	Type        string `xml:"type"`
	Brand       string `xml:"brand"`
	Model       string `xml:"model"`
	Price       string `xml:"price"`
	ReleaseDate string `xml:"releaseDate"`
}

func (x *XML) Name() string { return FormatXML }

func (x *XML) Format(w io.Writer, vehicles []domain.Vehicle) error {
	cur := strings.ToUpper(strings.TrimSpace(x.Currency))
	if cur == "" {
		cur = domain.DefaultCurrency
	}

	doc := xmlCars{Cars: make([]xmlCar, 0, len(vehicles))}
	for _, v := range vehicles {
		price, ok := v.Price(cur)
		if !ok {
			price = decimal.Zero
		}
		date := notAvailable
		if d, ok := v.ReleaseDate(); ok {
			date = d.Format(XMLDateLayout)
		}
		doc.Cars = append(doc.Cars, xmlCar{
			Type:        orNA(v.Type),
			Brand:       orNA(v.Brand),
			Model:       orNA(v.Model),
			Price:       Money(cur, price),
			ReleaseDate: date,
		})
	}

	b, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.OpError{Op: "output.xml", Kind: domain.KindExecution, Err: err}
	}
	return writeString(w, xml.Header+string(b)+"\n")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}
