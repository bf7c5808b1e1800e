package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

const (
	brandWidth = 15
	modelWidth = 15
	typeWidth  = 20
	priceWidth = 15
	dateWidth  = 15

	notAvailable = "N/A"
	emptyTable   = "No vehicles found.\n"
)

// TableDateLayout is the short US date used in the release column.
const TableDateLayout = "1/2/06"

var rowFormat = fmt.Sprintf("%%-%ds %%-%ds %%-%ds %%%ds %%%ds",
	brandWidth, modelWidth, typeWidth, priceWidth, dateWidth)

// Table renders fixed-width columns. A missing price prints as zero and a
// missing release date as N/A.
type Table struct {
	Currency string
	Styled   bool
}

var _ ports.Formatter = (*Table)(nil)

func (t *Table) Name() string { return FormatTable }

func (t *Table) Format(w io.Writer, vehicles []domain.Vehicle) error {
	if len(vehicles) == 0 {
		return writeString(w, emptyTable)
	}

	cur := t.currency()

	var b strings.Builder
	header := fmt.Sprintf(rowFormat, "Brand", "Model", "Type", cur+" Price", "Release Date")
	if t.Styled {
		header = lipgloss.NewRenderer(w).NewStyle().Bold(true).Render(header)
	}
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", brandWidth+modelWidth+typeWidth+priceWidth+dateWidth+4))
	b.WriteByte('\n')

	for _, v := range vehicles {
		price, ok := v.Price(cur)
		if !ok {
			price = decimal.Zero
		}
		date := notAvailable
		if d, ok := v.ReleaseDate(); ok {
			date = d.Format(TableDateLayout)
		}

		fmt.Fprintf(&b, rowFormat,
			cell(v.Brand, brandWidth),
			cell(v.Model, modelWidth),
			cell(v.Type, typeWidth),
			Money(cur, price),
			date,
		)
		b.WriteByte('\n')
	}

	return writeString(w, b.String())
}

func (t *Table) currency() string {
	if c := strings.ToUpper(strings.TrimSpace(t.Currency)); c != "" {
		return c
	}
	return domain.DefaultCurrency
}

// cell substitutes N/A for blanks and truncates with "..." past width.
func cell(s string, width int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return notAvailable
	}
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-3]) + "..."
	}
	return s
}
