package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatXML   = "xml"
)

// Formats lists the names accepted by New, in menu order.
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatXML}
}

// Options carries the knobs shared by every formatter. Not every formatter
// uses every field.
type Options struct {
	// Currency selects the price column for table and XML output.
	Currency string
	// Select is a JSONPath expression applied to JSON output.
	Select string
	// Styled enables terminal styling of the table header.
	Styled bool
}

// New returns the formatter registered under name (case-insensitive).
func New(name string, opts Options) (ports.Formatter, error) {
	cur := strings.ToUpper(strings.TrimSpace(opts.Currency))
	if cur == "" {
		cur = domain.DefaultCurrency
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatTable:
		return &Table{Currency: cur, Styled: opts.Styled}, nil
	case FormatJSON:
		return &JSON{Select: strings.TrimSpace(opts.Select)}, nil
	case FormatXML:
		return &XML{Currency: cur}, nil
	default:
		return nil, domain.InvalidArgument("output.new",
			fmt.Errorf("unknown format %q (expected one of: %s)", name, strings.Join(Formats(), ", ")))
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
