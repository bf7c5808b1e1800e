package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Money renders an amount with a currency symbol and US digit grouping,
// e.g. $30,000.00. Currencies without a known symbol are prefixed by their code.
func Money(currency string, amount decimal.Decimal) string {
	cur := strings.ToUpper(strings.TrimSpace(currency))
	sym, ok := symbols[cur]
	if !ok {
		sym = cur + " "
	}

	v := amount.Round(2)
	s := printer.Sprintf("%.2f", v.Abs().InexactFloat64())
	if v.IsNegative() {
		return "-" + sym + s
	}
	return sym + s
}
