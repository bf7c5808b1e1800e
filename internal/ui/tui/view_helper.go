package tui

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/infra/output"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderVehicles runs the chosen formatter into a string for the viewport.
func renderVehicles(format, currency string, vehicles []domain.Vehicle) (string, error) {
	f, err := output.New(format, output.Options{Currency: currency})
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := f.Format(&buf, vehicles); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func resultSummary(res domain.QueryResult, id string) string {
	s := fmt.Sprintf("%d vehicle(s)", len(res.Vehicles))
	if len(res.Params) > 0 {
		parts := make([]string, 0, len(res.Params))
		for _, k := range []string{"brand", "min", "max", "from", "to"} {
			if v, ok := res.Params[k]; ok {
				parts = append(parts, k+"="+v)
			}
		}
		s += " • " + strings.Join(parts, " ")
	}
	if id != "" {
		s += " • saved as " + id
	}
	return s
}

func renderBrands(brands []domain.Brand) string {
	if len(brands) == 0 {
		return "(no brands loaded)\n"
	}
	var b strings.Builder
	for _, br := range brands {
		fmt.Fprintf(&b, "%-20s %s\n", clampString(br.Name, 19), br.ReleaseDate.Format(domain.DateLayout))
	}
	return b.String()
}
