package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/usecase"
)

func cmdRunQuery(deps Deps, q usecase.Query) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic.recovered", "where", "tui.query", "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
				msg = queryDoneMsg{op: q.Op, err: fmt.Errorf("query panicked: %v", r)}
			}
		}()

		if deps.Query == nil {
			return queryDoneMsg{op: q.Op, err: errors.New("query pipeline is not configured")}
		}

		log.Info("query.start", "op", string(q.Op), "params", q.Params())
		res, id, err := deps.Query.Execute(q)
		if err != nil {
			log.Error("query.failed", "op", string(q.Op), "err", err)
		} else {
			log.Info("query.ok", "op", string(q.Op), "vehicles", len(res.Vehicles), "saved_id", id)
		}
		return queryDoneMsg{op: q.Op, res: res, id: id, err: err}
	}
}

// formField describes one text input of an operation form.
type formField struct {
	label       string
	placeholder string
}

// formFields lists the inputs each operation asks for. Sorts need none.
func formFields(op usecase.Operation) []formField {
	switch op {
	case usecase.OpFilterPrice:
		return []formField{
			{label: "Brand", placeholder: "Toyota"},
			{label: "Min price", placeholder: "0"},
			{label: "Max price", placeholder: "no limit"},
		}
	case usecase.OpFilterDate:
		return []formField{
			{label: "Brand", placeholder: "Toyota"},
			{label: "From", placeholder: domain.DateLayout},
			{label: "To", placeholder: domain.DateLayout},
		}
	default:
		return nil
	}
}

// buildQuery turns raw form values into a Query.
func buildQuery(op usecase.Operation, values []string) (usecase.Query, error) {
	get := func(i int) string {
		if i < len(values) {
			return strings.TrimSpace(values[i])
		}
		return ""
	}

	q := usecase.Query{Op: op}
	switch op {
	case usecase.OpFilterPrice:
		q.Brand = get(0)
		var err error
		if q.Min, err = parseOptionalAmount("min price", get(1)); err != nil {
			return q, err
		}
		if q.Max, err = parseOptionalAmount("max price", get(2)); err != nil {
			return q, err
		}
	case usecase.OpFilterDate:
		q.Brand = get(0)
		var err error
		if q.Start, err = parseFormDate("from", get(1)); err != nil {
			return q, err
		}
		if q.End, err = parseFormDate("to", get(2)); err != nil {
			return q, err
		}
	}
	return q, nil
}

func parseOptionalAmount(name, s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, domain.InvalidArgument("tui.form", fmt.Errorf("%s %q is not a number", name, s))
	}
	return decimal.NewNullDecimal(d), nil
}

func parseFormDate(name, s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.InvalidArgument("tui.form", fmt.Errorf("%s %q: expected %s", name, s, domain.DateLayout))
	}
	return t, nil
}
