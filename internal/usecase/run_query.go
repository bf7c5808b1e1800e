package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

// Operation names one of the five catalog queries.
type Operation string

const (
	OpFilterPrice  Operation = "filter-price"
	OpFilterDate   Operation = "filter-date"
	OpSortPrice    Operation = "sort-price"
	OpSortDate     Operation = "sort-date"
	OpSortTypeCurr Operation = "sort-type"
)

// Operations lists every query in menu order.
func Operations() []Operation {
	return []Operation{OpFilterPrice, OpFilterDate, OpSortDate, OpSortPrice, OpSortTypeCurr}
}

// Query is a request for one operation; only the fields it needs are read.
type Query struct {
	Op    Operation
	Brand string
	Min   decimal.NullDecimal
	Max   decimal.NullDecimal
	Start time.Time
	End   time.Time
}

// Params describes the query for persisted results.
func (q Query) Params() map[string]string {
	p := map[string]string{}
	switch q.Op {
	case OpFilterPrice:
		p["brand"] = q.Brand
		if q.Min.Valid {
			p["min"] = q.Min.Decimal.String()
		}
		if q.Max.Valid {
			p["max"] = q.Max.Decimal.String()
		}
	case OpFilterDate:
		p["brand"] = q.Brand
		p["from"] = q.Start.Format(domain.DateLayout)
		p["to"] = q.End.Format(domain.DateLayout)
	}
	return p
}

// RunQuery dispatches a Query to the QueryService and optionally saves the result.
type RunQuery struct {
	svc   *QueryService
	store ports.ResultStore
	now   func() time.Time
}

// NewRunQuery accepts a nil store to skip persistence.
func NewRunQuery(svc *QueryService, store ports.ResultStore) *RunQuery {
	return &RunQuery{svc: svc, store: store, now: time.Now}
}

func (uc *RunQuery) Execute(q Query) (domain.QueryResult, string, error) {
	res := domain.QueryResult{
		Operation: string(q.Op),
		Params:    q.Params(),
		RanAt:     uc.now().UTC(),
	}

	var err error
	switch q.Op {
	case OpFilterPrice:
		res.Vehicles, err = uc.svc.FilterByBrandAndPrice(q.Brand, q.Min, q.Max)
	case OpFilterDate:
		res.Vehicles, err = uc.svc.FilterByBrandAndReleaseDate(q.Brand, q.Start, q.End)
	case OpSortPrice:
		res.Vehicles = uc.svc.SortByPrice()
	case OpSortDate:
		res.Vehicles = uc.svc.SortByReleaseDate()
	case OpSortTypeCurr:
		res.Vehicles = uc.svc.SortByTypeAndCurrency()
	default:
		err = domain.InvalidArgument("usecase.run_query", fmt.Errorf("%w: unknown operation %q", domain.ErrInvalidArgument, q.Op))
	}
	if err != nil {
		return domain.QueryResult{}, "", err
	}

	if uc.store == nil {
		return res, "", nil
	}
	id, err := uc.store.SaveResult(res)
	if err != nil {
		return res, "", err
	}
	return res, id, nil
}
