package tui

import (
	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/usecase"
)

type queryDoneMsg struct {
	op  usecase.Operation
	res domain.QueryResult
	id  string
	err error
}
