package ports

import "github.com/aalvaropc/carlens/internal/domain"

// ResultStore persists query results for later inspection.
type ResultStore interface {
	SaveResult(res domain.QueryResult) (id string, err error)
}
