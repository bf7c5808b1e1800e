package ports

import (
	"io"

	"github.com/aalvaropc/carlens/internal/domain"
)

// Formatter renders a query result. Missing brand info or prices are shown as
// placeholders, never treated as failures.
type Formatter interface {
	Name() string
	Format(w io.Writer, vehicles []domain.Vehicle) error
}
