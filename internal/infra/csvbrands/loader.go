package csvbrands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

// DateLayout is the release date layout used by brand files (MM/DD/YYYY).
const DateLayout = "01/02/2006"

const expectedColumns = 2

// Loader reads brand metadata from a two-column CSV file:
//
//	Brand,ReleaseDate
//	Toyota,05/10/2022
//
// The header line is skipped. Malformed lines are logged and skipped.
type Loader struct {
	log *slog.Logger
}

type Option func(*Loader)

func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.BrandSource = (*Loader)(nil)

func (l *Loader) LoadBrands(path string) ([]domain.Brand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "csvbrands.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	brands, err := l.parse(f, path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "csvbrands.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return brands, nil
}

func (l *Loader) parse(r io.Reader, path string) ([]domain.Brand, error) {
	sc := bufio.NewScanner(r)
	out := []domain.Brand{}

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}

		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		b, err := parseLine(line)
		if err != nil {
			l.log.Warn("csvbrands.skip_line", "path", path, "line", lineNo, "err", err)
			continue
		}
		out = append(out, b)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var errColumns = errors.New("unexpected column count")

func parseLine(line string) (domain.Brand, error) {
	parts := strings.Split(strings.ReplaceAll(line, `"`, ""), ",")
	if len(parts) != expectedColumns {
		return domain.Brand{}, fmt.Errorf("%w: got %d, want %d", errColumns, len(parts), expectedColumns)
	}

	date, err := time.Parse(DateLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.Brand{}, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	return domain.NewBrand(parts[0], date)
}
