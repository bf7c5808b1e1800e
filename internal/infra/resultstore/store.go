package resultstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

const defaultResultsDir = "results"

// JSONStore writes one pretty-printed JSON file per query result under
// <root>/<results dir>, optionally appending a line to index.jsonl.
type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables results/index.jsonl.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.ResultsConfig, opts ...Option) *JSONStore {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		dir = defaultResultsDir
	}

	s := &JSONStore{
		rootDir: root,
		dirName: dir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ResultStore = (*JSONStore)(nil)

func (s *JSONStore) Dir() string {
	if filepath.IsAbs(s.dirName) {
		return s.dirName
	}
	return filepath.Join(s.rootDir, s.dirName)
}

func (s *JSONStore) SaveResult(res domain.QueryResult) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "resultstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := res.RanAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := res
	toSave.RanAt = ts
	toSave.Vehicles = domain.CloneVehicles(res.Vehicles)

	slug := slugify(res.Operation)
	if slug == "" {
		slug = "query"
	}

	id := uniqueID(dir, fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug))
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "resultstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// tmp then rename
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "resultstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "resultstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

// uniqueID appends _2, _3, ... while a file with the base id already exists.
func uniqueID(dir, base string) string {
	id := base
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, id+".json")); os.IsNotExist(err) {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

type indexEntry struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Operation string    `json:"operation"`
	Params    string    `json:"params,omitempty"`
	Count     int       `json:"count"`
	RanAt     time.Time `json:"ran_at"`
}

func (s *JSONStore) appendIndex(dir, id, filename string, res domain.QueryResult) error {
	line, err := json.Marshal(indexEntry{
		ID:        id,
		File:      filename,
		Operation: res.Operation,
		Params:    paramsString(res.Params),
		Count:     len(res.Vehicles),
		RanAt:     res.RanAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

func paramsString(p map[string]string) string {
	if len(p) == 0 {
		return ""
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+p[k])
	}
	return strings.Join(parts, " ")
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
