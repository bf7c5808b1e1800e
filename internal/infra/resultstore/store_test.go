package resultstore

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/testutil"
)

func sampleResult(ranAt time.Time) domain.QueryResult {
	return domain.QueryResult{
		Operation: "filter-price",
		Params:    map[string]string{"brand": "Toyota", "min": "10000"},
		RanAt:     ranAt,
		Vehicles: []domain.Vehicle{
			testutil.Vehicle("SUV", "Toyota", "RAV4", "USD", 30000),
		},
	}
}

func TestSaveResult_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.ResultsConfig{Dir: "results"})

	ranAt := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id, err := store.SaveResult(sampleResult(ranAt))
	if err != nil {
		t.Fatalf("SaveResult error: %v", err)
	}
	if id != "20260203T101112Z_filter-price" {
		t.Fatalf("unexpected id %q", id)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "results", id+".json"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded domain.QueryResult
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Operation != "filter-price" {
		t.Fatalf("expected operation, got=%q", decoded.Operation)
	}
	if len(decoded.Vehicles) != 1 || decoded.Vehicles[0].Model != "RAV4" {
		t.Fatalf("unexpected vehicles: %+v", decoded.Vehicles)
	}
	if p, ok := decoded.Vehicles[0].Price("USD"); !ok || p.IntPart() != 30000 {
		t.Fatalf("expected USD price to survive, got %v", decoded.Vehicles[0].Prices)
	}
	if decoded.Params["brand"] != "Toyota" {
		t.Fatalf("expected params, got %v", decoded.Params)
	}
}

func TestSaveResult_UsesNowWhenUnset(t *testing.T) {
	tmp := t.TempDir()
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewJSONStore(tmp, domain.ResultsConfig{}, WithNow(func() time.Time { return fixed }))

	id, err := store.SaveResult(sampleResult(time.Time{}))
	if err != nil {
		t.Fatalf("SaveResult error: %v", err)
	}
	if id != "20260101T000000Z_filter-price" {
		t.Fatalf("unexpected id %q", id)
	}
	if _, err := os.Stat(filepath.Join(tmp, defaultResultsDir, id+".json")); err != nil {
		t.Fatalf("expected file in default dir: %v", err)
	}
}

func TestSaveResult_UsesUniqueFilenameOnCollision(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.ResultsConfig{Dir: "results"})

	ranAt := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	id1, err := store.SaveResult(sampleResult(ranAt))
	if err != nil {
		t.Fatalf("SaveResult #1 error: %v", err)
	}
	id2, err := store.SaveResult(sampleResult(ranAt))
	if err != nil {
		t.Fatalf("SaveResult #2 error: %v", err)
	}
	if id2 != id1+"_2" {
		t.Fatalf("expected second id %q, got %q", id1+"_2", id2)
	}
}

func TestSaveResult_WritesIndex(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.ResultsConfig{Dir: "out"}, WithIndex(true))

	ranAt := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	if _, err := store.SaveResult(sampleResult(ranAt)); err != nil {
		t.Fatalf("SaveResult error: %v", err)
	}
	if _, err := store.SaveResult(sampleResult(ranAt.Add(time.Minute))); err != nil {
		t.Fatalf("SaveResult error: %v", err)
	}

	f, err := os.Open(filepath.Join(tmp, "out", "index.jsonl"))
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	defer f.Close()

	var entries []indexEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e indexEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("bad index line %q: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 index entries, got %d", len(entries))
	}
	if entries[0].Count != 1 || entries[0].Params != "brand=Toyota min=10000" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"filter-price": "filter-price",
		" Sort Type  ": "sort-type",
		"a__b..c":      "a-b-c",
		"":             "",
		"!!!":          "",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
