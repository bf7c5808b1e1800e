package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/infra/memcatalog"
	"github.com/aalvaropc/carlens/internal/testutil"
	"github.com/aalvaropc/carlens/internal/usecase/enrich"
)

func setup() (*testutil.BrandCatalog, *enrich.Enricher) {
	cat := &testutil.BrandCatalog{Inner: memcatalog.NewBrandCatalog([]domain.Brand{
		testutil.Brand("Toyota", 2022, 5, 10),
		testutil.Brand("Ford", 2021, 1, 1),
		testutil.Brand("Honda", 2023, 3, 1),
	})}
	return cat, enrich.New(cat)
}

func TestPrice_DescendingWithMissingAsZero(t *testing.T) {
	cat, e := setup()
	s := NewPrice("", e)

	in := []domain.Vehicle{
		testutil.Vehicle("SUV", "Toyota", "RAV4", "USD", 30000),
		testutil.Vehicle("SEDAN", "Honda", "Civic", "EUR", 20000),
		testutil.Vehicle("TRUCK", "Ford", "F-150", "USD", 40000),
		testutil.Vehicle("SEDAN", "Honda", "Accord", "USD", 25000),
	}

	got := s.Sort(in)

	assert.Equal(t, []string{"F-150", "RAV4", "Accord", "Civic"}, testutil.Models(got))
	assert.Equal(t, 1, cat.BatchCalls())
	assert.Equal(t, []string{"RAV4", "Civic", "F-150", "Accord"}, testutil.Models(in), "input untouched")
	for _, v := range got {
		assert.NotNil(t, v.BrandInfo)
	}
}

func TestPrice_StableAndIdempotent(t *testing.T) {
	_, e := setup()
	s := NewPrice("USD", e)

	in := []domain.Vehicle{
		testutil.Vehicle("SUV", "Toyota", "A", "USD", 10),
		testutil.Vehicle("SUV", "Toyota", "B", "USD", 20),
		testutil.Vehicle("SUV", "Toyota", "C", "USD", 10),
		testutil.Vehicle("SUV", "Toyota", "D"),
		testutil.Vehicle("SUV", "Toyota", "E", "USD", 0),
	}

	once := s.Sort(in)
	assert.Equal(t, []string{"B", "A", "C", "D", "E"}, testutil.Models(once))

	twice := s.Sort(once)
	assert.Equal(t, testutil.Models(once), testutil.Models(twice))
}

func TestPrice_OtherCurrency(t *testing.T) {
	_, e := setup()
	got := NewPrice("eur", e).Sort([]domain.Vehicle{
		testutil.Vehicle("SUV", "Toyota", "A", "EUR", 10, "USD", 900),
		testutil.Vehicle("SUV", "Toyota", "B", "EUR", 20),
	})
	assert.Equal(t, []string{"B", "A"}, testutil.Models(got))
}

func TestReleaseDate_NewestFirstUnresolvedLast(t *testing.T) {
	cat, e := setup()
	s := NewReleaseDate(e)

	in := []domain.Vehicle{
		testutil.Vehicle("X", "Unknown", "U1"),
		testutil.Vehicle("SUV", "Toyota", "RAV4"),
		testutil.Vehicle("X", "", "U2"),
		testutil.Vehicle("TRUCK", "Ford", "F-150"),
		testutil.Vehicle("SEDAN", "Honda", "Civic"),
		testutil.Vehicle("X", "Tesla", "U3"),
	}

	got := s.Sort(in)

	assert.Equal(t, []string{"Civic", "RAV4", "F-150", "U1", "U2", "U3"}, testutil.Models(got))
	assert.Equal(t, 1, cat.BatchCalls())
}

func TestReleaseDate_UsesExistingBrandInfo(t *testing.T) {
	cat, e := setup()
	old := testutil.Brand("Toyota", 1990, 1, 1)

	got := NewReleaseDate(e).Sort([]domain.Vehicle{
		testutil.Vehicle("SUV", "Toyota", "Old").WithBrandInfo(old),
		testutil.Vehicle("TRUCK", "Ford", "F-150"),
	})

	assert.Equal(t, []string{"F-150", "Old"}, testutil.Models(got))
	require.Len(t, cat.Batches(), 1)
	assert.Equal(t, []string{"Ford"}, cat.Batches()[0])
}

func TestTypeCurrency_DefaultOrder(t *testing.T) {
	cat, e := setup()

	in := []domain.Vehicle{
		testutil.Vehicle("SUV", "Toyota", "RAV4", "EUR", 50000),
		testutil.Vehicle("TRUCK", "Ford", "F-150", "USD", 40000),
		testutil.Vehicle("SEDAN", "Honda", "Civic", "JPY", 3000000),
	}

	asc := NewTypeCurrency(e).Sort(in)
	assert.Equal(t, []string{"RAV4", "F-150", "Civic"}, testutil.Models(asc))

	desc := NewTypeCurrency(e, WithAscending(false)).Sort(in)
	assert.Equal(t, []string{"Civic", "F-150", "RAV4"}, testutil.Models(desc))

	assert.Equal(t, 2, cat.BatchCalls(), "one batch per sort")
}

func TestTypeCurrency_DeclaredOrderFollowsMapping(t *testing.T) {
	_, e := setup()
	s := NewTypeCurrency(e, WithMapping([]domain.TypeCurrency{
		{Type: "sedan", Currency: "jpy"},
		{Type: "suv", Currency: "eur"},
		{Type: "truck", Currency: "usd"},
	}))

	got := s.Sort([]domain.Vehicle{
		testutil.Vehicle("SUV", "Toyota", "RAV4", "EUR", 50000),
		testutil.Vehicle("TRUCK", "Ford", "F-150", "USD", 40000),
		testutil.Vehicle("SEDAN", "Honda", "Civic", "JPY", 3000000),
	})

	assert.Equal(t, []string{"Civic", "RAV4", "F-150"}, testutil.Models(got))
}

func TestTypeCurrency_GroupingAndNulls(t *testing.T) {
	_, e := setup()

	in := []domain.Vehicle{
		testutil.Vehicle("Coupe", "Honda", "C2", "USD", 500),
		testutil.Vehicle("suv", "Toyota", "S-noeur", "USD", 1),
		testutil.Vehicle("SUV", "Toyota", "S2", "EUR", 200),
		testutil.Vehicle("Van", "Ford", "V1", "USD", 10),
		testutil.Vehicle("SUV", "Toyota", "S1", "EUR", 100),
		testutil.Vehicle("coupe", "Honda", "C1", "USD", 100),
		testutil.Vehicle("TRUCK", "Ford", "T1"),
		testutil.Vehicle("TRUCK", "Ford", "T0", "USD", 5),
	}

	got := NewTypeCurrency(e).Sort(in)

	assert.Equal(t, []string{
		"S1", "S2", "S-noeur", // SUV by EUR, unpriced last
		"T0", "T1", // TRUCK by USD; no SEDAN present
		"C1", "C2", // unconfigured groups in first-appearance order, by USD
		"V1",
	}, testutil.Models(got))

	desc := NewTypeCurrency(e, WithAscending(false)).Sort(in)
	assert.Equal(t, []string{"V1", "C2", "C1", "T1", "T0", "S-noeur", "S2", "S1"}, testutil.Models(desc))
}

func TestTypeCurrency_PreservesLength(t *testing.T) {
	_, e := setup()
	in := []domain.Vehicle{
		testutil.Vehicle("", "", "Blank"),
		testutil.Vehicle("SUV", "Toyota", "RAV4", "EUR", 1),
	}

	got := NewTypeCurrency(e).Sort(in)
	assert.Equal(t, []string{"RAV4", "Blank"}, testutil.Models(got))

	assert.Empty(t, NewTypeCurrency(e).Sort(nil))
	assert.NotNil(t, NewTypeCurrency(e).Sort(nil))
}

func TestFactory(t *testing.T) {
	_, e := setup()
	q := domain.DefaultConfig().Query
	q.Ascending = false
	f := NewFactory(e, q)

	in := []domain.Vehicle{
		testutil.Vehicle("SUV", "Toyota", "RAV4", "EUR", 50000, "USD", 30000),
		testutil.Vehicle("TRUCK", "Ford", "F-150", "USD", 40000),
	}

	assert.Equal(t, []string{"F-150", "RAV4"}, testutil.Models(f.Price().Sort(in)))
	assert.Equal(t, []string{"RAV4", "F-150"}, testutil.Models(f.ReleaseDate().Sort(in)))
	assert.Equal(t, []string{"F-150", "RAV4"}, testutil.Models(f.TypeCurrency().Sort(in)))
}
