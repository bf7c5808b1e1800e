package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/infra/memcatalog"
	"github.com/aalvaropc/carlens/internal/ports"
	"github.com/aalvaropc/carlens/internal/testutil"
)

func brandCatalog() *testutil.BrandCatalog {
	return &testutil.BrandCatalog{Inner: memcatalog.NewBrandCatalog([]domain.Brand{
		testutil.Brand("Toyota", 2022, 5, 10),
		testutil.Brand("Ford", 2021, 1, 1),
	})}
}

func TestNewBrandDate_InvalidRange(t *testing.T) {
	_, err := NewBrandDate(BrandDateParams{
		Brand: "Toyota",
		Start: domain.Day(2023, 1, 1),
		End:   domain.Day(2022, 1, 1),
	}, brandCatalog())

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
	assert.True(t, errors.Is(err, domain.ErrInvalidRange))
}

func TestNewBrandDate_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		params BrandDateParams
		brands ports.BrandCatalog
	}{
		{"no brand", BrandDateParams{Start: domain.Day(2020, 1, 1), End: domain.Day(2021, 1, 1)}, brandCatalog()},
		{"no start", BrandDateParams{Brand: "Ford", End: domain.Day(2021, 1, 1)}, brandCatalog()},
		{"no end", BrandDateParams{Brand: "Ford", Start: domain.Day(2021, 1, 1)}, brandCatalog()},
		{"no catalog", BrandDateParams{Brand: "Ford", Start: domain.Day(2020, 1, 1), End: domain.Day(2021, 1, 1)}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewBrandDate(c.params, c.brands)
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindInvalidArgument))
		})
	}
}

func TestBrandDate_Match(t *testing.T) {
	cat := brandCatalog()
	f, err := NewBrandDate(BrandDateParams{
		Brand: "TOYOTA",
		Start: domain.Day(2022, 1, 1),
		End:   domain.Day(2022, 5, 10),
	}, cat)
	require.NoError(t, err)

	assert.True(t, f.Match(testutil.Vehicle("SUV", "Toyota", "RAV4")), "end date is inclusive")
	assert.False(t, f.Match(testutil.Vehicle("TRUCK", "Ford", "F-150")))
	assert.False(t, f.Match(testutil.Vehicle("SUV", "", "RAV4")))
	assert.Equal(t, 1, cat.SingleCalls(), "brand mismatch short-circuits the lookup")
	assert.Equal(t, 0, cat.BatchCalls())
}

func TestBrandDate_StartInclusiveAndOutside(t *testing.T) {
	f, err := NewBrandDate(BrandDateParams{
		Brand: "Ford",
		Start: time.Date(2021, 1, 1, 23, 0, 0, 0, time.UTC),
		End:   domain.Day(2021, 12, 31),
	}, brandCatalog())
	require.NoError(t, err)
	assert.True(t, f.Match(testutil.Vehicle("TRUCK", "Ford", "F-150")))

	late, err := NewBrandDate(BrandDateParams{
		Brand: "Ford",
		Start: domain.Day(2021, 1, 2),
		End:   domain.Day(2021, 12, 31),
	}, brandCatalog())
	require.NoError(t, err)
	assert.False(t, late.Match(testutil.Vehicle("TRUCK", "Ford", "F-150")))
}

func TestBrandDate_UnknownBrand(t *testing.T) {
	f, err := NewBrandDate(BrandDateParams{
		Brand: "Tesla",
		Start: domain.Day(2000, 1, 1),
		End:   domain.Day(2030, 1, 1),
	}, brandCatalog())
	require.NoError(t, err)

	assert.False(t, f.Match(testutil.Vehicle("SEDAN", "Tesla", "Model 3")))
}

func TestBrandDate_LookupErrorIsNoMatch(t *testing.T) {
	cat := brandCatalog()
	cat.Err = errors.New("catalog unavailable")
	f, err := NewBrandDate(BrandDateParams{
		Brand: "Toyota",
		Start: domain.Day(2000, 1, 1),
		End:   domain.Day(2030, 1, 1),
	}, cat)
	require.NoError(t, err)

	assert.False(t, f.Match(testutil.Vehicle("SUV", "Toyota", "RAV4")))
}

type panickingCatalog struct{}

func (panickingCatalog) FindByName(string) (domain.Brand, bool, error) { panic("corrupt index") }
func (panickingCatalog) FindAllByNames([]string) ([]domain.Brand, error) {
	panic("corrupt index")
}

func TestBrandDate_LookupPanicIsNoMatch(t *testing.T) {
	f, err := NewBrandDate(BrandDateParams{
		Brand: "Toyota",
		Start: domain.Day(2000, 1, 1),
		End:   domain.Day(2030, 1, 1),
	}, panickingCatalog{})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.False(t, f.Match(testutil.Vehicle("SUV", "Toyota", "RAV4")))
	})
}

func TestFactory(t *testing.T) {
	fac := NewFactory(brandCatalog(), "USD", nil)

	_, err := fac.BrandPrice("Toyota", nd(5), nd(1))
	require.Error(t, err)

	pf, err := fac.BrandPrice("Toyota", nd(1), nd(5))
	require.NoError(t, err)
	assert.NotNil(t, pf)

	df, err := fac.BrandDate("Toyota", domain.Day(2022, 1, 1), domain.Day(2022, 12, 31))
	require.NoError(t, err)
	assert.True(t, df.Match(testutil.Vehicle("SUV", "Toyota", "RAV4")))

	_, err = fac.BrandDate("Toyota", domain.Day(2023, 1, 1), domain.Day(2022, 12, 31))
	require.Error(t, err)
}
