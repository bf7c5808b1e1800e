// Package testutil provides fakes shared by the query engine tests.
package testutil

import (
	"sync"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

// BrandCatalog wraps another catalog and records how it is called.
// Err, when set, is returned by every lookup instead of delegating.
type BrandCatalog struct {
	Inner ports.BrandCatalog
	Err   error

	mu          sync.Mutex
	singleCalls int
	batchCalls  int
	batches     [][]string
}

var _ ports.BrandCatalog = (*BrandCatalog)(nil)

func (c *BrandCatalog) FindByName(name string) (domain.Brand, bool, error) {
	c.mu.Lock()
	c.singleCalls++
	c.mu.Unlock()

	if c.Err != nil {
		return domain.Brand{}, false, c.Err
	}
	return c.Inner.FindByName(name)
}

func (c *BrandCatalog) FindAllByNames(names []string) ([]domain.Brand, error) {
	c.mu.Lock()
	c.batchCalls++
	cp := make([]string, len(names))
	copy(cp, names)
	c.batches = append(c.batches, cp)
	c.mu.Unlock()

	if c.Err != nil {
		return nil, c.Err
	}
	return c.Inner.FindAllByNames(names)
}

func (c *BrandCatalog) SingleCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.singleCalls
}

func (c *BrandCatalog) BatchCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.batchCalls
}

// Batches returns the name sets passed to FindAllByNames, one per call.
func (c *BrandCatalog) Batches() [][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]string, len(c.batches))
	copy(out, c.batches)
	return out
}
