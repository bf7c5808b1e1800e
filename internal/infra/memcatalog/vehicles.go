package memcatalog

import (
	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

type VehicleCatalog struct {
	vehicles []domain.Vehicle
}

func NewVehicleCatalog(vehicles []domain.Vehicle) *VehicleCatalog {
	return &VehicleCatalog{vehicles: domain.CloneVehicles(vehicles)}
}

var _ ports.VehicleCatalog = (*VehicleCatalog)(nil)

// FindAll returns a deep copy so callers cannot reach the catalog's records.
func (c *VehicleCatalog) FindAll() []domain.Vehicle {
	return domain.CloneVehicles(c.vehicles)
}

func (c *VehicleCatalog) Len() int {
	return len(c.vehicles)
}
