package ports

import "github.com/aalvaropc/carlens/internal/domain"

// VehicleCatalog holds every vehicle record.
type VehicleCatalog interface {
	// FindAll returns a snapshot the caller may freely modify.
	FindAll() []domain.Vehicle
}
