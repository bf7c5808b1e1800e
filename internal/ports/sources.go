package ports

import "github.com/aalvaropc/carlens/internal/domain"

// BrandSource parses brand records from a file.
type BrandSource interface {
	LoadBrands(path string) ([]domain.Brand, error)
}

// VehicleSource parses vehicle records from a file.
type VehicleSource interface {
	LoadVehicles(path string) ([]domain.Vehicle, error)
}
