package usecase

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/ports"
)

// Catalogs is the parsed startup data.
type Catalogs struct {
	Brands   []domain.Brand
	Vehicles []domain.Vehicle
}

// LoadCatalogs parses the brand and vehicle files concurrently.
type LoadCatalogs struct {
	brands   ports.BrandSource
	vehicles ports.VehicleSource
	log      *slog.Logger
}

func NewLoadCatalogs(bs ports.BrandSource, vs ports.VehicleSource, log *slog.Logger) *LoadCatalogs {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &LoadCatalogs{brands: bs, vehicles: vs, log: log}
}

func (uc *LoadCatalogs) Execute(ctx context.Context, brandsPath, vehiclesPath string) (Catalogs, error) {
	var out Catalogs

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := uc.brands.LoadBrands(brandsPath)
		if err != nil {
			return err
		}
		out.Brands = b
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := uc.vehicles.LoadVehicles(vehiclesPath)
		if err != nil {
			return err
		}
		out.Vehicles = v
		return nil
	})
	if err := g.Wait(); err != nil {
		return Catalogs{}, err
	}

	uc.log.Info("catalog.loaded",
		"brands", len(out.Brands), "brands_path", brandsPath,
		"vehicles", len(out.Vehicles), "vehicles_path", vehiclesPath)
	return out, nil
}
