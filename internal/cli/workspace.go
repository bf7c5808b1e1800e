package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/infra/config"
	"github.com/aalvaropc/carlens/internal/infra/csvbrands"
	"github.com/aalvaropc/carlens/internal/infra/logger"
	"github.com/aalvaropc/carlens/internal/infra/memcatalog"
	"github.com/aalvaropc/carlens/internal/infra/output"
	"github.com/aalvaropc/carlens/internal/infra/resultstore"
	"github.com/aalvaropc/carlens/internal/infra/workspacefinder"
	"github.com/aalvaropc/carlens/internal/infra/xmlvehicles"
	"github.com/aalvaropc/carlens/internal/ports"
	"github.com/aalvaropc/carlens/internal/usecase"
)

// workspaceCtx is everything a command needs once the catalogs are loaded.
type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	brands   *memcatalog.BrandCatalog
	vehicles *memcatalog.VehicleCatalog
	store    ports.ResultStore

	log     *slog.Logger
	cleanup func() error
}

func (ws *workspaceCtx) Close() {
	if ws.cleanup != nil {
		_ = ws.cleanup()
	}
}

// runQuery builds the query pipeline for q; persistence follows results.save.
func (ws *workspaceCtx) runQuery(q domain.QueryConfig) *usecase.RunQuery {
	svc := usecase.NewQueryService(ws.vehicles, ws.brands, q, usecase.WithLogger(ws.log))
	return usecase.NewRunQuery(svc, ws.store)
}

func openWorkspace(cmd *cobra.Command, gf *globalFlags) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(gf.workspace)
	if err != nil {
		return nil, err
	}

	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: gf.debug})
	log := logger.Component("cli")

	ws := &workspaceCtx{root: root, found: found, log: log, cleanup: cleanup}

	cfg, err := config.Load(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		ws.Close()
		return nil, err
	}
	if err != nil {
		log.Debug("config.defaults", "root", root)
	}

	if err := applyFlags(cmd, gf, &cfg); err != nil {
		ws.Close()
		return nil, err
	}
	ws.cfg = cfg

	load := usecase.NewLoadCatalogs(
		csvbrands.NewLoader(csvbrands.WithLogger(logger.Component("csvbrands"))),
		xmlvehicles.NewLoader(xmlvehicles.WithLogger(logger.Component("xmlvehicles"))),
		logger.Component("catalog"),
	)
	cats, err := load.Execute(cmd.Context(),
		config.ResolvePath(root, cfg.Data.BrandsFile),
		config.ResolvePath(root, cfg.Data.VehiclesFile),
	)
	if err != nil {
		ws.Close()
		if !found && domain.IsKind(err, domain.KindNotFound) {
			return nil, fmt.Errorf("no carlens workspace found from %q (tip: run `carlens init`): %w", root, err)
		}
		return nil, err
	}

	ws.brands = memcatalog.NewBrandCatalog(cats.Brands)
	ws.vehicles = memcatalog.NewVehicleCatalog(cats.Vehicles)

	if cfg.Results.Save {
		ws.store = resultstore.NewJSONStore(root, cfg.Results, resultstore.WithIndex(true))
	}

	return ws, nil
}

// applyFlags layers explicitly set persistent flags over the loaded config.
func applyFlags(cmd *cobra.Command, gf *globalFlags, cfg *domain.Config) error {
	flags := cmd.Flags()

	if flags.Changed("brands") {
		p, err := absPath(gf.brands)
		if err != nil {
			return err
		}
		cfg.Data.BrandsFile = p
	}
	if flags.Changed("vehicles") {
		p, err := absPath(gf.vehicles)
		if err != nil {
			return err
		}
		cfg.Data.VehiclesFile = p
	}
	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(gf.format))
	}
	if flags.Changed("save") {
		cfg.Results.Save = gf.save
	}
	return nil
}

// formatter builds the configured renderer.
func (ws *workspaceCtx) formatter(gf *globalFlags, styled bool) (ports.Formatter, error) {
	return output.New(ws.cfg.Output.Format, output.Options{
		Currency: ws.cfg.Output.Currency,
		Select:   gf.selectExpr,
		Styled:   styled,
	})
}

func resolveWorkspaceRoot(workspaceFlag string) (root string, found bool, err error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := absPath(w)
		if err != nil {
			return "", false, err
		}
		_, statErr := os.Stat(filepath.Join(abs, config.FileName))
		return abs, statErr == nil, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().FindOrDefault(wd)
}

func absPath(p string) (string, error) {
	abs, err := filepath.Abs(strings.TrimSpace(p))
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", p, err)
	}
	return abs, nil
}
