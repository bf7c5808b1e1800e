package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/carlens/internal/buildinfo"
	"github.com/aalvaropc/carlens/internal/infra/fsworkspace"
	"github.com/aalvaropc/carlens/internal/infra/output"
	"github.com/aalvaropc/carlens/internal/ui/tui"
	"github.com/aalvaropc/carlens/internal/usecase"
)

// globalFlags are shared by every command through persistent flags.
type globalFlags struct {
	workspace  string
	brands     string
	vehicles   string
	format     string
	selectExpr string
	save       bool
	debug      bool
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "carlens",
		Short:        "carlens: query a vehicle catalog by brand, price and release date",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd, gf)
			if err != nil {
				return err
			}
			defer ws.Close()

			format := ws.cfg.Output.Format
			if cmd.Flags().Changed("format") {
				format = gf.format
			}

			return tui.Run(tui.Deps{
				Root:     ws.root,
				Query:    ws.runQuery(ws.cfg.Query),
				Brands:   ws.brands,
				Format:   format,
				Currency: ws.cfg.Output.Currency,
				Logger:   ws.log,
				Debug:    gf.debug,
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&gf.workspace, "workspace", "w", "", "Workspace root (optional; autodetected from carlens.yaml)")
	pf.StringVar(&gf.brands, "brands", "", "Brand CSV file (overrides carlens.yaml)")
	pf.StringVar(&gf.vehicles, "vehicles", "", "Vehicle XML file (overrides carlens.yaml)")
	pf.StringVarP(&gf.format, "format", "f", "", "Output format: table|json|xml")
	pf.StringVar(&gf.selectExpr, "select", "", "JSONPath expression applied to json output")
	pf.BoolVar(&gf.save, "save", false, "Save the query result under results/")
	pf.BoolVar(&gf.debug, "debug", false, "enable verbose logging to .carlens/logs/carlens.log")

	cmd.AddCommand(
		filterCmd(gf),
		sortCmd(gf),
		brandsCmd(gf),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a carlens workspace with sample data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := absPath(path)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			fmt.Fprintf(cmd.OutOrStdout(), "Try: carlens sort type --format %s\n", output.FormatTable)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
