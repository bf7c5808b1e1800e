package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/carlens/internal/domain"
)

func brandsCmd(gf *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "brands",
		Short: "Inspect the brand catalog",
	}
	c.AddCommand(brandsListCmd(gf))
	return c
}

func brandsListCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List brands and their release dates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(cmd, gf)
			if err != nil {
				return err
			}
			defer ws.Close()

			all := ws.brands.All()
			out := cmd.OutOrStdout()
			if len(all) == 0 {
				fmt.Fprintln(out, "(no brands found)")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "BRAND\tRELEASED")
			for _, b := range all {
				fmt.Fprintf(tw, "%s\t%s\n", b.Name, b.ReleaseDate.Format(domain.DateLayout))
			}
			return tw.Flush()
		},
	}
}
