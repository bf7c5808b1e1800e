package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/carlens/internal/domain"
	"github.com/aalvaropc/carlens/internal/usecase"
)

func filterCmd(gf *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "filter",
		Short: "Filter vehicles by brand and price or release date",
	}
	c.AddCommand(filterPriceCmd(gf), filterDateCmd(gf))
	return c
}

func filterPriceCmd(gf *globalFlags) *cobra.Command {
	var brand, minPrice, maxPrice, currency string

	c := &cobra.Command{
		Use:   "price",
		Short: "Vehicles of a brand priced within [min, max]",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lo, err := parseAmount("min", minPrice)
			if err != nil {
				return err
			}
			hi, err := parseAmount("max", maxPrice)
			if err != nil {
				return err
			}

			return runQuery(cmd, gf, func(q *domain.QueryConfig) {
				if cur := strings.TrimSpace(currency); cur != "" {
					q.Currency = strings.ToUpper(cur)
				}
			}, usecase.Query{Op: usecase.OpFilterPrice, Brand: brand, Min: lo, Max: hi})
		},
	}

	c.Flags().StringVarP(&brand, "brand", "b", "", "Brand name, case-insensitive (required)")
	c.Flags().StringVar(&minPrice, "min", "", "Minimum price (default 0)")
	c.Flags().StringVar(&maxPrice, "max", "", "Maximum price (default unbounded)")
	c.Flags().StringVar(&currency, "currency", "", "Price currency (default from carlens.yaml)")
	_ = c.MarkFlagRequired("brand")
	return c
}

func filterDateCmd(gf *globalFlags) *cobra.Command {
	var brand, from, to string

	c := &cobra.Command{
		Use:   "date",
		Short: "Vehicles of a brand released within [from, to]",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseDate("from", from)
			if err != nil {
				return err
			}
			end, err := parseDate("to", to)
			if err != nil {
				return err
			}

			return runQuery(cmd, gf, nil,
				usecase.Query{Op: usecase.OpFilterDate, Brand: brand, Start: start, End: end})
		},
	}

	c.Flags().StringVarP(&brand, "brand", "b", "", "Brand name, case-insensitive (required)")
	c.Flags().StringVar(&from, "from", "", "Start date YYYY-MM-DD (required)")
	c.Flags().StringVar(&to, "to", "", "End date YYYY-MM-DD (required)")
	_ = c.MarkFlagRequired("brand")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}

func sortCmd(gf *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "sort",
		Short: "Sort every vehicle by price, release date or type",
	}
	c.AddCommand(sortPriceCmd(gf), sortDateCmd(gf), sortTypeCmd(gf))
	return c
}

func sortPriceCmd(gf *globalFlags) *cobra.Command {
	var currency string

	c := &cobra.Command{
		Use:   "price",
		Short: "Most expensive first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, gf, func(q *domain.QueryConfig) {
				if cur := strings.TrimSpace(currency); cur != "" {
					q.Currency = strings.ToUpper(cur)
				}
			}, usecase.Query{Op: usecase.OpSortPrice})
		},
	}
	c.Flags().StringVar(&currency, "currency", "", "Price currency (default from carlens.yaml)")
	return c
}

func sortDateCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "date",
		Short: "Newest brand release first; unknown dates last",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, gf, nil, usecase.Query{Op: usecase.OpSortDate})
		},
	}
}

func sortTypeCmd(gf *globalFlags) *cobra.Command {
	var desc bool

	c := &cobra.Command{
		Use:   "type",
		Short: "Group by type, each ranked by its configured currency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, gf, func(q *domain.QueryConfig) {
				if cmd.Flags().Changed("desc") {
					q.Ascending = !desc
				}
			}, usecase.Query{Op: usecase.OpSortTypeCurr})
		},
	}
	c.Flags().BoolVar(&desc, "desc", false, "Reverse the whole ordering")
	return c
}

// runQuery loads the workspace, runs q and renders the result to stdout.
// tweak may adjust the query settings before the pipeline is built.
func runQuery(cmd *cobra.Command, gf *globalFlags, tweak func(*domain.QueryConfig), q usecase.Query) error {
	ws, err := openWorkspace(cmd, gf)
	if err != nil {
		return err
	}
	defer ws.Close()

	qc := ws.cfg.Query
	qc.TypeCurrency = append([]domain.TypeCurrency(nil), qc.TypeCurrency...)
	if tweak != nil {
		tweak(&qc)
	}

	f, err := ws.formatter(gf, false)
	if err != nil {
		return err
	}

	res, id, err := ws.runQuery(qc).Execute(q)
	if err != nil {
		ws.log.Error("query.failed", "op", string(q.Op), "err", err)
		return err
	}
	ws.log.Info("query.ok", "op", string(q.Op), "vehicles", len(res.Vehicles), "saved_id", id)

	if err := f.Format(cmd.OutOrStdout(), res.Vehicles); err != nil {
		return err
	}
	if id != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "saved result %s\n", id)
	}
	return nil
}

func parseAmount(name, s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, domain.InvalidArgument("cli.parse_amount",
			fmt.Errorf("--%s %q: not a number: %w", name, s, domain.ErrInvalidArgument))
	}
	return decimal.NewNullDecimal(d), nil
}

func parseDate(name, s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.InvalidArgument("cli.parse_date",
			fmt.Errorf("--%s %q: expected YYYY-MM-DD: %w", name, s, domain.ErrInvalidArgument))
	}
	return t, nil
}
