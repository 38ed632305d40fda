package cmd

import (
	"fmt"
	"os"
	"strings"

	"sqlforge/internal/dataset"
	"sqlforge/internal/nulls"

	"github.com/spf13/cobra"
)

var (
	nullsStrategy string
	nullsValue    string
	nullsColumns  []string
	nullsDropMode string
	nullsOut      string
)

var nullsCmd = &cobra.Command{
	Use:   "nulls <file>",
	Short: "Apply a null-handling strategy to a data file",
	Long: `Rewrites a data file according to a null strategy.

Row-wise strategies: keep, fill, drop. Column-wise imputation: mean,
median, mode, zero, value. Imputation computes a substitute from each
column's own non-null values and can be scoped with --columns; fill
and value take their replacement from --value. Cells counted as null:
empty, NULL, NA, N/A, none, nil, #N/A and #NULL (any case).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.ReadFile(args[0])
		if err != nil {
			return err
		}
		if err := ds.Validate(); err != nil {
			return err
		}

		rows, err := transformNulls(ds)
		if err != nil {
			return err
		}
		out := dataset.Dataset{Headers: ds.Headers, Rows: rows}

		if nullsOut == "" {
			return dataset.WriteCSV(os.Stdout, out)
		}
		if err := dataset.WriteFile(nullsOut, out); err != nil {
			return err
		}
		fmt.Printf("🔨 Wrote %s: %d of %d rows kept (%s)\n",
			nullsOut, len(out.Rows), len(ds.Rows), strings.ToLower(nullsStrategy))
		return nil
	},
}

// transformNulls routes the strategy name to the row-wise policy or the
// column-wise imputation path. "drop" with --columns is column-scoped.
func transformNulls(ds dataset.Dataset) ([][]string, error) {
	name := strings.ToLower(strings.TrimSpace(nullsStrategy))

	rowWise := name == "keep" || name == "" || name == "fill" ||
		(name == "drop" && len(nullsColumns) == 0)

	if rowWise {
		strategy, err := nulls.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		policy := nulls.Policy{Strategy: strategy, FillValue: nullsValue}
		switch strings.ToLower(nullsDropMode) {
		case "any", "":
			policy.DropIfAnyNull = true
		case "all":
			policy.DropIfAllNull = true
		case "both":
			policy.DropIfAnyNull = true
			policy.DropIfAllNull = true
		default:
			return nil, fmt.Errorf("unknown drop mode %q (want any, all or both)", nullsDropMode)
		}
		return nulls.Apply(ds.Rows, policy), nil
	}

	strategy, err := nulls.ParseImputeStrategy(name)
	if err != nil {
		return nil, fmt.Errorf("unknown null strategy %q (want keep, fill, drop, mean, median, mode, zero or value)", nullsStrategy)
	}
	spec := nulls.ImputeSpec{Strategy: strategy, Columns: nullsColumns, FillValue: nullsValue}
	return nulls.Impute(ds.Headers, ds.Rows, spec), nil
}

func init() {
	RootCmd.AddCommand(nullsCmd)

	nullsCmd.Flags().StringVarP(&nullsStrategy, "strategy", "s", "keep", "Null strategy: keep, fill, drop, mean, median, mode, zero or value")
	nullsCmd.Flags().StringVar(&nullsValue, "value", "", "Replacement for the fill and value strategies")
	nullsCmd.Flags().StringSliceVarP(&nullsColumns, "columns", "c", nil, "Columns to target (default: all)")
	nullsCmd.Flags().StringVar(&nullsDropMode, "drop-mode", "any", "Row drop condition: any, all or both null cells")
	nullsCmd.Flags().StringVarP(&nullsOut, "out", "o", "", "Output file (defaults to stdout)")
}
