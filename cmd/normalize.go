package cmd

import (
	"fmt"
	"os"
	"strings"

	"sqlforge/internal/dataset"
	"sqlforge/internal/normalize"
	"sqlforge/internal/schema"

	"github.com/spf13/cobra"
)

var normalizeOut string

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file>",
	Short: "Min-max scale the numeric columns of a data file",
	Long: `Rescales every integer and float column into [0, 1] with min-max
normalization. Non-numeric columns, null cells and constant columns
pass through unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.ReadFile(args[0])
		if err != nil {
			return err
		}
		reports, err := schema.Analyze(ds)
		if err != nil {
			return err
		}

		out := normalize.MinMax(ds)

		if normalizeOut == "" {
			return dataset.WriteCSV(os.Stdout, out)
		}
		if err := dataset.WriteFile(normalizeOut, out); err != nil {
			return err
		}

		var scaled []string
		for _, r := range reports {
			if r.DetectedType == schema.TypeInteger || r.DetectedType == schema.TypeFloat {
				scaled = append(scaled, r.Column)
			}
		}
		if len(scaled) == 0 {
			fmt.Printf("🔨 Wrote %s: no numeric columns to scale\n", normalizeOut)
			return nil
		}
		fmt.Printf("🔨 Wrote %s: scaled %d numeric columns (%s)\n",
			normalizeOut, len(scaled), strings.Join(scaled, ", "))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "Output file (defaults to stdout)")
}
