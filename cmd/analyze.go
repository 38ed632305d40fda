package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"sqlforge/internal/dataset"
	"sqlforge/internal/nulls"
	"sqlforge/internal/schema"

	"github.com/spf13/cobra"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Infer column types and null counts from a data file",
	Long: `Reads a CSV, TSV or XLSX file (optionally compressed) and reports
the detected type, null count and sample values of every column.`,
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

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}

		fmt.Printf("📊 Analysis of %s: %d columns, %d rows\n\n", args[0], len(ds.Headers), len(ds.Rows))
		fmt.Printf("%-4s %-24s %-10s %-8s %s\n", "#", "COLUMN", "TYPE", "NULLS", "SAMPLES")
		for _, r := range reports {
			fmt.Printf("%-4d %-24s %-10s %-8s %s\n",
				r.Ordinal+1, r.Column, r.DetectedType,
				fmt.Sprintf("%d/%d", r.NullCount, r.TotalCount),
				strings.Join(r.SampleValues, ", "))
		}

		for i, h := range ds.Headers {
			if tokens := nulls.Observed(ds.Column(i)); len(tokens) > 0 {
				fmt.Printf("\nNull tokens in %s: %q\n", h, tokens)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the column reports as JSON")
}
