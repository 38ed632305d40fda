package cmd

import (
	"fmt"
	"os"

	"sqlforge/internal/dataset"
	"sqlforge/internal/sample"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sampleRows     int
	sampleNullRate float64
	sampleSeed     int64
	sampleOut      string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a fake customer dataset for trying out the pipeline",
	Long: `Forges a CSV of fake customer records covering every detectable
column type: integers, names, emails, phones, URLs, dates, booleans,
floats and currency amounts. A fraction of cells is nulled with mixed
null tokens so the null tooling has something to chew on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Fetch row count from Viper (Flag > Config > Default)
		rows := viper.GetInt("settings.sample_rows")
		if sampleRows > 0 {
			rows = sampleRows
		}

		ds := sample.Generate(sample.Options{
			Rows:     rows,
			NullRate: sampleNullRate,
			Seed:     sampleSeed,
		})

		if sampleOut == "" {
			return dataset.WriteCSV(os.Stdout, ds)
		}
		if err := dataset.WriteFile(sampleOut, ds); err != nil {
			return err
		}
		fmt.Printf("🔨 Wrote %s: %d rows, %d columns\n", sampleOut, len(ds.Rows), len(ds.Headers))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVarP(&sampleRows, "rows", "n", 0, "Number of rows to generate (overrides config)")
	sampleCmd.Flags().Float64Var(&sampleNullRate, "null-rate", 0.1, "Fraction of nullable cells to blank out")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "Random seed (0 = time-based)")
	sampleCmd.Flags().StringVarP(&sampleOut, "out", "o", "", "Output file (defaults to stdout)")

	viper.BindPFlag("settings.sample_rows", sampleCmd.Flags().Lookup("rows"))
	viper.SetDefault("settings.sample_rows", 100)
}
