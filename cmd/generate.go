package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sqlforge/internal/dataset"
	"sqlforge/internal/dialect"
	"sqlforge/internal/engine"
	"sqlforge/internal/schema"
	"sqlforge/internal/splitter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	generateTable   string
	generateDialect string
	generateMode    string
	generateRows    int
	generateNulls   bool
	generateTypes   map[string]string
	generateOut     string
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate CREATE TABLE and INSERT statements from a data file",
	Long: `Analyzes a data file and forges a complete SQL script: one CREATE
TABLE derived from the inferred column types, followed by INSERT
statements in the chosen grouping mode.

Detected types can be overridden per column with repeated --type
flags, e.g. --type zip=STRING --type price=CURRENCY.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := engine.ParseInsertMode(generateMode)
		if err != nil {
			return err
		}

		// Dialect from Viper (Flag > Config > Default)
		d := dialect.GetDialect(viper.GetString("settings.dialect"))

		table := generateTable
		if table == "" {
			base := filepath.Base(args[0])
			table = strings.TrimSuffix(base, filepath.Ext(base))
		}

		log.Printf("Reading %s...", args[0])
		ds, err := dataset.ReadFile(args[0])
		if err != nil {
			return err
		}

		log.Println("Analyzing columns...")
		reports, err := schema.Analyze(ds)
		if err != nil {
			return err
		}
		if len(generateTypes) > 0 {
			reports, err = schema.ResolveTypes(reports, generateTypes)
			if err != nil {
				return err
			}
		}

		start := time.Now()
		script := engine.Script(ds.Rows, reports, d, table, generateRows, mode, generateNulls)

		if generateOut == "" {
			fmt.Print(script)
			return nil
		}
		if err := os.WriteFile(generateOut, []byte(script), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", generateOut, err)
		}

		fmt.Printf("🔨 Wrote %s: %d statements, %d bytes (%s, %s mode)\n",
			generateOut, len(splitter.Statements(script)), len(script), d.Name(), mode)
		log.Printf("Generate Done! Time Elapsed: %s", time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateTable, "table", "t", "", "Table name (defaults to the file name)")
	generateCmd.Flags().StringVarP(&generateDialect, "dialect", "d", "", "SQL dialect: mysql, postgres or sqlite")
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "batch", "Insert grouping: single, multiple or batch")
	generateCmd.Flags().IntVar(&generateRows, "rows", 0, "Maximum rows to render (0 = all)")
	generateCmd.Flags().BoolVar(&generateNulls, "include-nulls", true, "Render null cells as NULL instead of ''")
	generateCmd.Flags().StringToStringVar(&generateTypes, "type", nil, "Column type override, column=TYPE (repeatable)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output file (defaults to stdout)")

	viper.BindPFlag("settings.dialect", generateCmd.Flags().Lookup("dialect"))
	viper.SetDefault("settings.dialect", "mysql")
}
