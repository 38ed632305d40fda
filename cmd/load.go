package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"sqlforge/internal/engine"
	"sqlforge/internal/splitter"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var loadDryRun bool

var loadCmd = &cobra.Command{
	Use:   "load <file.sql>",
	Short: "Execute a SQL script against the active database",
	Long: `Splits a SQL script into statements and executes them one at a time
against the database marked active in the config file. Failing
statements are reported and skipped, not fatal, so one bad row cannot
abandon a load.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetActiveDBConfig()
		if err != nil {
			return err
		}
		d := config.Dialect()

		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		statements := splitter.ExecutableStatements(string(content))
		if len(statements) == 0 {
			log.Println("No executable statements found.")
			return nil
		}

		if loadDryRun {
			log.Println("[SIMULATION] Dry-Run Mode Active: No statements will be executed.")
			fmt.Printf("🔍 %s: %d statements for %s (%s)\n", args[0], len(statements), config.Name, d.Name())
			for i, stmt := range statements {
				fmt.Printf("[%02d] %s\n", i+1, firstLine(stmt))
			}
			return nil
		}

		db, err := sql.Open(d.DriverName(), config.DSN)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		fmt.Printf("🔨 Connected to %s via %s\n", config.Name, d.Name())

		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(len(statements)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Loading:    "
		})

		result, err := engine.Apply(cmd.Context(), db, statements, func() {
			bar.Incr()
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		elapsed := time.Since(start)

		fmt.Println("\n📊 Load Report:")
		icon := "✓"
		if len(result.Failed) > 0 {
			icon = "!"
		}
		fmt.Printf("[%s] %d/%d statements applied\n", icon, result.Applied, result.Total)
		for _, f := range result.Failed {
			fmt.Printf("    └ statement %d: %v\n", f.Index, f.Err)
		}
		log.Printf("Load Done! Time Elapsed: %s", elapsed)

		return nil
	},
}

// firstLine condenses a statement to one preview line for dry-run output.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " ..."
	}
	if len(s) > 76 {
		s = s[:76] + "..."
	}
	return s
}

func init() {
	RootCmd.AddCommand(loadCmd)

	loadCmd.Flags().BoolVar(&loadDryRun, "dry-run", false, "List the statements without executing them")
}
