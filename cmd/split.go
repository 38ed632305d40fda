package cmd

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"sqlforge/internal/splitter"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// splitWriters caps concurrent chunk writes.
const splitWriters = 4

var (
	splitBy     string
	splitLimit  int
	splitOutDir string
	splitGzip   bool
)

var splitCmd = &cobra.Command{
	Use:   "split <file.sql>",
	Short: "Split a SQL script into statement-safe chunks",
	Long: `Partitions a SQL script into numbered part files without ever cutting
inside a statement. The budget is counted in whole statements, lines
or approximate megabytes; a chunk only exceeds it when a single
statement does.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		criterion, err := splitter.ParseCriterion(splitBy)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		chunks := splitter.Split(string(content), criterion, splitLimit)
		if len(chunks) == 0 {
			log.Println("No statements found; nothing to write.")
			return nil
		}
		files := splitter.SplitFiles(filepath.Base(args[0]), chunks)

		if err := os.MkdirAll(splitOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", splitOutDir, err)
		}

		log.Printf("Splitting by %s (limit %d) into %d chunks...", criterion, splitLimit, len(files))

		uiprogress.Start()
		bar := uiprogress.AddBar(len(files)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Writing:    "
		})

		g := new(errgroup.Group)
		g.SetLimit(splitWriters)
		for _, f := range files {
			f := f
			g.Go(func() error {
				if err := writeChunk(filepath.Join(splitOutDir, f.Name), f.Content, splitGzip); err != nil {
					return err
				}
				bar.Incr()
				return nil
			})
		}
		err = g.Wait()
		uiprogress.Stop()
		if err != nil {
			return err
		}

		statements := 0
		for _, ch := range chunks {
			statements += len(splitter.Statements(ch.Content))
		}
		fmt.Printf("📊 Wrote %d chunks (%d statements, %d bytes) to %s\n",
			len(chunks), statements, len(content), splitOutDir)
		return nil
	},
}

// writeChunk persists one chunk, gzip-compressing under a .gz suffix when
// requested.
func writeChunk(path, content string, compress bool) error {
	if !compress {
		return os.WriteFile(path, []byte(content), 0o644)
	}

	f, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(content)); err != nil {
		_ = zw.Close()
		_ = f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func init() {
	RootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVar(&splitBy, "by", "statements", "Split criterion: statements, lines or size (MB)")
	splitCmd.Flags().IntVar(&splitLimit, "limit", 100, "Budget per chunk in the chosen unit")
	splitCmd.Flags().StringVarP(&splitOutDir, "out-dir", "o", ".", "Directory for the part files")
	splitCmd.Flags().BoolVar(&splitGzip, "gzip", false, "Gzip-compress the part files")
}
