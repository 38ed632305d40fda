// Package dataset holds the rectangular table handed to the conversion
// pipeline: an ordered header row plus rows of string cells. Parsing file
// bytes into that shape, including decompression, lives here too, so the rest
// of the system never touches file-format concerns.
package dataset

import "fmt"

// Dataset is a snapshot of tabular input. Cells are plain strings; absent
// values are carried as empty or null-token text and classified downstream.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// ShapeError reports input that violates the rectangular-table contract.
// It is fatal: callers surface it verbatim and never attempt repair.
type ShapeError struct {
	Reason string
	Row    int // 1-based data row for ragged-row errors, 0 otherwise
}

func (e *ShapeError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("invalid input shape: row %d %s", e.Row, e.Reason)
	}
	return "invalid input shape: " + e.Reason
}

// Validate checks the table contract: a non-empty header set and the same
// cell count in every row.
func (d Dataset) Validate() error {
	if len(d.Headers) == 0 {
		if len(d.Rows) == 0 {
			return &ShapeError{Reason: "empty input"}
		}
		return &ShapeError{Reason: "missing header row"}
	}
	for i, row := range d.Rows {
		if len(row) != len(d.Headers) {
			return &ShapeError{
				Reason: fmt.Sprintf("has %d cells, want %d", len(row), len(d.Headers)),
				Row:    i + 1,
			}
		}
	}
	return nil
}

// Column returns a copy of column i's cells in row order. Rows too short to
// contain the column are skipped, so it is safe on unvalidated input.
func (d Dataset) Column(i int) []string {
	out := make([]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		if i < len(row) {
			out = append(out, row[i])
		}
	}
	return out
}
