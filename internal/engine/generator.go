// Package engine turns typed rows into SQL text and pushes finished scripts
// into live databases. Rendering is pure string work: values were validated
// by inference, so numeric cells pass through raw and everything else is
// quoted with doubled single quotes as the one injection-safety mechanism.
package engine

import (
	"fmt"
	"strings"

	"sqlforge/internal/dialect"
	"sqlforge/internal/nulls"
	"sqlforge/internal/schema"
)

// BatchSize is the fixed tuple count per INSERT in batch mode. Batches keep
// statement sizes under the limits real databases enforce while avoiding a
// statement per row.
const BatchSize = 50

// InsertMode selects how rows are grouped into INSERT statements. The zero
// value is batch mode, the default.
type InsertMode int

const (
	// InsertBatch renders groups of BatchSize rows, one INSERT per group.
	InsertBatch InsertMode = iota
	// InsertSingle renders one INSERT per row.
	InsertSingle
	// InsertMultiple renders exactly one INSERT covering all rows.
	InsertMultiple
)

func (m InsertMode) String() string {
	switch m {
	case InsertSingle:
		return "single"
	case InsertMultiple:
		return "multiple"
	default:
		return "batch"
	}
}

// ParseInsertMode maps a user-supplied mode name to an InsertMode.
func ParseInsertMode(name string) (InsertMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "batch", "":
		return InsertBatch, nil
	case "single":
		return InsertSingle, nil
	case "multiple", "multi":
		return InsertMultiple, nil
	default:
		return InsertBatch, fmt.Errorf("unknown insert mode %q (want single, multiple or batch)", name)
	}
}

// sqlType maps a semantic type to the SQL column type used in DDL.
func sqlType(t schema.SemanticType) string {
	switch t {
	case schema.TypeInteger:
		return "INTEGER"
	case schema.TypeFloat:
		return "DECIMAL(10,2)"
	case schema.TypeBoolean:
		return "BOOLEAN"
	case schema.TypeDate:
		return "DATE"
	case schema.TypeURL:
		return "VARCHAR(2048)"
	case schema.TypePhone:
		return "VARCHAR(20)"
	case schema.TypeCurrency:
		return "DECIMAL(15,2)"
	default: // STRING, EMAIL
		return "VARCHAR(255)"
	}
}

// CreateTable renders the DDL for the analyzed columns. Identifiers are
// sanitized then quoted per dialect. Nullability is structural: a column
// whose data contained nulls is NULL, otherwise NOT NULL.
func CreateTable(reports []schema.ColumnReport, d dialect.Dialect, tableName string) string {
	names := sanitizedColumns(reports)

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", d.QuoteIdentifier(dialect.Sanitize(tableName)))
	for i, r := range reports {
		nullability := "NOT NULL"
		if r.NullCount > 0 {
			nullability = "NULL"
		}
		fmt.Fprintf(&b, "  %s %s %s", d.QuoteIdentifier(names[i]), sqlType(r.DetectedType), nullability)
		if i < len(reports)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(");\n")
	return b.String()
}

// EscapeValue renders one cell as a SQL literal. Null cells become the
// literal NULL, or '' when includeNulls is false. Integer and float cells
// pass through unquoted; booleans normalize to 1/0; every other type is
// single-quoted with embedded quotes doubled, unconditionally.
func EscapeValue(cell string, t schema.SemanticType, includeNulls bool) string {
	if nulls.IsNull(cell) {
		if includeNulls {
			return "NULL"
		}
		return "''"
	}
	switch t {
	case schema.TypeInteger, schema.TypeFloat:
		return strings.TrimSpace(cell)
	case schema.TypeBoolean:
		return boolLiteral(cell)
	default:
		return "'" + strings.ReplaceAll(cell, "'", "''") + "'"
	}
}

// boolLiteral normalizes an inference-validated boolean cell.
func boolLiteral(cell string) string {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "1", "yes", "y":
		return "1"
	default:
		return "0"
	}
}

// InsertStatements renders the DML for the given rows. When maxRows > 0 and
// smaller than the row count, only the first maxRows rows are rendered and a
// trailing comment records the omission; truncation is never silent.
func InsertStatements(rows [][]string, reports []schema.ColumnReport, d dialect.Dialect, tableName string, maxRows int, mode InsertMode, includeNulls bool) string {
	limited := rows
	omitted := 0
	if maxRows > 0 && maxRows < len(rows) {
		limited = rows[:maxRows]
		omitted = len(rows) - maxRows
	}
	if len(limited) == 0 {
		return ""
	}

	table := d.QuoteIdentifier(dialect.Sanitize(tableName))
	columns := quotedColumnList(reports, d)

	var b strings.Builder
	switch mode {
	case InsertSingle:
		for _, row := range limited {
			fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES (%s);\n",
				table, columns, tuple(row, reports, includeNulls))
		}

	case InsertMultiple:
		writeMultiRow(&b, table, columns, limited, reports, includeNulls)

	default: // InsertBatch
		for start := 0; start < len(limited); start += BatchSize {
			end := start + BatchSize
			if end > len(limited) {
				end = len(limited)
			}
			if start > 0 {
				b.WriteByte('\n')
			}
			writeMultiRow(&b, table, columns, limited[start:end], reports, includeNulls)
		}
	}

	if omitted > 0 {
		fmt.Fprintf(&b, "-- Output limited to %d of %d rows. Raise the row limit to render the rest.\n",
			len(limited), len(rows))
	}
	return b.String()
}

// InsertBatches renders one INSERT per group of size rows and returns the
// statements individually, for callers that deliver statement arrays instead
// of one script. size values below 2 mean one single-line INSERT per row.
func InsertBatches(rows [][]string, reports []schema.ColumnReport, d dialect.Dialect, tableName string, size int, includeNulls bool) []string {
	if len(rows) == 0 {
		return nil
	}
	table := d.QuoteIdentifier(dialect.Sanitize(tableName))
	columns := quotedColumnList(reports, d)

	if size < 2 {
		out := make([]string, len(rows))
		for i, row := range rows {
			out[i] = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", table, columns, tuple(row, reports, includeNulls))
		}
		return out
	}

	var out []string
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		var b strings.Builder
		writeMultiRow(&b, table, columns, rows[start:end], reports, includeNulls)
		out = append(out, strings.TrimRight(b.String(), "\n"))
	}
	return out
}

// Script renders the complete conversion: CREATE TABLE, a blank line, then
// the INSERT statements.
func Script(rows [][]string, reports []schema.ColumnReport, d dialect.Dialect, tableName string, maxRows int, mode InsertMode, includeNulls bool) string {
	ddl := CreateTable(reports, d, tableName)
	dml := InsertStatements(rows, reports, d, tableName, maxRows, mode, includeNulls)
	if dml == "" {
		return ddl
	}
	return ddl + "\n" + dml
}

// writeMultiRow appends one INSERT whose VALUES list covers all given rows.
func writeMultiRow(b *strings.Builder, table, columns string, rows [][]string, reports []schema.ColumnReport, includeNulls bool) {
	fmt.Fprintf(b, "INSERT INTO %s (%s) VALUES\n", table, columns)
	for i, row := range rows {
		b.WriteString("  (")
		b.WriteString(tuple(row, reports, includeNulls))
		b.WriteByte(')')
		if i < len(rows)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString(";\n")
		}
	}
}

// tuple renders one row's value list in report order. Missing trailing cells
// render as nulls so a short row cannot shift columns.
func tuple(row []string, reports []schema.ColumnReport, includeNulls bool) string {
	parts := make([]string, len(reports))
	for i := range reports {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		parts[i] = EscapeValue(cell, reports[i].DetectedType, includeNulls)
	}
	return strings.Join(parts, ", ")
}

func sanitizedColumns(reports []schema.ColumnReport) []string {
	raw := make([]string, len(reports))
	for i, r := range reports {
		raw[i] = r.Column
	}
	return dialect.SanitizeAll(raw)
}

func quotedColumnList(reports []schema.ColumnReport, d dialect.Dialect) string {
	names := sanitizedColumns(reports)
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.QuoteIdentifier(n)
	}
	return strings.Join(quoted, ", ")
}
