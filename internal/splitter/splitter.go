// Package splitter partitions SQL text into ordered chunks without ever
// truncating inside a statement. Chunk boundaries land only on statement
// boundaries, so a single oversized statement yields an oversized chunk
// rather than an error.
package splitter

import (
	"fmt"
	"strings"
)

// sizeLinesPerMB converts a size-in-megabytes budget to an approximate line
// budget. Generated SQL averages about 50 bytes per line.
const sizeLinesPerMB = 20000

// Criterion selects the budget unit for splitting.
type Criterion int

const (
	// ByStatements caps the number of whole statements per chunk.
	ByStatements Criterion = iota
	// ByLines caps the total line count per chunk.
	ByLines
	// BySize caps approximate chunk size in megabytes via the line
	// heuristic; it is an explicit approximation, not a byte guarantee.
	BySize
)

func (c Criterion) String() string {
	switch c {
	case ByLines:
		return "lines"
	case BySize:
		return "size"
	default:
		return "statements"
	}
}

// ParseCriterion maps a user-supplied criterion name to a Criterion.
func ParseCriterion(name string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "statements", "":
		return ByStatements, nil
	case "lines":
		return ByLines, nil
	case "size":
		return BySize, nil
	default:
		return ByStatements, fmt.Errorf("unknown split criterion %q (want statements, lines or size)", name)
	}
}

// Chunk is one piece of a split script.
type Chunk struct {
	Index    int // 1-based emission order
	Content  string
	ByteSize int
}

// Split partitions sqlText into ordered chunks under the given budget.
// Concatenating the chunks' content in order reproduces sqlText byte for
// byte. Limits below 1 are clamped to 1; a chunk exceeds its nominal budget
// only when a single statement does.
func Split(sqlText string, c Criterion, limit int) []Chunk {
	if limit < 1 {
		limit = 1
	}
	segments := Statements(sqlText)
	if len(segments) == 0 {
		return nil
	}

	lineLimit := limit
	if c == BySize {
		lineLimit = limit * sizeLinesPerMB
	}

	var (
		chunks   []Chunk
		cur      strings.Builder
		count    int // statements in the current chunk
		newlines int // newline bytes in the current chunk
	)

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		content := cur.String()
		chunks = append(chunks, Chunk{
			Index:    len(chunks) + 1,
			Content:  content,
			ByteSize: len(content),
		})
		cur.Reset()
		count = 0
		newlines = 0
	}

	for _, seg := range segments {
		if cur.Len() > 0 && exceeds(c, count, newlines, seg, limit, lineLimit) {
			flush()
		}
		cur.WriteString(seg)
		count++
		newlines += strings.Count(seg, "\n")
	}
	flush()
	return chunks
}

// exceeds reports whether adding seg to the current chunk would go over the
// budget.
func exceeds(c Criterion, count, newlines int, seg string, limit, lineLimit int) bool {
	if c == ByStatements {
		return count >= limit
	}
	return newlines+strings.Count(seg, "\n")+1 > lineLimit
}

// File pairs a suggested file name with chunk content.
type File struct {
	Name    string
	Content string
}

// Filename derives the download name for chunk n of base.
func Filename(base string, n int) string {
	base = strings.TrimSuffix(base, ".sql")
	if base == "" {
		base = "script"
	}
	return fmt.Sprintf("%s_part%d.sql", base, n)
}

// SplitFiles renders chunks as name/content pairs for persisting.
func SplitFiles(base string, chunks []Chunk) []File {
	out := make([]File, len(chunks))
	for i, ch := range chunks {
		out[i] = File{Name: Filename(base, ch.Index), Content: ch.Content}
	}
	return out
}
