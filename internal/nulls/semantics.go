// Package nulls decides which cell values count as absent data and applies
// row- and column-level strategies to them. It is the single source of truth
// for null classification: both type inference and SQL generation route every
// "is this cell empty?" question through IsNull.
package nulls

import "strings"

// EmptyLabel is how the empty string is reported in token listings, so that a
// blank cell is never confused with the literal text "null".
const EmptyLabel = "(empty)"

// nullTokens are the values treated as absent after trimming and case-folding.
// The empty string is a member of the set.
var nullTokens = map[string]bool{
	"":      true,
	"null":  true,
	"na":    true,
	"n/a":   true,
	"none":  true,
	"nil":   true,
	"#n/a":  true,
	"#null": true,
}

// fold normalizes a cell for token comparison.
func fold(cell string) string {
	return strings.ToLower(strings.TrimSpace(cell))
}

// IsNull reports whether a cell carries no data: either the empty string or
// one of the recognized null tokens, case-insensitively.
func IsNull(cell string) bool {
	return nullTokens[fold(cell)]
}

// Count returns how many of the given cells are null.
func Count(values []string) int {
	n := 0
	for _, v := range values {
		if IsNull(v) {
			n++
		}
	}
	return n
}

// Observed returns the distinct null tokens present in values, case-folded,
// in first-seen order. The empty string is reported as EmptyLabel.
func Observed(values []string) []string {
	var tokens []string
	seen := make(map[string]bool)
	for _, v := range values {
		f := fold(v)
		if !nullTokens[f] || seen[f] {
			continue
		}
		seen[f] = true
		if f == "" {
			tokens = append(tokens, EmptyLabel)
		} else {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
