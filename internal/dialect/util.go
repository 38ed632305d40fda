package dialect

import (
	"fmt"
	"strings"
)

// Sanitize rewrites an identifier for safe embedding in DDL: every character
// outside [A-Za-z0-9_] becomes an underscore. Empty input falls back to "col".
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "col"
	}
	return b.String()
}

// SanitizeAll sanitizes a header list and resolves collisions with _2, _3...
// suffixes, keeping column names unique within a table.
func SanitizeAll(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]bool, len(names))
	for i, name := range names {
		s := Sanitize(name)
		if used[s] {
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s_%d", s, n)
				if !used[candidate] {
					s = candidate
					break
				}
			}
		}
		used[s] = true
		out[i] = s
	}
	return out
}
