package splitter

import "strings"

// Statements cuts sqlText into statement-aligned segments. A boundary is a
// semicolon immediately followed by a newline (or end of text); the cut lands
// right after the semicolon, so a segment ends with ";" and the newline opens
// the next segment. Concatenating the segments in order reproduces sqlText
// byte for byte. Text after the last boundary forms one final segment; a
// pure-whitespace tail is folded into the preceding segment instead.
func Statements(sqlText string) []string {
	var segments []string
	start := 0
	for i := 0; i < len(sqlText); i++ {
		if sqlText[i] != ';' {
			continue
		}
		if !boundaryAt(sqlText, i+1) {
			continue
		}
		segments = append(segments, sqlText[start:i+1])
		start = i + 1
	}

	if start < len(sqlText) {
		tail := sqlText[start:]
		if len(segments) > 0 && strings.TrimSpace(tail) == "" {
			segments[len(segments)-1] += tail
		} else {
			segments = append(segments, tail)
		}
	}
	return segments
}

// boundaryAt reports whether position i (just past a semicolon) is end of
// text or the start of a line break. CRLF endings count.
func boundaryAt(s string, i int) bool {
	if i == len(s) {
		return true
	}
	if s[i] == '\n' {
		return true
	}
	return s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n'
}

// ExecutableStatements returns the trimmed statements of sqlText for
// statement-at-a-time execution, skipping segments holding only whitespace
// or line comments.
func ExecutableStatements(sqlText string) []string {
	var out []string
	for _, seg := range Statements(sqlText) {
		trimmed := strings.TrimSpace(seg)
		if trimmed == "" || commentOnly(trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func commentOnly(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		return false
	}
	return true
}
