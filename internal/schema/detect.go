package schema

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"sqlforge/internal/nulls"
)

// sampleLimit caps how many non-null values detection inspects per column.
const sampleLimit = 100

// Infer returns the semantic type of a column from its raw cells. Null cells
// are excluded first; a column with no data left is TypeString. The sampled
// values are tested against each detector in precedence order and the first
// type that every value satisfies wins, so a single odd value degrades the
// column to a wider type rather than being ignored.
func Infer(values []string) SemanticType {
	sample := nonNullSample(values, sampleLimit)
	if len(sample) == 0 {
		return TypeString
	}
	for _, d := range detectors {
		if allMatch(sample, d.match) {
			return d.typ
		}
	}
	return TypeString
}

// detectors are ordered narrowest first. TypeInteger before TypeBoolean keeps
// 0/1 columns numeric; TypeFloat before TypeDate keeps plain numbers out of
// the date parser.
var detectors = []struct {
	typ   SemanticType
	match func(string) bool
}{
	{TypeInteger, isInteger},
	{TypeFloat, isFloat},
	{TypeDate, isDate},
	{TypeBoolean, isBoolean},
	{TypeEmail, isEmail},
	{TypeURL, isURL},
	{TypePhone, isPhone},
	{TypeCurrency, isCurrency},
}

// nonNullSample collects up to limit non-null cells, trimmed for matching.
func nonNullSample(values []string, limit int) []string {
	sample := make([]string, 0, limit)
	for _, v := range values {
		if nulls.IsNull(v) {
			continue
		}
		sample = append(sample, strings.TrimSpace(v))
		if len(sample) == limit {
			break
		}
	}
	return sample
}

// allMatch reports whether every value satisfies fn.
func allMatch(values []string, fn func(string) bool) bool {
	for _, v := range values {
		if !fn(v) {
			return false
		}
	}
	return true
}

var (
	integerPattern  = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern    = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	currencyPattern = regexp.MustCompile(`^[$€£¥]?\s?-?\d+(,\d{3})*(\.\d+)?$`)
)

func isInteger(s string) bool {
	return integerPattern.MatchString(s)
}

func isFloat(s string) bool {
	return floatPattern.MatchString(s)
}

// dateLayouts cover ISO, slash/dot ordered dates, textual months and common
// timestamp shapes. Numeric elements are unpadded so "1/2/2006" accepts
// "01/02/2006" as well.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"2/1/2006",
	"2.1.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"20060102",
	"15:04:05",
}

func isDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isBoolean(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "1", "0", "yes", "no", "y", "n":
		return true
	default:
		return false
	}
}

func isEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// isURL requires an absolute URL with a host, so bare words and relative
// paths do not pass.
func isURL(s string) bool {
	if strings.ContainsAny(s, " \t") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

// isPhone accepts digits with common separators, an optional leading +, and
// at least 10 digits overall.
func isPhone(s string) bool {
	digits := 0
	for i, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+':
			if i != 0 {
				return false
			}
		case r == '-' || r == '(' || r == ')' || r == '.' || r == ' ':
		default:
			return false
		}
	}
	return digits >= 10
}

func isCurrency(s string) bool {
	return currencyPattern.MatchString(s)
}
