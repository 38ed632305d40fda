// Package schema derives a typed column model from raw tabular data. One
// inference pass over a dataset yields a ColumnReport per column; callers may
// override detected types before handing the reports to SQL generation.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a caller selects a type outside the
// supported set.
var ErrUnknownType = errors.New("unknown semantic type")

// SemanticType classifies a column by the shape of its values, not by SQL
// storage. TypeString is the universal fallback: it always validates.
type SemanticType int

const (
	TypeString SemanticType = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeDate
	TypeEmail
	TypeURL
	TypePhone
	TypeCurrency
)

func (t SemanticType) String() string {
	switch t {
	case TypeInteger:
		return "INTEGER"
	case TypeFloat:
		return "FLOAT"
	case TypeBoolean:
		return "BOOLEAN"
	case TypeDate:
		return "DATE"
	case TypeEmail:
		return "EMAIL"
	case TypeURL:
		return "URL"
	case TypePhone:
		return "PHONE"
	case TypeCurrency:
		return "CURRENCY"
	default:
		return "STRING"
	}
}

// ParseSemanticType maps a type name, in any case, to its SemanticType.
func ParseSemanticType(name string) (SemanticType, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "STRING":
		return TypeString, nil
	case "INTEGER":
		return TypeInteger, nil
	case "FLOAT":
		return TypeFloat, nil
	case "BOOLEAN":
		return TypeBoolean, nil
	case "DATE":
		return TypeDate, nil
	case "EMAIL":
		return TypeEmail, nil
	case "URL":
		return TypeURL, nil
	case "PHONE":
		return TypePhone, nil
	case "CURRENCY":
		return TypeCurrency, nil
	default:
		return TypeString, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Types lists every semantic type in detection-precedence order.
func Types() []SemanticType {
	return []SemanticType{
		TypeInteger, TypeFloat, TypeDate, TypeBoolean,
		TypeEmail, TypeURL, TypePhone, TypeCurrency, TypeString,
	}
}

// ColumnReport describes one column after an inference pass. Reports are
// value snapshots: the analyzer never mutates one after creation, and type
// overrides produce fresh copies (see ResolveTypes).
type ColumnReport struct {
	Column       string
	Ordinal      int
	DetectedType SemanticType
	NullCount    int
	TotalCount   int
	SampleValues []string
}
