package nulls

import "fmt"

// Strategy selects how rows with null cells are treated before generation.
type Strategy int

const (
	// Keep passes rows through unchanged.
	Keep Strategy = iota
	// Fill replaces every null cell with a caller-supplied value.
	Fill
	// Drop removes whole rows according to the Policy's drop modes.
	Drop
)

// String returns the lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Keep:
		return "keep"
	case Fill:
		return "fill"
	case Drop:
		return "drop"
	default:
		return "keep"
	}
}

// ParseStrategy maps a user-supplied name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch fold(name) {
	case "keep", "":
		return Keep, nil
	case "fill":
		return Fill, nil
	case "drop":
		return Drop, nil
	default:
		return Keep, fmt.Errorf("unknown null strategy %q (want keep, fill or drop)", name)
	}
}

// Policy describes a full null-handling configuration. For Drop, the two row
// predicates are independently selectable and may be combined; a row is
// removed when either selected condition holds. A Drop policy with neither
// mode set behaves as DropIfAnyNull.
type Policy struct {
	Strategy      Strategy
	FillValue     string
	DropIfAnyNull bool
	DropIfAllNull bool
}

// Apply transforms rows according to the policy. It is total: any well-formed
// input produces a result, and the input slices are never mutated. Keep
// returns a structurally equal copy.
func Apply(rows [][]string, p Policy) [][]string {
	switch p.Strategy {
	case Fill:
		out := make([][]string, len(rows))
		for i, row := range rows {
			cp := make([]string, len(row))
			for j, cell := range row {
				if IsNull(cell) {
					cp[j] = p.FillValue
				} else {
					cp[j] = cell
				}
			}
			out[i] = cp
		}
		return out

	case Drop:
		dropAny := p.DropIfAnyNull || (!p.DropIfAnyNull && !p.DropIfAllNull)
		out := make([][]string, 0, len(rows))
		for _, row := range rows {
			if dropAny && anyNull(row) {
				continue
			}
			if p.DropIfAllNull && allNull(row) {
				continue
			}
			out = append(out, copyRow(row))
		}
		return out

	default: // Keep
		out := make([][]string, len(rows))
		for i, row := range rows {
			out[i] = copyRow(row)
		}
		return out
	}
}

func anyNull(row []string) bool {
	for _, cell := range row {
		if IsNull(cell) {
			return true
		}
	}
	return false
}

// allNull reports whether every cell in the row is null. Zero-length rows are
// never all-null, so they survive the all-columns drop mode.
func allNull(row []string) bool {
	if len(row) == 0 {
		return false
	}
	for _, cell := range row {
		if !IsNull(cell) {
			return false
		}
	}
	return true
}

func copyRow(row []string) []string {
	cp := make([]string, len(row))
	copy(cp, row)
	return cp
}
