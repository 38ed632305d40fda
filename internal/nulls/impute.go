package nulls

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ImputeStrategy is the column-scoped replacement policy offered by the
// remote interface. Unlike Policy, which works row-wise, imputation computes
// a substitute per column from that column's own non-null values.
type ImputeStrategy int

const (
	// ImputeDrop removes rows that are null in any targeted column.
	ImputeDrop ImputeStrategy = iota
	// ImputeMean fills nulls with the column mean (numeric columns only).
	ImputeMean
	// ImputeMedian fills nulls with the column median (numeric columns only).
	ImputeMedian
	// ImputeMode fills nulls with the most frequent non-null value.
	ImputeMode
	// ImputeZero fills nulls with the literal "0".
	ImputeZero
	// ImputeValue fills nulls with a caller-supplied value.
	ImputeValue
)

// ParseImputeStrategy maps a wire-format strategy name to an ImputeStrategy.
func ParseImputeStrategy(name string) (ImputeStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "drop":
		return ImputeDrop, nil
	case "mean":
		return ImputeMean, nil
	case "median":
		return ImputeMedian, nil
	case "mode":
		return ImputeMode, nil
	case "zero":
		return ImputeZero, nil
	case "value":
		return ImputeValue, nil
	default:
		return ImputeDrop, fmt.Errorf("unknown impute strategy %q", name)
	}
}

// ImputeSpec selects a strategy and the columns it applies to. An empty
// Columns list targets every column. Column names that do not exist in the
// header are ignored, matching the original service behavior.
type ImputeSpec struct {
	Strategy  ImputeStrategy
	Columns   []string
	FillValue string
}

// Impute applies the spec to rows and returns a fresh row set. Mean and
// median silently skip columns whose non-null cells are not all numeric;
// mode skips columns with no non-null values at all.
func Impute(headers []string, rows [][]string, spec ImputeSpec) [][]string {
	targets := targetIndexes(headers, spec.Columns)

	if spec.Strategy == ImputeDrop {
		out := make([][]string, 0, len(rows))
		for _, row := range rows {
			if nullAt(row, targets) {
				continue
			}
			out = append(out, copyRow(row))
		}
		return out
	}

	// Compute one substitute per targeted column up front.
	fills := make(map[int]string, len(targets))
	for _, col := range targets {
		if v, ok := substitute(column(rows, col), spec); ok {
			fills[col] = v
		}
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		cp := copyRow(row)
		for col, v := range fills {
			if col < len(cp) && IsNull(cp[col]) {
				cp[col] = v
			}
		}
		out[i] = cp
	}
	return out
}

// targetIndexes resolves the selected column names to header positions.
func targetIndexes(headers, columns []string) []int {
	if len(columns) == 0 {
		idx := make([]int, len(headers))
		for i := range headers {
			idx[i] = i
		}
		return idx
	}
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		byName[h] = i
	}
	var idx []int
	for _, c := range columns {
		if i, ok := byName[c]; ok {
			idx = append(idx, i)
		}
	}
	return idx
}

func nullAt(row []string, cols []int) bool {
	for _, c := range cols {
		if c < len(row) && IsNull(row[c]) {
			return true
		}
	}
	return false
}

func column(rows [][]string, col int) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if col < len(row) {
			out = append(out, row[col])
		}
	}
	return out
}

// substitute computes the fill value for one column, or ok=false when the
// strategy does not apply to it.
func substitute(values []string, spec ImputeSpec) (string, bool) {
	switch spec.Strategy {
	case ImputeZero:
		return "0", true
	case ImputeValue:
		return spec.FillValue, true
	case ImputeMode:
		return modeOf(values)
	case ImputeMean, ImputeMedian:
		nums, ok := numericColumn(values)
		if !ok {
			return "", false
		}
		if spec.Strategy == ImputeMean {
			return formatNumber(mean(nums)), true
		}
		return formatNumber(median(nums)), true
	default:
		return "", false
	}
}

// numericColumn parses the non-null cells of a column. It reports ok=false
// when the column has no non-null values or any of them is not a number,
// which keeps mean/median away from text columns.
func numericColumn(values []string) ([]float64, bool) {
	var nums []float64
	for _, v := range values {
		if IsNull(v) {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, false
		}
		nums = append(nums, f)
	}
	return nums, len(nums) > 0
}

func modeOf(values []string) (string, bool) {
	counts := make(map[string]int)
	for _, v := range values {
		if !IsNull(v) {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return "", false
	}
	best, bestN := "", -1
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	return best, true
}

func mean(nums []float64) float64 {
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return sum / float64(len(nums))
}

func median(nums []float64) float64 {
	sorted := make([]float64, len(nums))
	copy(sorted, nums)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
