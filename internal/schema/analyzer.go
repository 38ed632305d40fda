package schema

import (
	"fmt"

	"sqlforge/internal/dataset"
	"sqlforge/internal/nulls"
)

// maxSampleValues is how many example cells a report keeps for review.
const maxSampleValues = 5

// Analyze runs one inference pass over the dataset and returns a report per
// column, in header order. The dataset is shape-checked first so every later
// stage can assume rectangular input. Null statistics are computed over the
// full column, not just the detection sample.
func Analyze(ds dataset.Dataset) ([]ColumnReport, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	reports := make([]ColumnReport, len(ds.Headers))
	for i, name := range ds.Headers {
		col := ds.Column(i)
		reports[i] = ColumnReport{
			Column:       name,
			Ordinal:      i,
			DetectedType: Infer(col),
			NullCount:    nulls.Count(col),
			TotalCount:   len(col),
			SampleValues: sampleValues(col, maxSampleValues),
		}
	}
	return reports, nil
}

// sampleValues returns the first n non-null cells verbatim. They are for
// operator review, not for detection.
func sampleValues(col []string, n int) []string {
	out := make([]string, 0, n)
	for _, v := range col {
		if nulls.IsNull(v) {
			continue
		}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// ResolveTypes applies caller-selected type overrides and returns fresh
// reports; the originals are never touched. An override naming an unknown
// column or an unsupported type is rejected before any generation runs.
func ResolveTypes(reports []ColumnReport, overrides map[string]string) ([]ColumnReport, error) {
	out := make([]ColumnReport, len(reports))
	copy(out, reports)
	if len(overrides) == 0 {
		return out, nil
	}

	byName := make(map[string]int, len(reports))
	for i, r := range reports {
		byName[r.Column] = i
	}

	for column, typeName := range overrides {
		i, ok := byName[column]
		if !ok {
			return nil, fmt.Errorf("type override for unknown column %q", column)
		}
		t, err := ParseSemanticType(typeName)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", column, err)
		}
		out[i].DetectedType = t
	}
	return out, nil
}
