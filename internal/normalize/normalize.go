// Package normalize rescales numeric dataset columns into the unit interval.
// Scaling is column-scoped min-max: text, date and null cells pass through
// exactly as they arrived.
package normalize

import (
	"strconv"
	"strings"

	"sqlforge/internal/dataset"
	"sqlforge/internal/nulls"
	"sqlforge/internal/schema"
)

// MinMax returns a copy of ds with every INTEGER or FLOAT column rescaled to
// [0, 1] via (v - min) / (max - min). A column with a single distinct value
// keeps its original cells: a zero range has no meaningful scale.
func MinMax(ds dataset.Dataset) dataset.Dataset {
	out := dataset.Dataset{
		Headers: append([]string(nil), ds.Headers...),
		Rows:    copyRows(ds.Rows),
	}
	for i := range ds.Headers {
		switch schema.Infer(ds.Column(i)) {
		case schema.TypeInteger, schema.TypeFloat:
			scaleColumn(out.Rows, i)
		}
	}
	return out
}

func scaleColumn(rows [][]string, idx int) {
	lo, hi, ok := columnRange(rows, idx)
	if !ok || hi <= lo {
		return
	}
	span := hi - lo
	for _, row := range rows {
		v, ok := numericCell(row, idx)
		if !ok {
			continue
		}
		row[idx] = strconv.FormatFloat((v-lo)/span, 'g', -1, 64)
	}
}

func columnRange(rows [][]string, idx int) (lo, hi float64, ok bool) {
	for _, row := range rows {
		v, parsed := numericCell(row, idx)
		if !parsed {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}

// numericCell parses row[idx] when it exists and is neither null nor outside
// the numeric grammar. Unparsable cells can occur past the inference sample
// and are simply left alone.
func numericCell(row []string, idx int) (float64, bool) {
	if idx >= len(row) || nulls.IsNull(row[idx]) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
