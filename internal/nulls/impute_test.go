package nulls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlforge/internal/nulls"
)

func TestParseImputeStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    nulls.ImputeStrategy
		wantErr bool
	}{
		{input: "drop", want: nulls.ImputeDrop},
		{input: "mean", want: nulls.ImputeMean},
		{input: "median", want: nulls.ImputeMedian},
		{input: "mode", want: nulls.ImputeMode},
		{input: "zero", want: nulls.ImputeZero},
		{input: "value", want: nulls.ImputeValue},
		{input: "MEAN", want: nulls.ImputeMean},
		{input: "interpolate", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := nulls.ParseImputeStrategy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImputeDrop(t *testing.T) {
	t.Parallel()

	headers := []string{"id", "score", "label"}
	rows := [][]string{
		{"1", "10", "a"},
		{"2", "", "b"},
		{"3", "30", ""},
	}

	t.Run("all columns", func(t *testing.T) {
		t.Parallel()
		got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeDrop})
		assert.Equal(t, [][]string{{"1", "10", "a"}}, got)
	})

	t.Run("scoped to one column", func(t *testing.T) {
		t.Parallel()
		got := nulls.Impute(headers, rows, nulls.ImputeSpec{
			Strategy: nulls.ImputeDrop,
			Columns:  []string{"score"},
		})
		assert.Equal(t, [][]string{{"1", "10", "a"}, {"3", "30", ""}}, got)
	})
}

func TestImputeMean(t *testing.T) {
	t.Parallel()

	headers := []string{"score", "label"}
	rows := [][]string{
		{"10", "a"},
		{"", "b"},
		{"20", ""},
	}

	got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeMean})

	// score mean is 15; the text column must be left alone.
	assert.Equal(t, [][]string{
		{"10", "a"},
		{"15", "b"},
		{"20", ""},
	}, got)
}

func TestImputeMedian(t *testing.T) {
	t.Parallel()

	headers := []string{"v"}

	t.Run("odd count", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{{"1"}, {"100"}, {"3"}, {""}}
		got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeMedian})
		assert.Equal(t, "3", got[3][0])
	})

	t.Run("even count averages the middle pair", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{{"1"}, {"2"}, {"3"}, {"4"}, {""}}
		got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeMedian})
		assert.Equal(t, "2.5", got[4][0])
	})
}

func TestImputeMode(t *testing.T) {
	t.Parallel()

	headers := []string{"city"}

	t.Run("most frequent wins", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{{"seoul"}, {"tokyo"}, {"seoul"}, {""}}
		got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeMode})
		assert.Equal(t, "seoul", got[3][0])
	})

	t.Run("tie breaks to the smaller value", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{{"b"}, {"a"}, {""}}
		got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeMode})
		assert.Equal(t, "a", got[2][0])
	})

	t.Run("all-null column is left alone", func(t *testing.T) {
		t.Parallel()
		rows := [][]string{{""}, {"null"}}
		got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeMode})
		assert.Equal(t, [][]string{{""}, {"null"}}, got)
	})
}

func TestImputeZeroAndValue(t *testing.T) {
	t.Parallel()

	headers := []string{"a", "b"}
	rows := [][]string{{"", "x"}, {"1", "null"}}

	t.Run("zero", func(t *testing.T) {
		t.Parallel()
		got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeZero})
		assert.Equal(t, [][]string{{"0", "x"}, {"1", "0"}}, got)
	})

	t.Run("custom value", func(t *testing.T) {
		t.Parallel()
		got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeValue, FillValue: "missing"})
		assert.Equal(t, [][]string{{"missing", "x"}, {"1", "missing"}}, got)
	})
}

func TestImputeNonNumericColumnSkipsMean(t *testing.T) {
	t.Parallel()

	headers := []string{"mixed"}
	rows := [][]string{{"1"}, {"two"}, {""}}

	got := nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeMean})
	assert.Equal(t, rows, got, "a column with non-numeric values must not be averaged")
}

func TestImputeUnknownColumnIgnored(t *testing.T) {
	t.Parallel()

	headers := []string{"a"}
	rows := [][]string{{""}}

	got := nulls.Impute(headers, rows, nulls.ImputeSpec{
		Strategy:  nulls.ImputeValue,
		Columns:   []string{"nope"},
		FillValue: "x",
	})
	assert.Equal(t, [][]string{{""}}, got)
}

func TestImputeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	headers := []string{"a"}
	rows := [][]string{{""}}
	nulls.Impute(headers, rows, nulls.ImputeSpec{Strategy: nulls.ImputeZero})

	assert.Equal(t, [][]string{{""}}, rows)
}
