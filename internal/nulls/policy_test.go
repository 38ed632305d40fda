package nulls_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlforge/internal/nulls"
)

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    nulls.Strategy
		wantErr bool
	}{
		{name: "keep", input: "keep", want: nulls.Keep},
		{name: "fill", input: "fill", want: nulls.Fill},
		{name: "drop", input: "drop", want: nulls.Drop},
		{name: "uppercase", input: "DROP", want: nulls.Drop},
		{name: "padded", input: " fill ", want: nulls.Fill},
		{name: "empty defaults to keep", input: "", want: nulls.Keep},
		{name: "unknown", input: "purge", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := nulls.ParseStrategy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrategyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "keep", nulls.Keep.String())
	assert.Equal(t, "fill", nulls.Fill.String())
	assert.Equal(t, "drop", nulls.Drop.String())
}

func TestApplyKeep(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"1", ""}, {"null", "x"}}
	got := nulls.Apply(rows, nulls.Policy{Strategy: nulls.Keep})

	assert.Equal(t, rows, got, "keep must return rows structurally equal to the input")

	got[0][0] = "mutated"
	assert.Equal(t, "1", rows[0][0], "keep must copy, not alias, the input rows")
}

func TestApplyFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		rows  [][]string
		value string
		want  [][]string
	}{
		{
			name:  "empty cell is filled",
			rows:  [][]string{{"", "x"}},
			value: "N/A",
			want:  [][]string{{"N/A", "x"}},
		},
		{
			name:  "all token forms are filled",
			rows:  [][]string{{"NULL", "na", "ok"}, {"#N/A", "y", "None"}},
			value: "-",
			want:  [][]string{{"-", "-", "ok"}, {"-", "y", "-"}},
		},
		{
			name:  "empty fill value still replaces the token",
			rows:  [][]string{{"null", "x"}},
			value: "",
			want:  [][]string{{"", "x"}},
		},
		{
			name:  "no nulls means no change",
			rows:  [][]string{{"a", "b"}},
			value: "N/A",
			want:  [][]string{{"a", "b"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := nulls.Apply(tt.rows, nulls.Policy{Strategy: nulls.Fill, FillValue: tt.value})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyDrop(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"1", "a"},
		{"", "b"},
		{"", ""},
		{"2", "null"},
		{"3", "c"},
	}

	tests := []struct {
		name   string
		policy nulls.Policy
		want   [][]string
	}{
		{
			name:   "default drops any null",
			policy: nulls.Policy{Strategy: nulls.Drop},
			want:   [][]string{{"1", "a"}, {"3", "c"}},
		},
		{
			name:   "any null mode",
			policy: nulls.Policy{Strategy: nulls.Drop, DropIfAnyNull: true},
			want:   [][]string{{"1", "a"}, {"3", "c"}},
		},
		{
			name:   "all null mode keeps partial rows",
			policy: nulls.Policy{Strategy: nulls.Drop, DropIfAllNull: true},
			want:   [][]string{{"1", "a"}, {"", "b"}, {"2", "null"}, {"3", "c"}},
		},
		{
			name:   "combined modes drop on either condition",
			policy: nulls.Policy{Strategy: nulls.Drop, DropIfAnyNull: true, DropIfAllNull: true},
			want:   [][]string{{"1", "a"}, {"3", "c"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := nulls.Apply(rows, tt.policy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyNeverMutatesInput(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"", "x"}, {"null", "y"}}
	nulls.Apply(rows, nulls.Policy{Strategy: nulls.Fill, FillValue: "filled"})

	assert.Equal(t, [][]string{{"", "x"}, {"null", "y"}}, rows)
}

func TestApplyEmptyInput(t *testing.T) {
	t.Parallel()

	for _, s := range []nulls.Strategy{nulls.Keep, nulls.Fill, nulls.Drop} {
		got := nulls.Apply(nil, nulls.Policy{Strategy: s})
		assert.Empty(t, got, "strategy %s on empty input", s)
	}
}
