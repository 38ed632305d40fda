package schema_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"sqlforge/internal/schema"
)

func TestInfer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   schema.SemanticType
	}{
		{
			name:   "integers",
			values: []string{"1", "42", "-7", "0"},
			want:   schema.TypeInteger,
		},
		{
			name:   "integers with null cells",
			values: []string{"1", "", "3", "null"},
			want:   schema.TypeInteger,
		},
		{
			name:   "floats",
			values: []string{"1.5", "-0.25", ".5"},
			want:   schema.TypeFloat,
		},
		{
			name:   "scientific notation",
			values: []string{"1e10", "2.5e-3"},
			want:   schema.TypeFloat,
		},
		{
			name:   "mixed integer and float",
			values: []string{"1", "2.5"},
			want:   schema.TypeFloat,
		},
		{
			name:   "iso dates",
			values: []string{"2023-01-15", "2023-12-31"},
			want:   schema.TypeDate,
		},
		{
			name:   "slash dates",
			values: []string{"1/15/2023", "12/31/2023"},
			want:   schema.TypeDate,
		},
		{
			name:   "timestamps",
			values: []string{"2023-01-15 10:30:00", "2023-01-15T10:30:00Z"},
			want:   schema.TypeDate,
		},
		{
			name:   "date mixed with text",
			values: []string{"2023-01-15", "not a date"},
			want:   schema.TypeString,
		},
		{
			name:   "booleans textual",
			values: []string{"true", "FALSE", "yes", "No", "y", "n"},
			want:   schema.TypeBoolean,
		},
		{
			name:   "zero one stays numeric",
			values: []string{"1", "0", "1"},
			want:   schema.TypeInteger,
		},
		{
			name:   "emails",
			values: []string{"a@example.com", "b.c@mail.example.org"},
			want:   schema.TypeEmail,
		},
		{
			name:   "one bad email degrades the column",
			values: []string{"a@example.com", "bad-email"},
			want:   schema.TypeString,
		},
		{
			name:   "urls",
			values: []string{"https://example.com/x", "http://example.org"},
			want:   schema.TypeURL,
		},
		{
			name:   "relative path is not a url",
			values: []string{"https://example.com", "/just/a/path"},
			want:   schema.TypeString,
		},
		{
			name:   "phone numbers",
			values: []string{"123-456-7890", "+1 (212) 555-0100"},
			want:   schema.TypePhone,
		},
		{
			name:   "short digit runs are not phones",
			values: []string{"123-456", "555-0100"},
			want:   schema.TypeString,
		},
		{
			name:   "currency",
			values: []string{"$1,000.50", "€200", "£3,000"},
			want:   schema.TypeCurrency,
		},
		{
			name:   "plain grouped numbers read as currency",
			values: []string{"1,000", "12,345.67"},
			want:   schema.TypeCurrency,
		},
		{
			name:   "all null",
			values: []string{"", "null", "N/A"},
			want:   schema.TypeString,
		},
		{
			name:   "empty column",
			values: nil,
			want:   schema.TypeString,
		},
		{
			name:   "plain text",
			values: []string{"alice", "bob"},
			want:   schema.TypeString,
		},
		{
			name:   "padded values are trimmed before matching",
			values: []string{" 42 ", "7"},
			want:   schema.TypeInteger,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, schema.Infer(tt.values), "Infer(%v)", tt.values)
		})
	}
}

func TestInferSamplesFirstHundredValues(t *testing.T) {
	t.Parallel()

	values := make([]string, 0, 101)
	for i := 0; i < 100; i++ {
		values = append(values, strconv.Itoa(i))
	}
	values = append(values, "not a number")

	assert.Equal(t, schema.TypeInteger, schema.Infer(values),
		"values beyond the sample window must not affect detection")
}
