package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sqlforge/internal/dataset"
)

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want dataset.Format
	}{
		{path: "data.csv", want: dataset.FormatCSV},
		{path: "data.tsv", want: dataset.FormatTSV},
		{path: "data.xlsx", want: dataset.FormatXLSX},
		{path: "DATA.CSV", want: dataset.FormatCSV},
		{path: "data.csv.gz", want: dataset.FormatCSV},
		{path: "data.csv.bz2", want: dataset.FormatCSV},
		{path: "data.tsv.xz", want: dataset.FormatTSV},
		{path: "data.csv.zst", want: dataset.FormatCSV},
		{path: "data.json", want: dataset.FormatUnsupported},
		{path: "data", want: dataset.FormatUnsupported},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dataset.DetectFormat(tt.path))
		})
	}
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	t.Run("header and rows", func(t *testing.T) {
		t.Parallel()
		ds, err := dataset.ReadCSV(strings.NewReader("id,name\n1,alice\n2,bob\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, ds.Headers)
		assert.Equal(t, [][]string{{"1", "alice"}, {"2", "bob"}}, ds.Rows)
	})

	t.Run("BOM is stripped from the first header", func(t *testing.T) {
		t.Parallel()
		ds, err := dataset.ReadCSV(strings.NewReader("\uFEFFid,name\n1,alice\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, ds.Headers)
	})

	t.Run("quoted cells keep embedded delimiters", func(t *testing.T) {
		t.Parallel()
		ds, err := dataset.ReadCSV(strings.NewReader("name,bio\n\"o'brien\",\"a, b\"\n"))
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"o'brien", "a, b"}}, ds.Rows)
	})

	t.Run("empty content is a shape error", func(t *testing.T) {
		t.Parallel()
		_, err := dataset.ReadCSV(strings.NewReader(""))
		require.Error(t, err)

		var shapeErr *dataset.ShapeError
		require.ErrorAs(t, err, &shapeErr)
		assert.Contains(t, err.Error(), "empty file")
	})

	t.Run("header only gives zero rows", func(t *testing.T) {
		t.Parallel()
		ds, err := dataset.ReadCSV(strings.NewReader("id,name\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, ds.Headers)
		assert.Empty(t, ds.Rows)
	})

	t.Run("ragged rows are left for Validate", func(t *testing.T) {
		t.Parallel()
		ds, err := dataset.ReadCSV(strings.NewReader("a,b\n1\n"))
		require.NoError(t, err)
		require.Error(t, ds.Validate())
	})
}

func TestReadDelimitedTSV(t *testing.T) {
	t.Parallel()

	ds, err := dataset.ReadDelimited(strings.NewReader("id\tname\n1\talice\n"), '\t')
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, ds.Headers)
	assert.Equal(t, [][]string{{"1", "alice"}}, ds.Rows)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	ds := dataset.Dataset{
		Headers: []string{"name", "bio"},
		Rows:    [][]string{{"o'brien", "a, b"}},
	}

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&buf, ds))
	assert.Equal(t, "name,bio\no'brien,\"a, b\"\n", buf.String())
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	ds := dataset.Dataset{
		Headers: []string{"id", "name", "note"},
		Rows: [][]string{
			{"1", "alice", "likes, commas"},
			{"2", "o'brien", ""},
		},
	}

	for _, ext := range []string{".csv", ".csv.gz", ".csv.xz", ".csv.zst"} {
		ext := ext
		t.Run(ext, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "data"+ext)

			require.NoError(t, dataset.WriteFile(path, ds))

			got, err := dataset.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, ds, got)
		})
	}
}

func TestWriteFileRejectsBzip2(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.csv.bz2")
	err := dataset.WriteFile(path, dataset.Dataset{Headers: []string{"a"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bzip2")
}

func TestReadFileUnsupportedFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	_, err := dataset.ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}

func TestReadFileXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.xlsx")
	writeTestXLSX(t, path)

	ds, err := dataset.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, []string{"1", "alice"}, ds.Rows[0])

	// The second row has no name cell; it must come back padded.
	assert.Equal(t, []string{"2", ""}, ds.Rows[1])
}

func writeTestXLSX(t *testing.T, path string) {
	t.Helper()

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	cells := map[string]string{
		"A1": "id", "B1": "name",
		"A2": "1", "B2": "alice",
		"A3": "2",
	}
	for cell, value := range cells {
		require.NoError(t, file.SetCellValue("Sheet1", cell, value))
	}
	require.NoError(t, file.SaveAs(path))
}
