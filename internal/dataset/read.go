package dataset

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"
)

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// Format identifies the base file format once compression extensions are
// stripped.
type Format int

const (
	FormatCSV Format = iota
	FormatTSV
	FormatXLSX
	FormatUnsupported
)

var compressionExts = []string{".gz", ".bz2", ".xz", ".zst"}

// DetectFormat maps a file path to its base format. Compression extensions
// (.gz, .bz2, .xz, .zst) are looked through, so "data.csv.gz" is CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(stripCompressionExt(path))) {
	case ".csv":
		return FormatCSV
	case ".tsv":
		return FormatTSV
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatUnsupported
	}
}

func stripCompressionExt(path string) string {
	lower := strings.ToLower(path)
	for _, ext := range compressionExts {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)]
		}
	}
	return path
}

// ReadFile loads a tabular file into a Dataset. CSV and TSV may carry a
// compression extension; XLSX reads the first sheet of the workbook.
func ReadFile(path string) (Dataset, error) {
	format := DetectFormat(path)
	if format == FormatUnsupported {
		return Dataset{}, fmt.Errorf("unsupported input format: %s", filepath.Base(path))
	}

	reader, cleanup, err := openReader(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()

	var ds Dataset
	switch format {
	case FormatTSV:
		ds, err = ReadDelimited(reader, '\t')
	case FormatXLSX:
		ds, err = readXLSX(reader)
	default:
		ds, err = ReadDelimited(reader, ',')
	}
	if err != nil {
		return Dataset{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses comma-separated content into a Dataset.
func ReadCSV(r io.Reader) (Dataset, error) {
	return ReadDelimited(r, ',')
}

// ReadDelimited parses delimiter-separated content. A UTF-8 BOM on the first
// header cell is stripped. Ragged rows are passed through for Validate to
// report, so the shape error taxonomy is the same for files and JSON input.
func ReadDelimited(r io.Reader, comma rune) (Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return Dataset{}, err
	}
	if len(records) == 0 {
		return Dataset{}, &ShapeError{Reason: "empty file"}
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], utf8BOM)
	}
	return Dataset{Headers: headers, Rows: records[1:]}, nil
}

// readXLSX loads the first sheet of a workbook. Rows are padded to the header
// width because xlsx omits trailing empty cells.
func readXLSX(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, err
	}
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Dataset{}, err
	}
	defer func() { _ = book.Close() }()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return Dataset{}, &ShapeError{Reason: "empty file"}
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return Dataset{}, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Dataset{}, &ShapeError{Reason: "empty file"}
	}

	headers := rows[0]
	padded := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := make([]string, len(headers))
		copy(p, row)
		padded = append(padded, p)
	}
	return Dataset{Headers: headers, Rows: padded}, nil
}

// openReader opens path and wraps it in a decompression reader when the name
// carries a compression extension. The cleanup closes both layers.
func openReader(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	reader, cleanup, err := decompressor(file, path)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	return reader, func() error {
		cerr := cleanup()
		if err := file.Close(); err != nil && cerr == nil {
			cerr = err
		}
		return cerr
	}, nil
}

func decompressor(r io.Reader, path string) (io.Reader, func() error, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return gz, gz.Close, nil

	case strings.HasSuffix(lower, ".bz2"):
		return bzip2.NewReader(r), func() error { return nil }, nil

	case strings.HasSuffix(lower, ".xz"):
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("open xz stream: %w", err)
		}
		return xzr, func() error { return nil }, nil

	case strings.HasSuffix(lower, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return dec, func() error { dec.Close(); return nil }, nil

	default:
		return r, func() error { return nil }, nil
	}
}
