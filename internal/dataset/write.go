package dataset

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// WriteCSV encodes the dataset as comma-separated text.
func WriteCSV(w io.Writer, ds Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Headers); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the dataset as CSV, compressing when the path ends in
// .gz, .xz or .zst. bzip2 has no encoder in the toolchain and is rejected.
func WriteFile(path string, ds Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	writer, cleanup, err := compressor(file, path)
	if err != nil {
		_ = file.Close()
		return err
	}

	werr := WriteCSV(writer, ds)
	if cerr := cleanup(); werr == nil {
		werr = cerr
	}
	if cerr := file.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return fmt.Errorf("write %s: %w", path, werr)
	}
	return nil
}

func compressor(w io.Writer, path string) (io.Writer, func() error, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		gz := gzip.NewWriter(w)
		return gz, gz.Close, nil

	case strings.HasSuffix(lower, ".bz2"):
		return nil, nil, errors.New("bzip2 output is not supported")

	case strings.HasSuffix(lower, ".xz"):
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("open xz stream: %w", err)
		}
		return xzw, xzw.Close, nil

	case strings.HasSuffix(lower, ".zst"):
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return zw, zw.Close, nil

	default:
		return w, func() error { return nil }, nil
	}
}
