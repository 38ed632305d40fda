package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"sqlforge/internal/dataset"
	"sqlforge/internal/nulls"
	"sqlforge/internal/schema"
)

// record is a JSON object that marshals its keys in dataset column order.
// encoding/json sorts map keys, which would scramble the column order the
// frontend renders.
type record struct {
	keys   []string
	values []any
}

func (rec record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range rec.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(rec.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// recordsOf renders up to limit rows as typed records; limit <= 0 means all
// rows. Integer and float cells become JSON numbers, null cells become JSON
// null, everything else stays text.
func recordsOf(ds dataset.Dataset, reports []schema.ColumnReport, limit int) []record {
	n := len(ds.Rows)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]record, 0, n)
	for _, row := range ds.Rows[:n] {
		values := make([]any, len(ds.Headers))
		for i := range ds.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			values[i] = cellValue(cell, reports[i].DetectedType)
		}
		out = append(out, record{keys: ds.Headers, values: values})
	}
	return out
}

func cellValue(cell string, t schema.SemanticType) any {
	if nulls.IsNull(cell) {
		return nil
	}
	switch t {
	case schema.TypeInteger:
		if n, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64); err == nil {
			return n
		}
	case schema.TypeFloat:
		if f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			return f
		}
	}
	return cell
}

// decodeRecords converts a JSON array of objects into a rectangular dataset.
// Column order follows first appearance across the records; cells missing
// from a record become empty (null) cells.
func decodeRecords(raw json.RawMessage) (dataset.Dataset, error) {
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return dataset.Dataset{}, fmt.Errorf("decode csvData: %w", err)
	}
	headers, err := recordKeys(raw)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("decode csvData: %w", err)
	}
	if len(headers) == 0 {
		return dataset.Dataset{}, fmt.Errorf("csvData has no columns")
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(headers))
		for j, h := range headers {
			if v, ok := rec[h]; ok {
				row[j] = cellString(v)
			}
		}
		rows[i] = row
	}
	return dataset.Dataset{Headers: headers, Rows: rows}, nil
}

// recordKeys walks raw token by token and collects object keys in first-seen
// order across all records. A plain unmarshal cannot recover this order.
func recordKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	var keys []string
	seen := make(map[string]bool)
	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string")
			}
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil { // closing }
			return nil, err
		}
	}
	return keys, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("want %v, got %v", want, tok)
	}
	return nil
}

// skipValue consumes one JSON value, recursing into containers.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	for dec.More() {
		if d == '{' {
			if _, err := dec.Token(); err != nil { // key
				return err
			}
		}
		if err := skipValue(dec); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing delim
	return err
}

// cellString flattens one decoded JSON value to cell text. JSON null maps to
// the empty cell, the canonical null token.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
