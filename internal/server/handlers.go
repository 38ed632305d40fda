package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"sqlforge/internal/dataset"
	"sqlforge/internal/dialect"
	"sqlforge/internal/engine"
	"sqlforge/internal/normalize"
	"sqlforge/internal/nulls"
	"sqlforge/internal/schema"
	"sqlforge/internal/splitter"
)

const (
	maxUploadBytes    = 32 << 20
	previewLimit      = 5
	defaultChunkLines = 1000
)

type processResponse struct {
	RowCount    int      `json:"rowCount"`
	ColumnCount int      `json:"columnCount"`
	Columns     []string `json:"columns"`
	PreviewData []record `json:"previewData"`
}

type typeEntry struct {
	Detected  string `json:"detected"`
	NullCount int    `json:"nullCount"`
}

type typesResponse struct {
	TypeInfo    record   `json:"typeInfo"`
	RowCount    int      `json:"rowCount"`
	ColumnCount int      `json:"columnCount"`
	PreviewData []record `json:"previewData"`
}

type normalizeResponse struct {
	NormalizedData []record `json:"normalizedData"`
	RowCount       int      `json:"rowCount"`
}

type nullsResponse struct {
	ProcessedData []record `json:"processedData"`
	RowCount      int      `json:"rowCount"`
}

type sqlResponse struct {
	CreateTableStatement string   `json:"createTableStatement"`
	InsertStatements     []string `json:"insertStatements"`
	RowCount             int      `json:"rowCount"`
	ColumnCount          int      `json:"columnCount"`
}

type splitResponse struct {
	Chunks                 []string `json:"chunks"`
	ChunkCount             int      `json:"chunkCount"`
	OriginalStatementCount int      `json:"originalStatementCount"`
}

// uploadDataset pulls the multipart file out of r and returns its analyzed
// dataset, serving repeated uploads from the cache. A false return means the
// error response was already written.
func (s *Server) uploadDataset(w http.ResponseWriter, r *http.Request) (dataset.Dataset, []schema.ColumnReport, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, r, http.StatusBadRequest, "file too large or invalid form")
		return dataset.Dataset{}, nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "No file part")
		return dataset.Dataset{}, nil, false
	}
	defer file.Close()
	if header.Filename == "" {
		writeError(w, r, http.StatusBadRequest, "No selected file")
		return dataset.Dataset{}, nil, false
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "read upload: "+err.Error())
		return dataset.Dataset{}, nil, false
	}

	key := s.cache.key(header.Filename, content)
	if a, ok := s.cache.get(key); ok {
		return a.ds, a.reports, true
	}

	ds, err := dataset.ReadCSV(bytes.NewReader(content))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return dataset.Dataset{}, nil, false
	}
	reports, err := schema.Analyze(ds)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return dataset.Dataset{}, nil, false
	}

	s.cache.put(key, analysis{ds: ds, reports: reports})
	return ds, reports, true
}

func (s *Server) handleProcessCSV(w http.ResponseWriter, r *http.Request) {
	ds, reports, ok := s.uploadDataset(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, processResponse{
		RowCount:    len(ds.Rows),
		ColumnCount: len(ds.Headers),
		Columns:     ds.Headers,
		PreviewData: recordsOf(ds, reports, previewLimit),
	})
}

func (s *Server) handleDetermineTypes(w http.ResponseWriter, r *http.Request) {
	ds, reports, ok := s.uploadDataset(w, r)
	if !ok {
		return
	}

	entries := make([]any, len(reports))
	for i, rep := range reports {
		entries[i] = typeEntry{
			Detected:  strings.ToLower(rep.DetectedType.String()),
			NullCount: rep.NullCount,
		}
	}
	writeJSON(w, http.StatusOK, typesResponse{
		TypeInfo:    record{keys: ds.Headers, values: entries},
		RowCount:    len(ds.Rows),
		ColumnCount: len(ds.Headers),
		PreviewData: recordsOf(ds, reports, previewLimit),
	})
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	ds, _, ok := s.uploadDataset(w, r)
	if !ok {
		return
	}

	normalized := normalize.MinMax(ds)
	reports, err := schema.Analyze(normalized)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, normalizeResponse{
		NormalizedData: recordsOf(normalized, reports, 0),
		RowCount:       len(normalized.Rows),
	})
}

func (s *Server) handleNulls(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CSVData   json.RawMessage `json:"csvData"`
		Strategy  string          `json:"strategy"`
		Columns   []string        `json:"columns"`
		FillValue string          `json:"fillValue"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.CSVData) == 0 || req.Strategy == "" {
		writeError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	strategy, err := nulls.ParseImputeStrategy(req.Strategy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	ds, err := decodeRecords(req.CSVData)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rows := nulls.Impute(ds.Headers, ds.Rows, nulls.ImputeSpec{
		Strategy:  strategy,
		Columns:   req.Columns,
		FillValue: req.FillValue,
	})
	out := dataset.Dataset{Headers: ds.Headers, Rows: rows}
	reports, err := schema.Analyze(out)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, nullsResponse{
		ProcessedData: recordsOf(out, reports, 0),
		RowCount:      len(rows),
	})
}

func (s *Server) handleCSVToSQL(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CSVData   json.RawMessage `json:"csvData"`
		TableName string          `json:"tableName"`
		BatchSize int             `json:"batchSize"`
		Dialect   string          `json:"dialect"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.CSVData) == 0 || req.TableName == "" {
		writeError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	ds, err := decodeRecords(req.CSVData)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	reports, err := schema.Analyze(ds)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	d := dialect.GetDialect(req.Dialect)
	batch := req.BatchSize
	if batch < 1 {
		batch = 1
	}
	statements := engine.InsertBatches(ds.Rows, reports, d, req.TableName, batch, true)
	if statements == nil {
		statements = []string{}
	}
	writeJSON(w, http.StatusOK, sqlResponse{
		CreateTableStatement: strings.TrimSpace(engine.CreateTable(reports, d, req.TableName)),
		InsertStatements:     statements,
		RowCount:             len(ds.Rows),
		ColumnCount:          len(ds.Headers),
	})
}

func (s *Server) handleSplitter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SQLContent   *string `json:"sqlContent"`
		MaxChunkSize int     `json:"maxChunkSize"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SQLContent == nil {
		writeError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	size := req.MaxChunkSize
	if size < 1 {
		size = defaultChunkLines
	}
	chunks := splitter.Split(*req.SQLContent, splitter.ByLines, size)
	contents := make([]string, len(chunks))
	for i, ch := range chunks {
		contents[i] = ch.Content
	}
	writeJSON(w, http.StatusOK, splitResponse{
		Chunks:                 contents,
		ChunkCount:             len(chunks),
		OriginalStatementCount: len(splitter.Statements(*req.SQLContent)),
	})
}
