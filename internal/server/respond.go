package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are gone; all we can do is record it.
		slog.Error("encode response", "error", err)
	}
}

// writeError sends the uniform error envelope and logs the failure with
// request context.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	loggerFrom(r.Context()).Warn("request rejected",
		"status", status,
		"path", r.URL.Path,
		"reason", message,
	)
	writeJSON(w, status, map[string]string{"error": message})
}
