// Package server exposes the conversion pipeline over HTTP, wire-compatible
// with the backend the web UI was built against: multipart CSV uploads in,
// JSON analysis and SQL out, errors always shaped {"error": "..."}.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// cacheLimit bounds the analysis memo cache.
const cacheLimit = 32

// Server is the HTTP front end for the conversion pipeline.
type Server struct {
	router *chi.Mux
	server *http.Server
	cache  *analysisCache
}

// New builds a fully routed server.
func New() *Server {
	s := &Server{
		router: chi.NewRouter(),
		cache:  newAnalysisCache(cacheLimit),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(allowAllOrigins)
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/process-csv", s.handleProcessCSV)
		r.Post("/determine-datatypes", s.handleDetermineTypes)
		r.Post("/normalize-csv", s.handleNormalize)
		r.Post("/handle-nulls", s.handleNulls)
		r.Post("/csv-to-sql", s.handleCSVToSQL)
		r.Post("/sql-splitter", s.handleSplitter)
	})
}

// allowAllOrigins answers preflights and stamps every response, matching the
// open CORS policy of the original backend.
func allowAllOrigins(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start begins serving on addr and blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router exposes the handler for tests and embedding.
func (s *Server) Router() *chi.Mux {
	return s.router
}
