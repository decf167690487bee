// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	metasift "github.com/nevindra/metasift"
	"github.com/nevindra/metasift/ingest"
)

const defaultListLimit = 50

// Server handles uploads, runs the pipeline, and serves extraction history.
type Server struct {
	processor      ingest.Processor
	store          metasift.Store
	logger         *slog.Logger
	maxUploadBytes int64
}

// Option configures a Server.
type Option func(*Server)

// WithStore enables persistence of extraction records.
func WithStore(s metasift.Store) Option {
	return func(srv *Server) { srv.store = s }
}

// WithLogger sets a structured logger for request handling.
// If not set, no logs are emitted.
func WithLogger(l *slog.Logger) Option {
	return func(srv *Server) { srv.logger = l }
}

// WithMaxUploadBytes caps the accepted request body size.
func WithMaxUploadBytes(n int64) Option {
	return func(srv *Server) {
		if n > 0 {
			srv.maxUploadBytes = n
		}
	}
}

// New creates a Server around a processor.
func New(processor ingest.Processor, opts ...Option) *Server {
	srv := &Server{
		processor:      processor,
		logger:         slog.New(nopHandler{}),
		maxUploadBytes: 200 << 20,
	}
	for _, o := range opts {
		o(srv)
	}
	return srv
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/extract", s.handleExtract)
	mux.HandleFunc("GET /api/extractions", s.handleList)
	mux.HandleFunc("GET /api/extractions/{id}", s.handleGet)
	mux.HandleFunc("DELETE /api/extractions/{id}", s.handleDelete)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http: request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.maxUploadBytes {
		s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", s.maxUploadBytes))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", maxErr.Limit))
			return
		}
		s.writeError(w, http.StatusBadRequest, "missing multipart field: file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "read upload: "+err.Error())
		return
	}

	ex, err := s.processor.Process(r.Context(), header.Filename, content)
	if err != nil {
		s.writeProcessError(w, err)
		return
	}

	if s.store != nil {
		if err := s.store.SaveExtraction(r.Context(), ex); err != nil {
			s.logger.Error("http: save extraction failed", "id", ex.ID, "error", err)
			s.writeError(w, http.StatusInternalServerError, "persist extraction")
			return
		}
	}

	s.writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, "history not enabled")
		return
	}

	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	list, err := s.store.ListExtractions(r.Context(), limit)
	if err != nil {
		s.logger.Error("http: list extractions failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "list extractions")
		return
	}
	if list == nil {
		list = []metasift.Extraction{}
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, "history not enabled")
		return
	}

	ex, err := s.store.GetExtraction(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, "history not enabled")
		return
	}

	if err := s.store.DeleteExtraction(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeProcessError maps pipeline failures to client-facing statuses.
func (s *Server) writeProcessError(w http.ResponseWriter, err error) {
	var unsupported *metasift.ErrUnsupportedFormat
	if errors.As(err, &unsupported) {
		s.writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}
	var insufficient *metasift.ErrInsufficientText
	if errors.As(err, &insufficient) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeError(w, http.StatusBadRequest, err.Error())
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	var notFound *metasift.ErrNotFound
	if errors.As(err, &notFound) {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.logger.Error("http: store operation failed", "error", err)
	s.writeError(w, http.StatusInternalServerError, "store operation")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("http: encode response failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h nopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h nopHandler) WithGroup(string) slog.Handler           { return h }
