// Package sqlite implements metasift.Store using pure-Go SQLite.
// Zero CGO required.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	metasift "github.com/nevindra/metasift"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// StoreOption configures a SQLite Store.
type StoreOption func(*Store)

// WithLogger sets a structured logger for the store.
// When set, the store emits debug logs for every operation including
// timing and row counts. If not set, no logs are emitted.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// Store implements metasift.Store backed by a local SQLite file.
// Extracted metadata is stored as a JSON text column.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ metasift.Store = (*Store)(nil)

// nopLogger is a logger that discards all output.
var nopLogger = slog.New(discardHandler{})

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// New creates a Store using a local SQLite file at dbPath.
// It opens a single shared connection pool with SetMaxOpenConns(1) so that
// all goroutines serialize through one connection, eliminating SQLITE_BUSY
// errors caused by concurrent writers opening independent connections.
func New(dbPath string, opts ...StoreOption) *Store {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		// sql.Open only fails when the driver is not registered; with the
		// blank import above that never happens.
		panic(fmt.Sprintf("sqlite: open driver: %v", err))
	}
	db.SetMaxOpenConns(1)
	s := &Store{db: db, logger: nopLogger}
	for _, o := range opts {
		o(s)
	}
	s.logger.Debug("sqlite: store opened", "path", dbPath)
	return s
}

// Init creates all required tables. Safe to call multiple times.
func (s *Store) Init(ctx context.Context) error {
	start := time.Now()
	s.logger.Debug("sqlite: init started")

	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS extractions (
		id TEXT PRIMARY KEY,
		filename TEXT NOT NULL,
		format TEXT NOT NULL,
		metadata TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	_, _ = s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_extractions_created ON extractions(created_at)`)

	s.logger.Info("sqlite: init completed", "duration", time.Since(start))
	return nil
}

// SaveExtraction inserts or replaces an extraction record.
func (s *Store) SaveExtraction(ctx context.Context, ex metasift.Extraction) error {
	start := time.Now()
	s.logger.Debug("sqlite: save extraction", "id", ex.ID, "filename", ex.Filename, "format", ex.Format)

	metaJSON, err := json.Marshal(ex.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO extractions (id, filename, format, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		ex.ID, ex.Filename, ex.Format, string(metaJSON), ex.CreatedAt,
	)
	if err != nil {
		s.logger.Error("sqlite: save extraction failed", "id", ex.ID, "error", err, "duration", time.Since(start))
		return fmt.Errorf("save extraction: %w", err)
	}
	s.logger.Debug("sqlite: save extraction ok", "id", ex.ID, "duration", time.Since(start))
	return nil
}

// GetExtraction returns a single extraction by id.
func (s *Store) GetExtraction(ctx context.Context, id string) (metasift.Extraction, error) {
	start := time.Now()
	s.logger.Debug("sqlite: get extraction", "id", id)

	var ex metasift.Extraction
	var metaJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, filename, format, metadata, created_at FROM extractions WHERE id = ?`,
		id,
	).Scan(&ex.ID, &ex.Filename, &ex.Format, &metaJSON, &ex.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return metasift.Extraction{}, &metasift.ErrNotFound{ID: id}
	}
	if err != nil {
		s.logger.Error("sqlite: get extraction failed", "id", id, "error", err, "duration", time.Since(start))
		return metasift.Extraction{}, fmt.Errorf("get extraction: %w", err)
	}
	if err := json.Unmarshal([]byte(metaJSON), &ex.Metadata); err != nil {
		return metasift.Extraction{}, fmt.Errorf("unmarshal metadata: %w", err)
	}
	s.logger.Debug("sqlite: get extraction ok", "id", id, "duration", time.Since(start))
	return ex, nil
}

// ListExtractions returns the most recent extractions, newest first.
func (s *Store) ListExtractions(ctx context.Context, limit int) ([]metasift.Extraction, error) {
	start := time.Now()
	s.logger.Debug("sqlite: list extractions", "limit", limit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, format, metadata, created_at
		 FROM extractions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		s.logger.Error("sqlite: list extractions failed", "error", err, "duration", time.Since(start))
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	defer rows.Close()

	var out []metasift.Extraction
	for rows.Next() {
		var ex metasift.Extraction
		var metaJSON string
		if err := rows.Scan(&ex.ID, &ex.Filename, &ex.Format, &metaJSON, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan extraction: %w", err)
		}
		if err := json.Unmarshal([]byte(metaJSON), &ex.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
		out = append(out, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	s.logger.Debug("sqlite: list extractions ok", "count", len(out), "duration", time.Since(start))
	return out, nil
}

// DeleteExtraction removes an extraction by id.
func (s *Store) DeleteExtraction(ctx context.Context, id string) error {
	start := time.Now()
	s.logger.Debug("sqlite: delete extraction", "id", id)

	res, err := s.db.ExecContext(ctx, `DELETE FROM extractions WHERE id = ?`, id)
	if err != nil {
		s.logger.Error("sqlite: delete extraction failed", "id", id, "error", err, "duration", time.Since(start))
		return fmt.Errorf("delete extraction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &metasift.ErrNotFound{ID: id}
	}
	s.logger.Debug("sqlite: delete extraction ok", "id", id, "duration", time.Since(start))
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
