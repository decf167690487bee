// Package postgres implements metasift.Store using PostgreSQL.
//
// Store accepts an externally-owned *pgxpool.Pool via constructor
// injection. The caller creates and closes the pool.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	metasift "github.com/nevindra/metasift"
)

// Store implements metasift.Store backed by PostgreSQL.
// Extracted metadata is stored in a JSONB column.
type Store struct {
	pool *pgxpool.Pool
}

var _ metasift.Store = (*Store)(nil)

// New creates a Store using an existing pgxpool.Pool.
// The caller owns the pool and is responsible for closing it.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Init creates the extractions table and indexes.
// Safe to call multiple times (all statements are idempotent).
func (s *Store) Init(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS extractions (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			format TEXT NOT NULL,
			metadata JSONB NOT NULL,
			created_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_extractions_created ON extractions(created_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}
	return nil
}

// SaveExtraction inserts or replaces an extraction record.
func (s *Store) SaveExtraction(ctx context.Context, ex metasift.Extraction) error {
	metaJSON, err := json.Marshal(ex.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO extractions (id, filename, format, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET
			filename = EXCLUDED.filename,
			format = EXCLUDED.format,
			metadata = EXCLUDED.metadata,
			created_at = EXCLUDED.created_at`,
		ex.ID, ex.Filename, ex.Format, metaJSON, ex.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save extraction: %w", err)
	}
	return nil
}

// GetExtraction returns a single extraction by id.
func (s *Store) GetExtraction(ctx context.Context, id string) (metasift.Extraction, error) {
	var ex metasift.Extraction
	var metaJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, filename, format, metadata, created_at FROM extractions WHERE id = $1`,
		id,
	).Scan(&ex.ID, &ex.Filename, &ex.Format, &metaJSON, &ex.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return metasift.Extraction{}, &metasift.ErrNotFound{ID: id}
	}
	if err != nil {
		return metasift.Extraction{}, fmt.Errorf("get extraction: %w", err)
	}
	if err := json.Unmarshal(metaJSON, &ex.Metadata); err != nil {
		return metasift.Extraction{}, fmt.Errorf("unmarshal metadata: %w", err)
	}
	return ex, nil
}

// ListExtractions returns the most recent extractions, newest first.
func (s *Store) ListExtractions(ctx context.Context, limit int) ([]metasift.Extraction, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, filename, format, metadata, created_at
		 FROM extractions
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	defer rows.Close()

	var out []metasift.Extraction
	for rows.Next() {
		var ex metasift.Extraction
		var metaJSON []byte
		if err := rows.Scan(&ex.ID, &ex.Filename, &ex.Format, &metaJSON, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan extraction: %w", err)
		}
		if err := json.Unmarshal(metaJSON, &ex.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
		out = append(out, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	return out, nil
}

// DeleteExtraction removes an extraction by id.
func (s *Store) DeleteExtraction(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM extractions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete extraction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &metasift.ErrNotFound{ID: id}
	}
	return nil
}

// Close is a no-op; the pool is owned by the caller.
func (s *Store) Close() error {
	return nil
}
