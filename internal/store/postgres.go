package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// PostgresStore is a DocumentStore backed by a PostgreSQL connection pool.
// Documents are stored whole as JSONB; the engine never queries inside them.
//
// Expected schema:
//
//	CREATE TABLE resumes (
//	    id         TEXT PRIMARY KEY,
//	    document   JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Load fetches a resume document by id.
func (s *PostgresStore) Load(ctx context.Context, id string) (*types.Resume, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM resumes WHERE id = $1`,
		id,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to load resume %s: %w", id, err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume %s: %w", id, err)
	}
	return &resume, nil
}

// Save upserts a resume document under its id, assigning one if missing.
func (s *PostgresStore) Save(ctx context.Context, resume *types.Resume) error {
	id := resume.ID()
	data, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume %s: %w", id, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resumes (id, document)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET document = $2, updated_at = NOW()`,
		id, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume %s: %w", id, err)
	}
	return nil
}

// List returns all stored document ids.
func (s *PostgresStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT id FROM resumes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan resume id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
