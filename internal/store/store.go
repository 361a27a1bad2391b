package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store wraps the single connection used by the whole run. All statements
// execute in autocommit mode: a swallowed failure must not poison an open
// transaction (PostgreSQL aborts a transaction after any error in it).
type Store struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

// Open connects via the pgx stdlib driver and verifies the connection.
func Open(ctx context.Context, url string) (*Store, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One logical connection, no parallel writers.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return New(db), nil
}

// New wraps an existing handle. Used by tests to inject a mock driver.
func New(db *sql.DB) *Store {
	return &Store{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Builder returns the shared squirrel builder ($n placeholders).
func (s *Store) Builder() squirrel.StatementBuilderType {
	return s.qb
}

func (s *Store) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *Store) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.db.QueryRowContext(ctx, query, args...)
}

func (s *Store) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, query, args...)
}
