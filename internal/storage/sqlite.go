// Package storage reads aggregate summaries from a money-manager SQLite
// database. The schema (INOUTCOME, ZCATEGORY, ASSETS) is produced and
// maintained by the external money-manager application; this package never
// writes to it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore reads summaries from a money-manager database file.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens the database at dbPath read-only.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: dbPath must not be empty", ErrInvalidParameter)
	}

	// The file is created by the money-manager app; opening a missing path
	// read-only would otherwise fail with an opaque driver error later.
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("database file not found: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Stats returns the transaction count and the covered date range, used for
// the report header.
func (s *SQLiteStore) Stats(ctx context.Context) (count int, first, last string, err error) {
	if err = validateContext(ctx); err != nil {
		return 0, "", "", err
	}

	var firstDate, lastDate sql.NullString
	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), MIN(date(WDATE)), MAX(date(WDATE)) FROM INOUTCOME
	`).Scan(&count, &firstDate, &lastDate)
	if err != nil {
		return 0, "", "", fmt.Errorf("failed to query store stats: %w", err)
	}

	return count, firstDate.String, lastDate.String, nil
}

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("%w: context must not be nil", ErrInvalidParameter)
	}
	return nil
}
