// Package storage provides the SQLite persistence layer: a staging table for
// scraped lots and one destination table per taxonomy category.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the service.Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	reg    *taxonomy.Registry
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance. The registry is
// needed because the destination tables are derived from the taxonomy.
func NewSQLiteStorage(dbPath string, reg *taxonomy.Registry) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: registry", ErrNilParameter)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		reg:    reg,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
