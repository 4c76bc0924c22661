package storage

import (
	"context"
	"fmt"
	"log/slog"
)

// Migrate creates the schema: version bookkeeping, the lot staging table, the
// run summary table, and one destination table per taxonomy category. The
// category tables are derived from the registry so a taxonomy version change
// only needs a re-run, not a code change.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	queries := []string{
		`CREATE TABLE IF NOT EXISTS lots (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			title TEXT NOT NULL,
			normalized_title TEXT,
			description TEXT,
			url TEXT,
			total_bids INTEGER DEFAULT 0,
			total_bidders INTEGER DEFAULT 0,
			classified INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lots_classified ON lots(classified)`,
		`CREATE INDEX IF NOT EXISTS idx_lots_source ON lots(source)`,

		`CREATE TABLE IF NOT EXISTS run_summaries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at DATETIME NOT NULL,
			finished_at DATETIME NOT NULL,
			source TEXT,
			total_lots INTEGER NOT NULL,
			by_stage TEXT,
			catch_all_share REAL
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	for _, cat := range s.reg.Categories() {
		if err := validateCategoryID(cat.ID); err != nil {
			return err
		}
		query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			lot_id TEXT PRIMARY KEY,
			source TEXT,
			title TEXT NOT NULL,
			description TEXT,
			url TEXT,
			stage TEXT NOT NULL,
			reason TEXT,
			raw_answer TEXT,
			classified_at DATETIME NOT NULL
		)`, cat.ID)
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create category table %s: %w", cat.ID, err)
		}
	}

	slog.Debug("migrations complete", "category_tables", len(s.reg.Categories()))
	return nil
}
