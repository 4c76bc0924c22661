package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/service"
)

// SaveClassification routes one classified lot into its category table and
// marks the staging row done, atomically.
func (s *SQLiteStorage) SaveClassification(ctx context.Context, classification *model.Classification) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if classification == nil {
		return fmt.Errorf("%w: classification", ErrNilParameter)
	}
	if !s.reg.IsMember(classification.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategoryID, classification.Category)
	}
	if err := validateCategoryID(classification.Category); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	lot := &classification.Lot
	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO %s (lot_id, source, title, description, url, stage, reason, raw_answer, classified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, classification.Category)
	if _, err := tx.ExecContext(ctx, query,
		lot.ID, lot.Source, lot.Title, lot.Description, lot.URL,
		string(classification.Stage), classification.Reason,
		classification.RawAnswer, classification.ClassifiedAt); err != nil {
		return fmt.Errorf("failed to route lot %s to %s: %w", lot.ID, classification.Category, err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE lots SET classified = 1 WHERE id = ?`, lot.ID); err != nil {
		return fmt.Errorf("failed to mark lot %s classified: %w", lot.ID, err)
	}

	return tx.Commit()
}

// CountByCategory returns how many lots each category table holds.
func (s *SQLiteStorage) CountByCategory(ctx context.Context) (map[model.CategoryID]int, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	counts := make(map[model.CategoryID]int, len(s.reg.Categories()))
	for _, cat := range s.reg.Categories() {
		if err := validateCategoryID(cat.ID); err != nil {
			return nil, err
		}
		var count int
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, cat.ID)
		if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", cat.ID, err)
		}
		counts[cat.ID] = count
	}

	return counts, nil
}

// SaveRunSummary persists the bookkeeping record of one classification run.
func (s *SQLiteStorage) SaveRunSummary(ctx context.Context, summary *service.RunSummary) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if summary == nil {
		return fmt.Errorf("%w: summary", ErrNilParameter)
	}

	byStage, err := json.Marshal(summary.ByStage)
	if err != nil {
		return fmt.Errorf("failed to marshal stage counts: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO run_summaries (started_at, finished_at, source, total_lots, by_stage, catch_all_share)
		VALUES (?, ?, ?, ?, ?, ?)`,
		summary.StartedAt, summary.FinishedAt, summary.Source,
		summary.TotalLots, string(byStage), summary.CatchAllShare); err != nil {
		return fmt.Errorf("failed to save run summary: %w", err)
	}

	return nil
}
