package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/service"
)

// SaveLots upserts scraped lots into the staging table. Re-scraping the same
// lot refreshes its auction signals but never resets its classified flag.
func (s *SQLiteStorage) SaveLots(ctx context.Context, lots []model.Lot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateLots(lots); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO lots (id, source, title, normalized_title, description, url, total_bids, total_bidders)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			normalized_title = excluded.normalized_title,
			description = excluded.description,
			url = excluded.url,
			total_bids = excluded.total_bids,
			total_bidders = excluded.total_bidders`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range lots {
		lot := &lots[i]
		if _, err := stmt.ExecContext(ctx,
			lot.ID, lot.Source, lot.Title, lot.NormalizedTitle,
			lot.Description, lot.URL, lot.TotalBids, lot.TotalBidders); err != nil {
			return fmt.Errorf("failed to save lot %s: %w", lot.ID, err)
		}
	}

	return tx.Commit()
}

// GetLotsToClassify returns staged lots that have not been routed yet.
func (s *SQLiteStorage) GetLotsToClassify(ctx context.Context, filter service.LotFilter) ([]model.Lot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, source, title, normalized_title, description, url, total_bids, total_bidders
		FROM lots WHERE classified = 0`
	args := []any{}

	if filter.Source != "" {
		query += " AND source = ?"
		args = append(args, filter.Source)
	}
	query += " ORDER BY created_at, id"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lots []model.Lot
	for rows.Next() {
		var lot model.Lot
		var normalizedTitle, description, url sql.NullString
		if err := rows.Scan(&lot.ID, &lot.Source, &lot.Title, &normalizedTitle,
			&description, &url, &lot.TotalBids, &lot.TotalBidders); err != nil {
			return nil, fmt.Errorf("failed to scan lot: %w", err)
		}
		lot.NormalizedTitle = normalizedTitle.String
		lot.Description = description.String
		lot.URL = url.String
		lots = append(lots, lot)
	}

	return lots, rows.Err()
}

// GetLotByID returns one staged lot.
func (s *SQLiteStorage) GetLotByID(ctx context.Context, id string) (*model.Lot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var lot model.Lot
	var normalizedTitle, description, url sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, title, normalized_title, description, url, total_bids, total_bidders
		FROM lots WHERE id = ?`, id).
		Scan(&lot.ID, &lot.Source, &lot.Title, &normalizedTitle,
			&description, &url, &lot.TotalBids, &lot.TotalBidders)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lot %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lot: %w", err)
	}

	lot.NormalizedTitle = normalizedTitle.String
	lot.Description = description.String
	lot.URL = url.String
	return &lot, nil
}
