// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

// LotFilter defines filtering options for lot queries.
type LotFilter struct {
	Source string
	Limit  int
	Offset int
}

// Storage defines the contract for the persistence layer. Classified lots are
// routed to one table per taxonomy category; unclassified lots wait in a
// staging table.
type Storage interface {
	// Staging operations.
	SaveLots(ctx context.Context, lots []model.Lot) error
	GetLotsToClassify(ctx context.Context, filter LotFilter) ([]model.Lot, error)
	GetLotByID(ctx context.Context, id string) (*model.Lot, error)

	// Routing operations.
	SaveClassification(ctx context.Context, classification *model.Classification) error
	CountByCategory(ctx context.Context) (map[model.CategoryID]int, error)

	// Run bookkeeping.
	SaveRunSummary(ctx context.Context, summary *RunSummary) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}

// RunSummary records the outcome of one classification run.
type RunSummary struct {
	StartedAt     time.Time
	FinishedAt    time.Time
	Source        string
	TotalLots     int
	ByStage       map[model.Stage]int
	CatchAllShare float64
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
