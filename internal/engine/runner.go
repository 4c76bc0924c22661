package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/service"
)

// RunnerConfig holds configuration for a batch run.
type RunnerConfig struct {
	// Delay is the pause inserted after each AI-stage call. This is the
	// pipeline's backpressure against the external service's rate limits.
	Delay time.Duration
	// Source restricts the run to lots scraped from one marketplace.
	Source string
	// Limit caps how many lots one run processes. Zero means no cap.
	Limit int
}

// Runner drains the staging table through the engine and routes each result
// to its category table. Processing is single-item and synchronous; aborting
// a batch is just ctx cancellation between lots.
type Runner struct {
	engine  *Engine
	storage service.Storage
	logger  *slog.Logger
	cfg     RunnerConfig
}

// NewRunner creates a batch runner.
func NewRunner(eng *Engine, storage service.Storage, cfg RunnerConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Delay == 0 {
		cfg.Delay = 2 * time.Second
	}
	return &Runner{
		engine:  eng,
		storage: storage,
		logger:  logger,
		cfg:     cfg,
	}
}

// Run classifies every pending lot and persists the results. onProgress, when
// non-nil, is invoked after each lot with (processed, total).
func (r *Runner) Run(ctx context.Context, onProgress func(processed, total int)) (*service.RunSummary, error) {
	startedAt := time.Now()

	lots, err := r.storage.GetLotsToClassify(ctx, service.LotFilter{
		Source: r.cfg.Source,
		Limit:  r.cfg.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load lots: %w", err)
	}

	if len(lots) == 0 {
		r.logger.Info("no lots to classify")
		return r.summary(startedAt, 0), nil
	}

	r.logger.Info("starting classification run",
		"lots", len(lots),
		"source", r.cfg.Source)

	processed := 0
	for i := range lots {
		select {
		case <-ctx.Done():
			r.logger.Info("run canceled", "processed", processed)
			return r.summary(startedAt, processed), ctx.Err()
		default:
		}

		lot := &lots[i]
		classification, err := r.engine.Classify(ctx, lot)
		if err != nil && !errors.Is(err, common.ErrEmptyTitle) {
			return r.summary(startedAt, processed), err
		}
		if err != nil {
			r.logger.Warn("skipping lot with no usable title", "lot_id", lot.ID)
		}

		if saveErr := r.storage.SaveClassification(ctx, classification); saveErr != nil {
			r.logger.Error("failed to save classification",
				"lot_id", lot.ID,
				"category", classification.Category,
				"error", saveErr)
		}

		processed++
		if onProgress != nil {
			onProgress(processed, len(lots))
		}

		// Pause only after lots that actually hit the external service.
		if classification.Stage == model.StageAI && i < len(lots)-1 {
			select {
			case <-ctx.Done():
				return r.summary(startedAt, processed), ctx.Err()
			case <-time.After(r.cfg.Delay):
			}
		}
	}

	summary := r.summary(startedAt, processed)
	if err := r.storage.SaveRunSummary(ctx, summary); err != nil {
		r.logger.Warn("failed to persist run summary", "error", err)
	}

	r.logger.Info("classification run complete",
		"processed", processed,
		"catch_all_share", fmt.Sprintf("%.1f%%", summary.CatchAllShare*100))

	return summary, nil
}

func (r *Runner) summary(startedAt time.Time, processed int) *service.RunSummary {
	snap := r.engine.Stats().Snapshot()
	return &service.RunSummary{
		StartedAt:     startedAt,
		FinishedAt:    time.Now(),
		Source:        r.cfg.Source,
		TotalLots:     processed,
		ByStage:       snap.ByStage,
		CatchAllShare: r.engine.Stats().CatchAllShare(r.engine.reg.CatchAll()),
	}
}
