// Package engine implements the classification orchestrator: it sequences
// the deterministic pre-filter, the keyword scorer, the AI adapter, and the
// fallback resolver over one lot at a time, first success wins.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
	"github.com/meguinhazeromiseria/scraper-mega/internal/keyword"
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/prefilter"
	"github.com/meguinhazeromiseria/scraper-mega/internal/stats"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

// ReasonEmptyInput is recorded when a lot arrives without a usable title.
const ReasonEmptyInput = "empty_input"

// Engine classifies lots. Construct one per run; its stats collector lives
// and dies with it.
type Engine struct {
	reg       *taxonomy.Registry
	preFilter *prefilter.PreFilter
	scorer    *keyword.Scorer
	ai        AIClassifier
	collector *stats.Collector
	logger    *slog.Logger
}

// New creates an engine over the given taxonomy and stages. The ai stage may
// be nil, in which case undecided lots go straight to the fallback; that mode
// exists for offline dry runs, not production.
func New(reg *taxonomy.Registry, preFilter *prefilter.PreFilter, scorer *keyword.Scorer, ai AIClassifier, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		reg:       reg,
		preFilter: preFilter,
		scorer:    scorer,
		ai:        ai,
		collector: stats.NewCollector(),
		logger:    logger,
	}
}

// Stats returns the engine's collector.
func (e *Engine) Stats() *stats.Collector {
	return e.collector
}

// Classify runs one lot through the stage sequence and always produces a
// terminal classification whose category is a taxonomy member.
//
// The only caller-visible failure is an empty title: the lot is recorded as a
// failed input and the returned classification is a deterministic catch-all
// placeholder, so malformed input never vanishes from the statistics.
func (e *Engine) Classify(ctx context.Context, lot *model.Lot) (*model.Classification, error) {
	if strings.TrimSpace(lot.Title) == "" && strings.TrimSpace(lot.NormalizedTitle) == "" {
		e.collector.RecordFailure()
		classification := e.terminal(lot, e.reg.CatchAll(), model.StageFallback, ReasonEmptyInput, "")
		return classification, fmt.Errorf("lot %s: %w", lot.ID, common.ErrEmptyTitle)
	}

	// Stage 1: deterministic pre-filter.
	if outcome, ok := e.preFilter.Evaluate(lot); ok {
		e.logger.Debug("pre-filter decided",
			"lot_id", lot.ID,
			"category", outcome.Category,
			"reason", outcome.Reason)
		return e.terminal(lot, outcome.Category, model.StagePreFilter, outcome.Reason, ""), nil
	}

	// Stage 2: keyword scorer fast path.
	if category, ok := e.scorer.Score(lot); ok {
		e.logger.Debug("keyword scorer decided",
			"lot_id", lot.ID,
			"category", category)
		return e.terminal(lot, category, model.StageKeyword, "", ""), nil
	}

	// Stage 3: AI adapter. Errors and invalid answers degrade to fallback.
	if e.ai != nil {
		category, rawAnswer, err := e.ai.ClassifyLot(ctx, lot)
		if err == nil {
			return e.terminal(lot, category, model.StageAI, "", rawAnswer), nil
		}
		e.logger.Warn("AI stage declined",
			"lot_id", lot.ID,
			"error", err)
	}

	// Stage 4: fallback. Cannot fail; the pipeline's total function guarantee.
	return e.terminal(lot, e.reg.CatchAll(), model.StageFallback, "", ""), nil
}

func (e *Engine) terminal(lot *model.Lot, category model.CategoryID, stage model.Stage, reason, rawAnswer string) *model.Classification {
	classification := &model.Classification{
		ClassifiedAt: time.Now(),
		Lot:          *lot,
		Category:     category,
		Stage:        stage,
		Reason:       reason,
		RawAnswer:    rawAnswer,
	}
	e.collector.Record(classification)
	return classification
}
