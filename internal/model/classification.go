package model

import "time"

// Stage identifies which pipeline stage produced a classification.
type Stage string

// Pipeline stages, in evaluation order.
const (
	StagePreFilter Stage = "prefilter"
	StageKeyword   Stage = "keyword"
	StageAI        Stage = "ai"
	StageFallback  Stage = "fallback"
)

// Classification is the terminal outcome for one lot. Category is always a
// member of the taxonomy; the pipeline has no empty-result state.
type Classification struct {
	ClassifiedAt time.Time
	Lot          Lot
	Category     CategoryID
	Stage        Stage
	// Reason names the pre-filter sub-rule that fired (e.g. "has_bids",
	// "mixed_lot"), or is empty for other stages.
	Reason string
	// RawAnswer preserves the classification service's verbatim reply for
	// audit when Stage == StageAI.
	RawAnswer string
}
