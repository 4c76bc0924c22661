package engine

import (
	"context"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

// AIClassifier defines the contract for the AI classification stage. An error
// or unrecognized answer from it is a stage decline, never a pipeline failure.
type AIClassifier interface {
	ClassifyLot(ctx context.Context, lot *model.Lot) (category model.CategoryID, rawAnswer string, err error)
}
