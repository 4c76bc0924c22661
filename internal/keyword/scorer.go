// Package keyword implements the lexicon-based fast path of the pipeline.
// It exists purely to reduce call volume to the classification service and
// trades recall for precision: when in doubt, it declines.
package keyword

import (
	"strings"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

// Config holds the scorer's decision thresholds.
type Config struct {
	// MinMatches is the distinct-term count a category must reach before the
	// scorer accepts it.
	MinMatches int
}

// DefaultConfig returns the conservative production thresholds.
func DefaultConfig() Config {
	return Config{MinMatches: 2}
}

// Scorer proposes a category by lexicon match count.
type Scorer struct {
	reg *taxonomy.Registry
	cfg Config
}

// New creates a scorer over the given taxonomy.
func New(reg *taxonomy.Registry, cfg Config) *Scorer {
	if cfg.MinMatches <= 0 {
		cfg.MinMatches = DefaultConfig().MinMatches
	}
	return &Scorer{reg: reg, cfg: cfg}
}

// Score scans the lot text against every non-restricted category's lexicon
// and returns the winning category. It declines (ok == false) when no
// category reaches its threshold or when the maximum is tied: a silent
// tie-break would silently bias the taxonomy, so ties defer to the AI stage.
func (s *Scorer) Score(lot *model.Lot) (model.CategoryID, bool) {
	text := lot.SearchText()

	var (
		best       model.CategoryID
		bestCount  int
		tiedAtBest int
	)

	for _, cat := range s.reg.Categories() {
		if cat.Restricted {
			continue
		}

		count := s.countMatches(text, s.reg.Lexicon(cat.ID))
		switch {
		case count > bestCount:
			best = cat.ID
			bestCount = count
			tiedAtBest = 1
		case count == bestCount && count > 0:
			tiedAtBest++
		}
	}

	if bestCount == 0 || tiedAtBest > 1 {
		return "", false
	}

	if bestCount >= s.cfg.MinMatches {
		return best, true
	}

	// Carve-out: one hit on a brand-level lexicon is enough for the short
	// list of high-precision categories.
	if bestCount == 1 && s.reg.HighPrecision(best) {
		return best, true
	}

	return "", false
}

// countMatches counts how many distinct lexicon terms occur in the text.
// Substring match, case already folded by Lot.SearchText, no stemming.
func (s *Scorer) countMatches(text string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}
