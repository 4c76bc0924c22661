package prefilter

import (
	"regexp"
	"strings"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

// ReasonMixedLot marks lots that explicitly span multiple categories.
const ReasonMixedLot = "mixed_lot"

// mixedPhrases are explicit "assorted items" markers in lot titles.
var mixedPhrases = []string{
	"lote misto",
	"lote variado",
	"itens diversos",
	"diversos itens",
	"mercadorias variadas",
	"produtos variados",
	"sortidos",
	"mix de",
}

// enumerationPattern matches titles that list three or more comma-separated
// items, e.g. "tvs, geladeiras, micro-ondas e telefone".
var enumerationPattern = regexp.MustCompile(`\w+\s*,\s*\w+.*,\s*\w+`)

// mixedLotRule routes explicitly mixed lots to the catch-all. Both conditions
// must hold: the title advertises a mix, AND the coarse indicator table finds
// hits in at least two different categories. A lot listing many items of the
// same category is NOT mixed; over-filling the catch-all is worse than an
// extra AI call.
type mixedLotRule struct {
	reg *taxonomy.Registry
}

func newMixedLotRule(reg *taxonomy.Registry) *mixedLotRule {
	return &mixedLotRule{reg: reg}
}

func (r *mixedLotRule) Name() string { return "mixed_lot" }

func (r *mixedLotRule) Evaluate(lot *model.Lot) (Outcome, bool) {
	text := lot.SearchText()

	if !r.looksMixed(text) {
		return Outcome{}, false
	}

	found := 0
	for _, indicators := range r.reg.MixedLotIndicators() {
		for _, indicator := range indicators {
			if strings.Contains(text, indicator) {
				found++
				break
			}
		}
		if found >= 2 {
			return Outcome{Category: r.reg.CatchAll(), Reason: ReasonMixedLot}, true
		}
	}

	return Outcome{}, false
}

func (r *mixedLotRule) looksMixed(text string) bool {
	for _, phrase := range mixedPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return enumerationPattern.MatchString(text)
}
