package prefilter

import (
	"strings"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

// ReasonFinancial marks lots with no physical category.
const ReasonFinancial = "financial_abstract"

// financialRule routes financial and abstract assets (shares, credit rights,
// trademarks, patents) to the catch-all. These lots have no physical category
// and asking the classification service about them only produces noise.
type financialRule struct {
	reg *taxonomy.Registry
}

func newFinancialRule(reg *taxonomy.Registry) *financialRule {
	return &financialRule{reg: reg}
}

func (r *financialRule) Name() string { return "financial" }

func (r *financialRule) Evaluate(lot *model.Lot) (Outcome, bool) {
	text := lot.SearchText()

	for _, keyword := range r.reg.FinancialKeywords() {
		if strings.Contains(text, keyword) {
			return Outcome{Category: r.reg.CatchAll(), Reason: ReasonFinancial}, true
		}
	}

	return Outcome{}, false
}
