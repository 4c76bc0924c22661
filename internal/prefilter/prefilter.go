// Package prefilter implements the deterministic rules evaluated before any
// scoring or AI call. Each rule is a named predicate over a lot; the filter
// runs them in a fixed priority order and the first match wins.
package prefilter

import (
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
	"github.com/meguinhazeromiseria/scraper-mega/internal/taxonomy"
)

// Outcome is a rule's decision: a category plus the sub-reason that fired.
type Outcome struct {
	Category model.CategoryID
	Reason   string
}

// Rule resolves unambiguous lots without any I/O. Rules are pure functions
// over the lot text and auction signals; they cannot fail.
type Rule interface {
	Name() string
	Evaluate(lot *model.Lot) (Outcome, bool)
}

// Config holds the tunable thresholds of the rule set.
type Config struct {
	// MinBidders is the bidder count at which a lot counts as contested.
	MinBidders int
	// MinQuantity is the unit count at which a lot counts as a bulk lot.
	MinQuantity int
}

// DefaultConfig returns the thresholds used by the production pipeline.
func DefaultConfig() Config {
	return Config{
		MinBidders:  3,
		MinQuantity: 10,
	}
}

// PreFilter evaluates the deterministic rules in priority order.
type PreFilter struct {
	rules []Rule
}

// New builds the standard rule chain: opportunity signals first, then the
// financial/abstract detector, then the explicit mixed-lot detector.
func New(reg *taxonomy.Registry, cfg Config) *PreFilter {
	rules := make([]Rule, 0, 3)

	// The opportunity rule only participates when the taxonomy defines a
	// high-interest category; otherwise those signals fall through.
	if reg.Opportunity() != "" {
		rules = append(rules, newOpportunityRule(reg.Opportunity(), cfg))
	}
	rules = append(rules,
		newFinancialRule(reg),
		newMixedLotRule(reg),
	)

	return &PreFilter{rules: rules}
}

// Evaluate runs the rules in order and returns the first outcome, or false
// when every rule declines and the lot proceeds to the next stage.
func (p *PreFilter) Evaluate(lot *model.Lot) (Outcome, bool) {
	for _, rule := range p.rules {
		if outcome, ok := rule.Evaluate(lot); ok {
			return outcome, true
		}
	}
	return Outcome{}, false
}

// Rules exposes the chain for introspection and tests.
func (p *PreFilter) Rules() []Rule {
	return p.rules
}
