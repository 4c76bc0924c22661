// Package taxonomy holds the closed set of auction categories, their keyword
// lexicons, and the auxiliary tables the pipeline matches against. The
// registry is loaded once at startup, validated, and never mutated.
package taxonomy

import (
	"fmt"
	"strings"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

// Registry is an immutable view of one taxonomy version.
type Registry struct {
	byID           map[model.CategoryID]model.Category
	lexicons       map[model.CategoryID][]string
	aliases        map[string]model.CategoryID
	mixedIndicator map[model.CategoryID][]string
	highPrecision  map[model.CategoryID]bool
	ordered        []model.Category
	financial      []string
	catchAll       model.CategoryID
	opportunity    model.CategoryID
}

// Spec is the raw material a Registry is built from, either the built-in
// tables or a version loaded from a taxonomy file.
type Spec struct {
	Categories     []model.Category
	Lexicons       map[model.CategoryID][]string
	Aliases        map[string]model.CategoryID
	MixedIndicator map[model.CategoryID][]string
	HighPrecision  []model.CategoryID
	Financial      []string
	CatchAll       model.CategoryID
	Opportunity    model.CategoryID
}

// New validates a Spec and builds a Registry. A malformed taxonomy is a fatal
// configuration error: the process must not start with it.
func New(spec Spec) (*Registry, error) {
	if len(spec.Categories) == 0 {
		return nil, common.NewConfigError("taxonomy has no categories", nil)
	}
	if spec.CatchAll == "" {
		return nil, common.NewConfigError("taxonomy has no catch-all category", nil)
	}

	r := &Registry{
		byID:           make(map[model.CategoryID]model.Category, len(spec.Categories)),
		lexicons:       make(map[model.CategoryID][]string, len(spec.Lexicons)),
		aliases:        make(map[string]model.CategoryID, len(spec.Aliases)),
		mixedIndicator: make(map[model.CategoryID][]string, len(spec.MixedIndicator)),
		highPrecision:  make(map[model.CategoryID]bool, len(spec.HighPrecision)),
		ordered:        make([]model.Category, 0, len(spec.Categories)),
		financial:      append([]string(nil), spec.Financial...),
		catchAll:       spec.CatchAll,
		opportunity:    spec.Opportunity,
	}

	for _, cat := range spec.Categories {
		if cat.ID == "" {
			return nil, common.NewConfigError("category with empty id", nil)
		}
		if _, dup := r.byID[cat.ID]; dup {
			return nil, common.NewConfigError(fmt.Sprintf("duplicate category id %q", cat.ID), nil)
		}
		r.byID[cat.ID] = cat
		r.ordered = append(r.ordered, cat)
	}

	catchAll, ok := r.byID[spec.CatchAll]
	if !ok {
		return nil, common.NewConfigError(fmt.Sprintf("catch-all %q not in taxonomy", spec.CatchAll), nil)
	}
	if !catchAll.Restricted {
		return nil, common.NewConfigError(fmt.Sprintf("catch-all %q must be restricted", spec.CatchAll), nil)
	}
	if spec.Opportunity != "" {
		if _, ok := r.byID[spec.Opportunity]; !ok {
			return nil, common.NewConfigError(fmt.Sprintf("opportunity category %q not in taxonomy", spec.Opportunity), nil)
		}
	}

	for id, terms := range spec.Lexicons {
		if _, ok := r.byID[id]; !ok {
			return nil, common.NewConfigError(fmt.Sprintf("lexicon for unknown category %q", id), nil)
		}
		r.lexicons[id] = append([]string(nil), terms...)
	}

	// A category the scorer is allowed to pick needs terms to score with.
	for _, cat := range r.ordered {
		if !cat.Restricted && len(r.lexicons[cat.ID]) == 0 {
			return nil, common.NewConfigError(fmt.Sprintf("category %q has an empty lexicon", cat.ID), nil)
		}
	}

	for alias, id := range spec.Aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias == "" {
			return nil, common.NewConfigError("empty alias", nil)
		}
		if _, ok := r.byID[id]; !ok {
			return nil, common.NewConfigError(fmt.Sprintf("alias %q maps to unknown category %q", alias, id), nil)
		}
		if canonical, isID := r.byID[model.CategoryID(alias)]; isID && canonical.ID != id {
			return nil, common.NewConfigError(fmt.Sprintf("alias %q shadows canonical category id", alias), nil)
		}
		r.aliases[alias] = id
	}

	for id, indicators := range spec.MixedIndicator {
		r.mixedIndicator[id] = append([]string(nil), indicators...)
	}

	for _, id := range spec.HighPrecision {
		if _, ok := r.byID[id]; !ok {
			return nil, common.NewConfigError(fmt.Sprintf("high-precision list references unknown category %q", id), nil)
		}
		r.highPrecision[id] = true
	}

	return r, nil
}

// Default builds the registry from the built-in tables.
func Default() (*Registry, error) {
	return New(builtinSpec())
}

// Categories returns every category in declaration order.
func (r *Registry) Categories() []model.Category {
	return r.ordered
}

// Category looks up one category by id.
func (r *Registry) Category(id model.CategoryID) (model.Category, bool) {
	cat, ok := r.byID[id]
	return cat, ok
}

// IsMember reports whether id names a taxonomy category.
func (r *Registry) IsMember(id model.CategoryID) bool {
	_, ok := r.byID[id]
	return ok
}

// Lexicon returns the scoring terms for a category, in declaration order.
func (r *Registry) Lexicon(id model.CategoryID) []string {
	return r.lexicons[id]
}

// CatchAll returns the designated catch-all category id.
func (r *Registry) CatchAll() model.CategoryID {
	return r.catchAll
}

// Opportunity returns the high-interest category id, or "" when the taxonomy
// defines none and opportunity signals should fall through the pre-filter.
func (r *Registry) Opportunity() model.CategoryID {
	return r.opportunity
}

// FinancialKeywords returns the financial/abstract-asset phrase lexicon.
func (r *Registry) FinancialKeywords() []string {
	return r.financial
}

// MixedLotIndicators returns the coarse cross-category indicator table used
// only by the mixed-lot rule. It is deliberately much smaller than the full
// lexicon.
func (r *Registry) MixedLotIndicators() map[model.CategoryID][]string {
	return r.mixedIndicator
}

// HighPrecision reports whether a single strong lexicon match is enough for
// the keyword scorer to accept this category.
func (r *Registry) HighPrecision(id model.CategoryID) bool {
	return r.highPrecision[id]
}

// Canonicalize maps a normalized free-text answer to a taxonomy id. It checks
// exact membership first, then the alias table. Restricted categories are
// never accepted: they are reachable only through rules or the fallback.
func (r *Registry) Canonicalize(answer string) (model.CategoryID, bool) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return "", false
	}

	id := model.CategoryID(answer)
	if cat, ok := r.byID[id]; ok {
		if cat.Restricted {
			return "", false
		}
		return id, true
	}

	if id, ok := r.aliases[answer]; ok {
		if cat := r.byID[id]; cat.Restricted {
			return "", false
		}
		return id, true
	}

	return "", false
}
