package prefilter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

// Reasons recorded by the opportunity rule, used as stats sub-counters.
const (
	ReasonHasBids       = "has_bids"
	ReasonManyBidders   = "many_bidders"
	ReasonManyUnits     = "many_units"
	ReasonSecondAuction = "second_auction"
)

// quantityPatterns extract a unit count from lot text. Matched against the
// normalized (accent-stripped) search form.
var quantityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(?:unidades|unids?|pecas|pcs|itens|produtos)`),
	regexp.MustCompile(`lote\s+(?:com|de)\s+(\d+)`),
	regexp.MustCompile(`quantidade[:\s]+(\d+)`),
}

// secondAuctionPhrases mark lots relisted after a failed first auction.
var secondAuctionPhrases = []string{
	"segunda praca",
	"2a praca",
	"2ª praca",
	"novo pregao",
	"nova tentativa",
}

// opportunityRule routes lots with existing competition or bulk quantity to
// the high-interest category before any other stage sees them.
type opportunityRule struct {
	target model.CategoryID
	cfg    Config
}

func newOpportunityRule(target model.CategoryID, cfg Config) *opportunityRule {
	return &opportunityRule{target: target, cfg: cfg}
}

func (r *opportunityRule) Name() string { return "opportunity" }

func (r *opportunityRule) Evaluate(lot *model.Lot) (Outcome, bool) {
	if lot.TotalBids > 0 {
		return Outcome{
			Category: r.target,
			Reason:   fmt.Sprintf("%s (%d)", ReasonHasBids, lot.TotalBids),
		}, true
	}

	if lot.TotalBidders >= r.cfg.MinBidders {
		return Outcome{
			Category: r.target,
			Reason:   fmt.Sprintf("%s (%d)", ReasonManyBidders, lot.TotalBidders),
		}, true
	}

	text := lot.SearchText()

	for _, pattern := range quantityPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		qty, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if qty >= r.cfg.MinQuantity {
			return Outcome{
				Category: r.target,
				Reason:   fmt.Sprintf("%s (%d)", ReasonManyUnits, qty),
			}, true
		}
	}

	for _, phrase := range secondAuctionPhrases {
		if strings.Contains(text, phrase) {
			return Outcome{Category: r.target, Reason: ReasonSecondAuction}, true
		}
	}

	return Outcome{}, false
}
