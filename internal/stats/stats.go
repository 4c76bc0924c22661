// Package stats accumulates classification counters for one pipeline run.
// The numbers are observability only: nothing in the pipeline routes
// differently because of them. Their job is to surface taxonomy drift,
// above all a catch-all share creeping upward.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

// DefaultCatchAllWarnShare is the catch-all fraction above which the summary
// flags probable silent quality loss.
const DefaultCatchAllWarnShare = 0.10

// Collector owns the running counters for one orchestrator instance. It is
// reset only by constructing a new instance. A single caller mutates it from
// the call path; there are no concurrent writers.
type Collector struct {
	byStage    map[model.Stage]int
	byCategory map[model.CategoryID]int
	byReason   map[string]int
	total      int
	failed     int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		byStage:    make(map[model.Stage]int),
		byCategory: make(map[model.CategoryID]int),
		byReason:   make(map[string]int),
	}
}

// Record counts one terminal classification. Every processed lot passes
// through here exactly once, so total == sum(stages) == sum(categories).
func (c *Collector) Record(classification *model.Classification) {
	c.total++
	c.byStage[classification.Stage]++
	c.byCategory[classification.Category]++
	if classification.Reason != "" {
		c.byReason[classification.Reason]++
	}
}

// RecordFailure counts a lot rejected for malformed input. The engine still
// records the placeholder outcome through Record; this only tracks how many
// of those were failures, so bad input never silently vanishes.
func (c *Collector) RecordFailure() {
	c.failed++
}

// Snapshot is a read-only copy of the counters.
type Snapshot struct {
	ByStage    map[model.Stage]int
	ByCategory map[model.CategoryID]int
	ByReason   map[string]int
	Total      int
	Failed     int
}

// Snapshot returns a copy of the current counters.
func (c *Collector) Snapshot() Snapshot {
	snap := Snapshot{
		Total:      c.total,
		Failed:     c.failed,
		ByStage:    make(map[model.Stage]int, len(c.byStage)),
		ByCategory: make(map[model.CategoryID]int, len(c.byCategory)),
		ByReason:   make(map[string]int, len(c.byReason)),
	}
	for k, v := range c.byStage {
		snap.ByStage[k] = v
	}
	for k, v := range c.byCategory {
		snap.ByCategory[k] = v
	}
	for k, v := range c.byReason {
		snap.ByReason[k] = v
	}
	return snap
}

// CatchAllShare returns the fraction of lots routed to the given category.
func (c *Collector) CatchAllShare(catchAll model.CategoryID) float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.byCategory[catchAll]) / float64(c.total)
}

// Summary renders a human-readable report: totals, percentage by stage,
// percentage by category, and a drift warning when the catch-all share
// exceeds warnShare (pass 0 for the default threshold).
func (c *Collector) Summary(catchAll model.CategoryID, warnShare float64) string {
	if warnShare <= 0 {
		warnShare = DefaultCatchAllWarnShare
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Classification summary\n")
	fmt.Fprintf(&b, "  total processed: %d\n", c.total)
	if c.failed > 0 {
		fmt.Fprintf(&b, "  failed inputs:   %d\n", c.failed)
	}

	if c.total == 0 {
		return b.String()
	}

	b.WriteString("  by stage:\n")
	for _, stage := range []model.Stage{model.StagePreFilter, model.StageKeyword, model.StageAI, model.StageFallback} {
		count := c.byStage[stage]
		if count == 0 {
			continue
		}
		fmt.Fprintf(&b, "    %-10s %6d (%5.1f%%)\n", stage, count, pct(count, c.total))
	}

	b.WriteString("  by category:\n")
	for _, entry := range sortedCounts(c.byCategory) {
		fmt.Fprintf(&b, "    %-28s %6d (%5.1f%%)\n", entry.id, entry.count, pct(entry.count, c.total))
	}

	if len(c.byReason) > 0 {
		b.WriteString("  pre-filter reasons:\n")
		for _, entry := range sortedReasons(c.byReason) {
			fmt.Fprintf(&b, "    %-28s %6d\n", entry.reason, entry.count)
		}
	}

	if share := c.CatchAllShare(catchAll); share > warnShare {
		fmt.Fprintf(&b, "  WARNING: catch-all share %.1f%% exceeds %.1f%% - taxonomy may be drifting\n",
			share*100, warnShare*100)
	}

	return b.String()
}

func pct(count, total int) float64 {
	return float64(count) / float64(total) * 100
}

type categoryCount struct {
	id    model.CategoryID
	count int
}

func sortedCounts(m map[model.CategoryID]int) []categoryCount {
	entries := make([]categoryCount, 0, len(m))
	for id, count := range m {
		entries = append(entries, categoryCount{id: id, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].id < entries[j].id
	})
	return entries
}

type reasonCount struct {
	reason string
	count  int
}

func sortedReasons(m map[string]int) []reasonCount {
	entries := make([]reasonCount, 0, len(m))
	for reason, count := range m {
		entries = append(entries, reasonCount{reason: reason, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].reason < entries[j].reason
	})
	return entries
}
