package model

import "strings"

// DescriptionExcerptLen bounds how much of a lot description is placed in a
// classification prompt, to keep token usage predictable.
const DescriptionExcerptLen = 500

// Lot represents a single auction lot after field normalization. The
// normalizer runs upstream; the pipeline never redoes title cleanup or
// accent stripping.
type Lot struct {
	ID              string `json:"id"`
	Source          string `json:"source"`
	Title           string `json:"title"`
	NormalizedTitle string `json:"normalized_title,omitempty"` // lowercased, accent-stripped search form
	Description     string `json:"description,omitempty"`
	URL             string `json:"url,omitempty"`
	TotalBids       int    `json:"total_bids,omitempty"`
	TotalBidders    int    `json:"total_bidders,omitempty"`
}

// SearchText returns the lowercased title plus description, the form every
// lexicon and rule matches against.
func (l *Lot) SearchText() string {
	title := l.NormalizedTitle
	if title == "" {
		title = strings.ToLower(l.Title)
	}
	return title + " " + strings.ToLower(l.Description)
}

// DescriptionExcerpt returns the description truncated for prompt use.
// Truncation counts runes so a multi-byte character is never split.
func (l *Lot) DescriptionExcerpt() string {
	runes := []rune(l.Description)
	if len(runes) <= DescriptionExcerptLen {
		return l.Description
	}
	return string(runes[:DescriptionExcerptLen])
}
