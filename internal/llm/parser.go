package llm

import (
	"regexp"
	"strings"
)

// listMarkerPattern matches a leading list marker ("1. ", "2) ", "- ") the
// model sometimes prepends when it formats its answer as a list.
var listMarkerPattern = regexp.MustCompile(`^(?:\d+[.)]|-)\s+`)

// normalizeAnswer reduces a free-text model reply to the token that should
// name a category: lowercased, first line only, stripped of markdown,
// quoting, and trailing punctuation or explanation. Membership checking
// happens afterwards in the taxonomy registry; this function only cleans.
func normalizeAnswer(raw string) string {
	answer := strings.ToLower(strings.TrimSpace(raw))

	// First line only; anything after a newline is explanation.
	if idx := strings.IndexByte(answer, '\n'); idx >= 0 {
		answer = answer[:idx]
	}

	// Models occasionally echo a label prefix ("categoria: tecnologia").
	if idx := strings.LastIndex(answer, ":"); idx >= 0 {
		answer = answer[idx+1:]
	}

	// Drop list separators; a single-category reply never needs them.
	answer = strings.ReplaceAll(answer, ",", " ")
	answer = strings.ReplaceAll(answer, ";", " ")

	answer = strings.Trim(answer, " \t\"'`*._!?()[]")
	answer = listMarkerPattern.ReplaceAllString(answer, "")

	return strings.Join(strings.Fields(answer), " ")
}
