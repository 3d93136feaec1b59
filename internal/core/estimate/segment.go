package estimate

import (
	"regexp"
	"strings"
)

var (
	// Conjunctions that separate independent food mentions.
	conjunctionRe = regexp.MustCompile(`\b(?:and|with|plus|added)\b`)

	// A sentence-ending period: followed by whitespace and a letter. Decimal
	// points ("0.5") never match.
	sentencePeriodRe = regexp.MustCompile(`\.(\s+[a-zA-Z])`)
	trailingPeriodRe = regexp.MustCompile(`\.\s*$`)

	// Delimiters that signal an enumerated ingredient list.
	ingredientListRe = regexp.MustCompile(`\b(?:and|with)\b`)
)

// splitSegments breaks a normalized meal description into independent food
// mentions. Segment order reflects mention order and is preserved for stable
// output ordering only.
func splitSegments(text string) []string {
	text = conjunctionRe.ReplaceAllString(text, ",")
	text = sentencePeriodRe.ReplaceAllString(text, ",$1")
	text = trailingPeriodRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, ";", ",")
	text = strings.ReplaceAll(text, "\n", ",")

	parts := strings.Split(text, ",")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// hasIngredientList reports whether the text separately enumerates ingredients,
// which suppresses composite placeholder entries. Evaluated on normalized text so
// that quantity phrases like "two and a half" no longer contain "and".
func hasIngredientList(text string) bool {
	if strings.ContainsAny(text, ",;:") {
		return true
	}
	return ingredientListRe.MatchString(text)
}
