// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matcher

import (
	"regexp"
	"strings"

	"github.com/pdiddy/insight-engine/pkg/types"
)

const (
	containBonus    = 30
	exactQueryBonus = 20
	leadingBonus    = 10
	repeatBonus     = 5
	maxRepeatBonus  = 20
	wordBonus       = 15
	stemBonus       = 5
	minStemLen      = 6
)

// ItemRelevance scores text against a category's keywords for bulk
// categorization. It differs from the keyword ratio on purpose: it rewards
// position and frequency and falls back to word-boundary and stem matches.
// An item qualifies for the category when the result is above zero.
func ItemRelevance(text, query string, keywords []string) int {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return 0
	}
	q := strings.ToLower(strings.TrimSpace(query))

	score := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || kw == types.Wildcard {
			continue
		}
		switch {
		case strings.Contains(lower, kw):
			score += containBonus
			if kw == q {
				score += exactQueryBonus
			}
			if strings.HasPrefix(lower, kw) {
				score += leadingBonus
			}
			if extra := strings.Count(lower, kw) - 1; extra > 0 {
				score += min(extra*repeatBonus, maxRepeatBonus)
			}
		case wordsMatch(lower, kw):
			score += wordBonus
		case len(kw) >= minStemLen && strings.Contains(lower, kw[:len(kw)*3/4]):
			score += stemBonus
		}
		if score >= 100 {
			return 100
		}
	}
	return score
}

// wordsMatch reports whether every word of kw longer than two characters
// appears in text on word boundaries.
func wordsMatch(text, kw string) bool {
	found := false
	for _, w := range strings.Fields(kw) {
		if len(w) <= 2 {
			continue
		}
		re, err := regexp.Compile(`\b` + regexp.QuoteMeta(w) + `\b`)
		if err != nil || !re.MatchString(text) {
			return false
		}
		found = true
	}
	return found
}
