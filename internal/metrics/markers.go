// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"regexp"
	"strings"
)

var (
	// numberRe matches numeric tokens such as 17, 17.5, 1,200 and 20%.
	numberRe = regexp.MustCompile(`\d+(?:[.,]\d+)*%?`)

	// yearCiteRe matches parenthesized years like (2023).
	yearCiteRe = regexp.MustCompile(`\((?:19|20)\d{2}\)`)

	// numericCiteRe matches numeric citations like [1] or [12].
	numericCiteRe = regexp.MustCompile(`\[\d+\]`)

	// etAlRe matches "et al." author lists.
	etAlRe = regexp.MustCompile(`(?i)\bet al\.`)
)

// factualMarkers are phrases that signal sourced, factual language.
var factualMarkers = []string{
	"according to",
	"study shows",
	"studies show",
	"research shows",
	"research indicates",
	"data shows",
	"data indicates",
	"evidence suggests",
	"survey found",
	"report found",
	"analysis shows",
	"statistics show",
	"reported",
	"published",
	"measured",
}

// HasCitation reports whether text contains a citation-like pattern.
func HasCitation(text string) bool {
	return len(CitationMarkers(text)) > 0
}

// CitationMarkers returns the distinct citation-like substrings in text, in
// order of first appearance within each pattern: parenthesized years,
// numeric brackets, then "et al.".
func CitationMarkers(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, re := range []*regexp.Regexp{yearCiteRe, numericCiteRe, etAlRe} {
		for _, m := range re.FindAllString(text, -1) {
			if seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// FactualMarkers returns the distinct factual-language phrases found in text.
func FactualMarkers(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, m := range factualMarkers {
		if strings.Contains(lower, m) {
			out = append(out, m)
		}
	}
	return out
}
