// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keyword matches free text against a keyword list and reports the
// fraction of keywords found. Matching is case-insensitive substring
// containment; there is no fuzzy or word-boundary matching here.
package keyword

import (
	"sort"
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// Matcher holds a compiled keyword automaton. It is safe for concurrent use.
type Matcher struct {
	keywords []string
	ac       *ahocorasick.Matcher
}

// New compiles keywords into a Matcher. Keywords are lower-cased and
// trimmed; empty and duplicate entries are dropped.
func New(keywords []string) *Matcher {
	seen := make(map[string]bool, len(keywords))
	var kws []string
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		kws = append(kws, kw)
	}
	m := &Matcher{keywords: kws}
	if len(kws) > 0 {
		m.ac = ahocorasick.NewStringMatcher(kws)
	}
	return m
}

// Keywords returns the normalized keyword list.
func (m *Matcher) Keywords() []string {
	return append([]string(nil), m.keywords...)
}

// Match reports which keywords occur in text. Score is the matched fraction
// of the keyword list; Matches preserves keyword-list order.
func (m *Matcher) Match(text string) types.KeywordMatch {
	if m == nil || m.ac == nil || strings.TrimSpace(text) == "" {
		return types.KeywordMatch{}
	}

	hits := m.ac.MatchThreadSafe([]byte(strings.ToLower(text)))
	if len(hits) == 0 {
		return types.KeywordMatch{}
	}
	sort.Ints(hits)

	matches := make([]string, 0, len(hits))
	last := -1
	for _, h := range hits {
		if h == last {
			continue
		}
		last = h
		matches = append(matches, m.keywords[h])
	}

	return types.KeywordMatch{
		Matched: true,
		Score:   float64(len(matches)) / float64(len(m.keywords)),
		Matches: matches,
	}
}

// Match is a convenience wrapper that compiles keywords and matches text once.
func Match(text string, keywords []string) types.KeywordMatch {
	return New(keywords).Match(text)
}
