// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics computes the relevance, credibility and accuracy scores
// (each 0-100) for a piece of content. The scorers are string heuristics:
// deterministic, free of I/O, and dependent on the wall clock only when a
// content date is supplied without a reference time.
package metrics

import (
	"math"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/pdiddy/insight-engine/pkg/types"
)

const (
	// DefaultThreshold is the minimum score on every axis for a category to
	// pass the quality gate.
	DefaultThreshold = 70

	baselineRelevance   = 50
	baselineCredibility = 75
	baselineAccuracy    = 75

	termCredit      = 20.0
	phraseBonus     = 15
	firstLineBonus  = 5
	percentageRatio = 0.5

	sourceBonus    = 2
	maxSourceBonus = 10

	maxNumericBonus = 10
	citationBonus   = 5
	markerBonus     = 2
	maxMarkerBonus  = 10
)

// RelevanceOptions carries optional inputs to the relevance scorer.
type RelevanceOptions struct {
	// ContentDate enables the recency bonus when non-zero.
	ContentDate time.Time

	// Now is the reference time for recency. Zero means time.Now().
	Now time.Time
}

// Scorer computes the three quality axes for a text. The heuristic scorer is
// the default; a model-backed implementation can replace it without
// touching categorization.
type Scorer interface {
	Score(text, query string, sources []types.Source, opts RelevanceOptions) types.Metrics
}

// Heuristic is the default string-matching Scorer.
type Heuristic struct{}

// Score implements Scorer.
func (Heuristic) Score(text, query string, sources []types.Source, opts RelevanceOptions) types.Metrics {
	return Compute(text, query, sources, opts)
}

// Compute returns all three axes and their unweighted mean.
func Compute(text, query string, sources []types.Source, opts RelevanceOptions) types.Metrics {
	r := Relevance(text, query, opts)
	c := Credibility(sources)
	a := Accuracy(text)
	return types.Metrics{
		Relevance:   r,
		Accuracy:    a,
		Credibility: c,
		Overall:     int(math.Round(float64(r+a+c) / 3)),
	}
}

// Relevance scores how well content answers query. A blank query yields the
// baseline of 50.
func Relevance(content, query string, opts RelevanceOptions) int {
	query = strings.TrimSpace(query)
	if query == "" {
		return baselineRelevance
	}

	lower := strings.ToLower(content)
	firstLine := lower
	if i := strings.IndexByte(lower, '\n'); i >= 0 {
		firstLine = lower[:i]
	}

	score := float64(baselineRelevance)
	terms := QueryTerms(query)
	if len(terms) > 0 {
		matched := 0
		for _, term := range terms {
			if !strings.Contains(lower, term) {
				continue
			}
			matched++
			score += termCredit / float64(len(terms))
			score += float64(firstLineBonus * strings.Count(firstLine, term))
		}
		pct := float64(matched) / float64(len(terms)) * 100
		score += percentageRatio * pct
	}

	if strings.Contains(lower, strings.ToLower(query)) {
		score += phraseBonus
	}

	score += float64(recencyBonus(opts))
	return clamp(score)
}

func recencyBonus(opts RelevanceOptions) int {
	if opts.ContentDate.IsZero() {
		return 0
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	age := now.Sub(opts.ContentDate)
	switch {
	case age < 30*24*time.Hour:
		return 10
	case age < 90*24*time.Hour:
		return 5
	case age < 365*24*time.Hour:
		return 2
	default:
		return 0
	}
}

// Credibility scores a set of sources. No sources yields the baseline of 75;
// each extra source and each extra distinct domain adds 2, capped at 10 each.
func Credibility(sources []types.Source) int {
	if len(sources) == 0 {
		return baselineCredibility
	}

	domains := make(map[string]bool)
	for _, s := range sources {
		if d := Domain(s.URL); d != "" {
			domains[d] = true
		}
	}

	score := baselineCredibility
	score += min(sourceBonus*(len(sources)-1), maxSourceBonus)
	if len(domains) > 1 {
		score += min(sourceBonus*(len(domains)-1), maxSourceBonus)
	}
	return clamp(float64(score))
}

// Accuracy scores factual density: numbers, citations, and factual-language
// markers.
func Accuracy(content string) int {
	score := baselineAccuracy
	if strings.TrimSpace(content) == "" {
		return score
	}

	score += min(len(numberRe.FindAllString(content, -1)), maxNumericBonus)
	if HasCitation(content) {
		score += citationBonus
	}
	score += min(markerBonus*len(FactualMarkers(content)), maxMarkerBonus)
	return clamp(float64(score))
}

// Combined weights relevance twice as heavily as credibility and accuracy.
func Combined(relevance, credibility, accuracy int) float64 {
	return float64(2*relevance+credibility+accuracy) / 4
}

// MeetsThreshold reports whether all three axes reach threshold.
func MeetsThreshold(relevance, credibility, accuracy, threshold int) bool {
	return relevance >= threshold && credibility >= threshold && accuracy >= threshold
}

// QueryTerms splits a query into lower-cased words longer than two
// characters, with surrounding punctuation removed. Duplicates are dropped.
func QueryTerms(query string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len(w) <= 2 || seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, w)
	}
	return terms
}

// Domain returns the lower-cased host of rawURL without a leading "www.".
// Scheme-less URLs are accepted.
func Domain(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

func clamp(score float64) int {
	s := int(math.Round(score))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
