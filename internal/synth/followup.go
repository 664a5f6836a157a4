// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// questionRules are tested against the lower-cased query in order; every
// matching rule contributes its templates.
var questionRules = []struct {
	re        *regexp.Regexp
	templates []string
}{
	{
		regexp.MustCompile(`\b(how|build|create|make|implement|setup|set up|install)\b`),
		[]string{
			"What are the prerequisites for getting started with %s?",
			"Which tools or frameworks work best for %s?",
			"What common mistakes should be avoided with %s?",
		},
	},
	{
		regexp.MustCompile(`\b(what|define|definition|meaning|explain)\b`),
		[]string{
			"How does %s work in practice?",
			"What are real-world examples of %s?",
		},
	},
	{
		regexp.MustCompile(`\b(best|top|vs|versus|compare|comparison|alternatives?)\b`),
		[]string{
			"Which criteria matter most when comparing options for %s?",
			"How do the leading options for %s differ in cost?",
		},
	},
	{
		regexp.MustCompile(`\b(why|should|benefits?|advantages?|risks?)\b`),
		[]string{
			"What are the main benefits and drawbacks of %s?",
		},
	},
}

var genericQuestions = []string{
	"What are the latest developments in %s?",
	"Who are the key players in %s?",
	"Where can I learn more about %s?",
}

func (s *Synthesizer) followUpQuestions(query string) []string {
	topic := topicOf(query)
	lower := strings.ToLower(query)

	var templates []string
	for _, r := range questionRules {
		if r.re.MatchString(lower) {
			templates = append(templates, r.templates...)
		}
	}
	templates = append(templates, genericQuestions...)

	out := make([]string, 0, s.maxFollowUps)
	for _, t := range templates {
		if len(out) == s.maxFollowUps {
			break
		}
		out = append(out, fmt.Sprintf(t, topic))
	}
	return out
}

// relatedTopics suggests a neighbouring search for common query terms.
var relatedTopics = map[string]string{
	"ai":         "machine learning",
	"ml":         "artificial intelligence",
	"cloud":      "cloud computing providers",
	"crypto":     "blockchain technology",
	"bitcoin":    "cryptocurrency markets",
	"stock":      "equity markets",
	"stocks":     "equity markets",
	"market":     "market research",
	"startup":    "venture funding",
	"python":     "programming tutorials",
	"javascript": "web development",
	"golang":     "backend development",
	"health":     "public health data",
	"climate":    "renewable energy",
	"car":        "electric vehicles",
	"phone":      "smartphones",
	"data":       "data analytics",
	"security":   "cybersecurity",
	"revenue":    "financial performance",
	"marketing":  "digital advertising",
}

// troubleshootingQuestions builds follow-ups for an empty result set: related
// topics for recognised query terms, then generic search advice.
func (s *Synthesizer) troubleshootingQuestions(query string) []string {
	var out []string
	seen := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		topic, ok := relatedTopics[w]
		if !ok || seen[topic] {
			continue
		}
		seen[topic] = true
		out = append(out, fmt.Sprintf("Would results about %s help instead?", topic))
	}

	q := strings.TrimSpace(query)
	out = append(out,
		fmt.Sprintf("Can \"%s\" be rephrased with more general terms?", q),
		"Should the search cover a wider time range or more sources?",
		"Is there a specific aspect of this topic to focus on?",
	)
	if len(out) > s.maxFollowUps {
		out = out[:s.maxFollowUps]
	}
	return out
}
