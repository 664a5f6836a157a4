// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package insight pulls short insight statements out of a category's content
// and buckets them into business themes.
package insight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/insight-engine/internal/keyword"
	"github.com/pdiddy/insight-engine/internal/metrics"
	"github.com/pdiddy/insight-engine/pkg/types"
)

const (
	// MaxInsights caps the insights returned for one category.
	MaxInsights = 5

	// minFromLists is the count of list-sourced insights below which
	// sentences are mined from descriptions.
	minFromLists = 3

	minListLen     = 10
	minSentenceLen = 20
	maxSentenceLen = 150
)

// Extract returns up to five insights for a category. Insights already on
// the category are returned as-is (capped). Otherwise the items' KeyInsights
// and KeyPoints are used first; when fewer than three are found, sentences
// of 20-150 characters that mention a category keyword or a query term are
// taken from descriptions and content.
func Extract(cat types.Category, query string) []string {
	if len(cat.Insights) > 0 {
		n := min(len(cat.Insights), MaxInsights)
		return append([]string(nil), cat.Insights[:n]...)
	}

	c := newCollector()
	for _, si := range cat.Content {
		for _, s := range si.Item.KeyInsights {
			c.add(s, minListLen)
		}
		for _, s := range si.Item.KeyPoints {
			c.add(s, minListLen)
		}
	}
	if c.len() >= minFromLists {
		return c.out
	}

	m := sentenceMatcher(cat.Keywords, query)
	for _, si := range cat.Content {
		for _, text := range []string{si.Item.SnippetText(), si.Item.Content} {
			for _, s := range Sentences(text) {
				if n := utf8.RuneCountInString(s); n < minSentenceLen || n > maxSentenceLen {
					continue
				}
				if m != nil && !m.Match(s).Matched {
					continue
				}
				c.add(s, minSentenceLen)
			}
		}
	}
	return c.out
}

// sentenceMatcher compiles the category keywords and query terms. It returns
// nil when there is nothing to match, in which case every sentence is
// eligible.
func sentenceMatcher(keywords []string, query string) *keyword.Matcher {
	var kws []string
	for _, kw := range keywords {
		if kw != types.Wildcard {
			kws = append(kws, kw)
		}
	}
	kws = append(kws, metrics.QueryTerms(query)...)
	if len(kws) == 0 {
		return nil
	}
	return keyword.New(kws)
}

type collector struct {
	seen map[string]bool
	out  []string
}

func newCollector() *collector {
	return &collector{seen: make(map[string]bool)}
}

func (c *collector) len() int { return len(c.out) }

func (c *collector) add(s string, minLen int) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if len(c.out) >= MaxInsights || n <= minListLen || n < minLen {
		return
	}
	key := Key(s)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.out = append(c.out, s)
}

// Key is the normalized form used to detect duplicate insights: lower-cased
// with punctuation removed and whitespace collapsed.
func Key(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Merge combines insight lists, dropping entries whose normalized form was
// already seen. The first occurrence wins.
func Merge(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, s := range list {
			s = strings.TrimSpace(s)
			key := Key(s)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

// Sentences splits text at sentence-ending punctuation followed by
// whitespace or end of text. Decimal points such as "17.5" do not split.
func Sentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' || ((r == '.' || r == '!' || r == '?') && (i+1 == len(runes) || unicode.IsSpace(runes[i+1]))) {
			end := i + 1
			if r == '\n' {
				end = i
			}
			if s := strings.TrimSpace(string(runes[start:end])); s != "" {
				out = append(out, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		out = append(out, s)
	}
	return out
}
