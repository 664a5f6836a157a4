// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/pdiddy/insight-engine/internal/insight"
	"github.com/pdiddy/insight-engine/internal/keyword"
)

const maxFragmentLen = 160

func topicOf(query string) string {
	q := strings.TrimRight(strings.TrimSpace(query), "?!. ")
	if q == "" {
		return "this topic"
	}
	return q
}

// fragment returns the first sentence of s, shortened to maxFragmentLen
// characters on a word boundary when one exists.
func fragment(s string) string {
	sentences := insight.Sentences(s)
	if len(sentences) == 0 {
		return ""
	}
	f := sentences[0]
	runes := []rune(f)
	if len(runes) <= maxFragmentLen {
		return f
	}
	cut := string(runes[:maxFragmentLen])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, ",;:") + "..."
}

// joinNames renders "A", "A and B", or "A, B and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func citedTitles(sources []source) string {
	parts := make([]string, len(sources))
	for i, s := range sources {
		parts[i] = s.title + " " + s.cite()
	}
	return strings.Join(parts, "; ")
}

func summary(query string, sources []source) string {
	topic := topicOf(query)

	seen := map[string]bool{}
	var names []string
	for _, s := range sources {
		n := platformName(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
		if len(names) == 3 {
			break
		}
	}
	noun := "sources"
	if len(sources) == 1 {
		noun = "source"
	}
	first := fmt.Sprintf("Search results for \"%s\" draw on %d %s", topic, len(sources), noun)
	if len(names) > 0 {
		first += ", including " + joinNames(names)
	}
	first += "."

	var frags []string
	for _, s := range sources[:min(2, len(sources))] {
		if f := fragment(s.snippet); f != "" {
			frags = append(frags, f+" "+s.cite())
		}
	}
	return first + "\n\n" + strings.Join(frags, " ")
}

// keyPointPatterns emit one site-specific bullet for the first source whose
// title has the term as a whole word or whose domain has it as a label.
var keyPointPatterns = []struct {
	term   string
	format string
}{
	{"google", "Google offers documentation or tools related to %s %s."},
	{"microsoft", "Microsoft covers %s in its products and documentation %s."},
	{"aws", "Amazon Web Services provides services and guides relevant to %s %s."},
	{"github", "Open-source projects on GitHub show how %s is put into practice %s."},
	{"wikipedia", "Wikipedia gives background and a general overview of %s %s."},
	{"stackoverflow", "Developers discuss common problems with %s on Stack Overflow %s."},
}

func mentions(src source, term string) bool {
	if slices.Contains(strings.Split(src.domain, "."), term) {
		return true
	}
	words := strings.FieldsFunc(strings.ToLower(src.title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return slices.Contains(words, term)
}

func (s *Synthesizer) keyPoints(query string, sources []source) string {
	topic := topicOf(query)
	var bullets []string
	for _, p := range keyPointPatterns {
		for _, src := range sources {
			if mentions(src, p.term) {
				bullets = append(bullets, fmt.Sprintf(p.format, topic, src.cite()))
				break
			}
		}
	}

	generic := 0
	seen := map[string]bool{}
	for _, src := range sources {
		if generic == s.maxKeyPoints {
			break
		}
		f := fragment(src.snippet)
		key := insight.Key(f)
		if f == "" || seen[key] {
			continue
		}
		seen[key] = true
		bullets = append(bullets, fmt.Sprintf("**%s**: %s %s", src.title, f, src.cite()))
		generic++
	}

	var b strings.Builder
	for _, l := range bullets {
		b.WriteString("- " + l + "\n")
	}
	return b.String()
}

var analysisTemplates = map[string]struct {
	heading string
	format  string
}{
	KindPlatform:    {"Platforms", "Major platforms address %s directly: %s."},
	KindEducational: {"Educational Resources", "Educational resources explain %s step by step: %s."},
	KindReference:   {"Reference Material", "Reference sources define the concepts behind %s: %s."},
	KindTechnical:   {"Technical Sources", "Technical sources cover implementation details of %s: %s."},
	KindWeb:         {"Other Coverage", "Further coverage of %s comes from %s."},
}

func analysis(query string, sources []source) string {
	topic := topicOf(query)
	var b strings.Builder
	for _, kind := range append(append([]string(nil), kindOrder...), KindWeb) {
		group := byKind(sources, kind)
		if len(group) == 0 {
			continue
		}
		t := analysisTemplates[kind]
		fmt.Fprintf(&b, "### %s\n\n", t.heading)
		fmt.Fprintf(&b, t.format, topic, citedTitles(group))
		if f := fragment(group[0].snippet); f != "" {
			fmt.Fprintf(&b, " %s %s", f, group[0].cite())
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// viewpoints are rendered in order. Each uses matching sources when any
// exist and its fallback prose otherwise.
var viewpoints = []struct {
	label    string
	matcher  *keyword.Matcher
	fallback string
}{
	{
		"Business",
		keyword.New([]string{"business", "market", "revenue", "company", "enterprise", "pricing", "cost", "industry"}),
		"Organizations tend to judge %s by its cost and the return it brings.",
	},
	{
		"User",
		keyword.New([]string{"user", "customer", "review", "experience", "beginner", "how to", "guide"}),
		"For everyday users, %s matters where it changes convenience and ease of use.",
	},
	{
		"Technical",
		keyword.New([]string{"technical", "sdk", "code", "architecture", "implementation", "developer", "performance", "engineering"}),
		"Technically, %s rests on the tools and infrastructure that support it.",
	},
	{
		"Ethical",
		keyword.New([]string{"ethic", "privacy", "bias", "regulation", "safety", "fairness", "law", "responsib"}),
		"Open questions remain about privacy and accountability around %s.",
	},
}

func perspectives(query string, sources []source) string {
	topic := topicOf(query)
	var b strings.Builder
	for _, v := range viewpoints {
		var hits []source
		for _, src := range sources {
			if v.matcher.Match(src.title + " " + src.snippet).Matched {
				hits = append(hits, src)
			}
		}
		fmt.Fprintf(&b, "**%s perspective:** ", v.label)
		if len(hits) == 0 {
			fmt.Fprintf(&b, v.fallback, topic)
		} else {
			fmt.Fprintf(&b, "%s %s", fragment(hits[0].snippet), hits[0].cite())
			if len(hits) > 1 {
				fmt.Fprintf(&b, " See also %s.", citedTitles(hits[1:]))
			}
		}
		b.WriteString("\n\n")
	}
	return b.String()
}
