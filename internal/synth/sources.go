// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"strings"

	"github.com/pdiddy/insight-engine/internal/keyword"
	"github.com/pdiddy/insight-engine/internal/metrics"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// Source kinds, in the order the analysis presents them.
const (
	KindPlatform    = "platform"
	KindEducational = "educational"
	KindReference   = "reference"
	KindTechnical   = "technical"
	KindWeb         = "web"
)

var kindOrder = []string{KindPlatform, KindEducational, KindReference, KindTechnical}

// knownSites maps a registrable domain to its display name and kind.
var knownSites = map[string]struct{ name, kind string }{
	"google.com":        {"Google", KindPlatform},
	"cloud.google.com":  {"Google Cloud", KindPlatform},
	"microsoft.com":     {"Microsoft", KindPlatform},
	"azure.com":         {"Microsoft Azure", KindPlatform},
	"amazon.com":        {"Amazon", KindPlatform},
	"aws.amazon.com":    {"AWS", KindPlatform},
	"apple.com":         {"Apple", KindPlatform},
	"ibm.com":           {"IBM", KindPlatform},
	"oracle.com":        {"Oracle", KindPlatform},
	"salesforce.com":    {"Salesforce", KindPlatform},
	"openai.com":        {"OpenAI", KindPlatform},
	"meta.com":          {"Meta", KindPlatform},
	"coursera.org":      {"Coursera", KindEducational},
	"edx.org":           {"edX", KindEducational},
	"udemy.com":         {"Udemy", KindEducational},
	"khanacademy.org":   {"Khan Academy", KindEducational},
	"w3schools.com":     {"W3Schools", KindEducational},
	"freecodecamp.org":  {"freeCodeCamp", KindEducational},
	"wikipedia.org":     {"Wikipedia", KindReference},
	"en.wikipedia.org":  {"Wikipedia", KindReference},
	"britannica.com":    {"Britannica", KindReference},
	"investopedia.com":  {"Investopedia", KindReference},
	"github.com":        {"GitHub", KindTechnical},
	"gitlab.com":        {"GitLab", KindTechnical},
	"stackoverflow.com": {"Stack Overflow", KindTechnical},
	"dev.to":            {"DEV Community", KindTechnical},
	"pkg.go.dev":        {"Go Packages", KindTechnical},
	"npmjs.com":         {"npm", KindTechnical},
}

// Title vocabulary decides the kind of sites not listed above.
var (
	educationalTitles = keyword.New([]string{"tutorial", "course", "learn", "lesson", "guide for beginners", "university"})
	referenceTitles   = keyword.New([]string{"wiki", "encyclopedia", "definition", "documentation", "reference", "glossary"})
	technicalTitles   = keyword.New([]string{"programming", "sdk", "source code", "repository", "library", "framework", "stack overflow"})
)

func domainOf(item types.ContentItem) string {
	if d := metrics.Domain(item.URL); d != "" {
		return d
	}
	return metrics.Domain(item.Source.URL)
}

// site looks a domain up in knownSites, falling back to its parent domains.
func site(domain string) (name, kind string, ok bool) {
	for d := domain; d != ""; {
		if s, found := knownSites[d]; found {
			return s.name, s.kind, true
		}
		i := strings.IndexByte(d, '.')
		if i < 0 || !strings.Contains(d[i+1:], ".") {
			break
		}
		d = d[i+1:]
	}
	return "", "", false
}

func classify(src source) string {
	if _, kind, ok := site(src.domain); ok {
		return kind
	}
	if strings.HasSuffix(src.domain, ".edu") {
		return KindEducational
	}
	if strings.HasPrefix(src.domain, "docs.") || strings.HasPrefix(src.domain, "developer.") {
		return KindReference
	}
	title := strings.ToLower(src.title)
	switch {
	case educationalTitles.Match(title).Matched:
		return KindEducational
	case referenceTitles.Match(title).Matched:
		return KindReference
	case technicalTitles.Match(title).Matched:
		return KindTechnical
	}
	return KindWeb
}

// platformName is the display name for a source: the collaborator-supplied
// source name, a known site name, or the bare domain.
func platformName(src source) string {
	if n := strings.TrimSpace(src.item.Source.Name); n != "" {
		return n
	}
	if name, _, ok := site(src.domain); ok {
		return name
	}
	return src.domain
}

func byKind(sources []source, kind string) []source {
	var out []source
	for _, s := range sources {
		if s.kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func presentKinds(sources []source) []string {
	var out []string
	for _, k := range kindOrder {
		if len(byKind(sources, k)) > 0 {
			out = append(out, k)
		}
	}
	return out
}
