// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"path"
	"regexp"
	"strings"

	"github.com/pdiddy/insight-engine/internal/keyword"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// KeyInsightBase is the score every item starts from under Key Insights.
const KeyInsightBase = 70

var (
	digitRe    = regexp.MustCompile(`\d`)
	bulletRe   = regexp.MustCompile(`(?m)^\s*(?:[-*•]|\d+[.)])\s+\S`)
	sentenceRe = regexp.MustCompile(`[^.!?\n]+[.!?]?`)
	codeRe     = regexp.MustCompile("(?m)```|^\\s*(?:func|def|class|import|package|#include|public static)\\b")
)

var keyInsightMatcher = keyword.New(keyInsightKeywords)

// keyInsightScore rewards numeric content, bullet structure and insight
// vocabulary: base 70, +10 for each, capped at 100.
func keyInsightScore(content, _ string) int {
	score := KeyInsightBase
	if digitRe.MatchString(content) {
		score += 10
	}
	if bulletRe.MatchString(content) {
		score += 10
	}
	if keyInsightMatcher.Match(content).Matched {
		score += 10
	}
	return min(score, 100)
}

// keyInsightFormat renders sentences carrying numbers as bullet lines. Text
// without numeric sentences is returned trimmed.
func keyInsightFormat(content string) string {
	var bullets []string
	for _, s := range sentenceRe.FindAllString(content, -1) {
		s = strings.TrimSpace(s)
		if s == "" || !digitRe.MatchString(s) {
			continue
		}
		bullets = append(bullets, "• "+s)
	}
	if len(bullets) == 0 {
		return strings.TrimSpace(content)
	}
	return strings.Join(bullets, "\n")
}

func hasURL(item types.ContentItem) bool {
	return strings.TrimSpace(item.URL) != ""
}

func isPlainText(item types.ContentItem) bool {
	return !hasURL(item) && (item.Text != "" || item.Content != "" || item.Type == "text")
}

func isCode(item types.ContentItem) bool {
	if item.Type == "code" {
		return true
	}
	return codeRe.MatchString(item.Text) || codeRe.MatchString(item.Content)
}

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".svg": true,
}

func isImage(item types.ContentItem) bool {
	if item.Type == "image" || item.Type == "images" {
		return true
	}
	u := strings.ToLower(item.URL)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	return imageExts[path.Ext(u)]
}
