// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SourceRef is one entry of a synthesized response's source map.
type SourceRef struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`

	// Type classifies the source: platform, educational, reference,
	// technical, or web.
	Type string `json:"type" yaml:"type"`
}

// SyntheticResponse is a templated stand-in for an LLM answer, built only
// from raw search snippets.
type SyntheticResponse struct {
	Query string `json:"query" yaml:"query"`

	// Content is the markdown body.
	Content string `json:"content" yaml:"content"`

	// SourceMap maps citation numbers ("1".."n") to sources, in input order.
	SourceMap map[string]SourceRef `json:"source_map" yaml:"source_map"`

	FollowUpQuestions []string `json:"follow_up_questions" yaml:"follow_up_questions"`

	// Categories lists the analysis buckets that received sources.
	Categories []string `json:"categories" yaml:"categories"`

	SourceCount int `json:"source_count" yaml:"source_count"`

	// Synthesized is always true so consumers can tell this apart from a
	// genuine LLM answer.
	Synthesized bool `json:"synthesized" yaml:"synthesized"`

	// GeneratedAt is metadata only.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}
