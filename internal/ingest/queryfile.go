// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// QueryFile is a saved search: the query, the raw results as the search
// collaborator returned them, and an optional LLM answer. JSON files are
// accepted as a subset of YAML.
type QueryFile struct {
	Query   string `yaml:"query"`
	Results any    `yaml:"results"`
	Answer  string `yaml:"answer,omitempty"`
}

// ReadQueryFile loads a saved search from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	return ParseQueryFile(data)
}

// ParseQueryFile decodes a saved search from YAML or JSON bytes.
func ParseQueryFile(data []byte) (*QueryFile, error) {
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// IsSaved reports whether the decoded document had the shape of a saved
// search: a query and a results list.
func (qf *QueryFile) IsSaved() bool {
	return qf != nil && qf.Query != "" && qf.Results != nil
}

// WriteQueryFile saves a query and its normalized results.
func WriteQueryFile(path, query string, items []types.ContentItem) error {
	data, err := yaml.Marshal(&struct {
		Query   string              `yaml:"query"`
		Results []types.ContentItem `yaml:"results"`
	}{query, items})
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Items normalizes the file's results.
func (qf *QueryFile) Items() []types.ContentItem {
	return NormalizeAny(qf.Results)
}
