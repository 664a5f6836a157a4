// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/insight-engine/internal/ingest"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// source is one input document after decoding.
type source struct {
	Name   string
	Query  string
	Answer string
	Items  []types.ContentItem
}

// readSource loads path, or stdin when path is empty or "-". Documents
// shaped like a saved query file contribute their query and answer; every
// other document is parsed with ingest.ParseDocument.
func readSource(path string, stdin io.Reader) (source, error) {
	if isStdin(path) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return source{}, fmt.Errorf("reading stdin: %w", err)
		}
		return parseSource("stdin", data)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return source{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseSource(path, data)
}

func parseSource(name string, data []byte) (source, error) {
	if qf, err := ingest.ParseQueryFile(data); err == nil && qf.IsSaved() {
		return source{Name: name, Query: qf.Query, Answer: qf.Answer, Items: qf.Items()}, nil
	}
	in, err := ingest.ParseDocument(data)
	if err != nil {
		return source{}, fmt.Errorf("parsing %s: %w", name, err)
	}
	return source{Name: name, Items: ingest.Normalize(in)}, nil
}

func isStdin(path string) bool {
	return path == "" || path == "-"
}

// checkInputs rejects argument lists that would read stdin more than once.
func checkInputs(paths []string) error {
	n := 0
	for _, p := range paths {
		if isStdin(p) {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("stdin (-) can be read only once, got it %d times", n)
	}
	return nil
}

// resolveQuery prefers the --query flag over the query saved in the source.
func resolveQuery(flag string, src source) string {
	if q := strings.TrimSpace(flag); q != "" {
		return q
	}
	return src.Query
}

// prepareItems applies de-duplication when enabled and reports what it
// removed.
func prepareItems(src source, dedup bool) ([]types.ContentItem, int) {
	if !dedup {
		return src.Items, 0
	}
	items, removed := ingest.Deduplicate(src.Items)
	if removed > 0 {
		logger.Info("duplicates removed", "source", src.Name, "count", removed)
	}
	return items, removed
}
