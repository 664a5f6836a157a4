// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"io"
	"sort"
	"strconv"

	"github.com/pdiddy/insight-engine/internal/metrics"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// CSLItem is a CSL-YAML bibliography entry for one cited web source, so a
// synthesized answer's citations can be fed to Pandoc.
type CSLItem struct {
	ID             string   `yaml:"id"`
	Type           string   `yaml:"type"`
	Title          string   `yaml:"title"`
	URL            string   `yaml:"URL,omitempty"`
	ContainerTitle string   `yaml:"container-title,omitempty"`
	Genre          string   `yaml:"genre,omitempty"`
	Accessed       *CSLDate `yaml:"accessed,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// CSLItems converts a source map to CSL entries ordered by citation number.
func CSLItems(resp types.SyntheticResponse) []CSLItem {
	keys := make([]string, 0, len(resp.SourceMap))
	for k := range resp.SourceMap {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	items := make([]CSLItem, 0, len(keys))
	for _, k := range keys {
		ref := resp.SourceMap[k]
		item := CSLItem{
			ID:             "source-" + k,
			Type:           "webpage",
			Title:          ref.Title,
			URL:            ref.URL,
			ContainerTitle: metrics.Domain(ref.URL),
			Genre:          ref.Type,
		}
		if !resp.GeneratedAt.IsZero() {
			d := resp.GeneratedAt
			item.Accessed = &CSLDate{DateParts: [][]int{{d.Year(), int(d.Month()), d.Day()}}}
		}
		items = append(items, item)
	}
	return items
}

// WriteCSL writes the response's sources as a CSL-YAML list.
func WriteCSL(w io.Writer, resp types.SyntheticResponse) error {
	return writeYAML(w, CSLItems(resp))
}
