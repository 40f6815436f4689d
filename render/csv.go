package render

import (
	"strconv"
	"strings"

	"github.com/sparktsao/WebSearchPup/models"
)

// renderCSV produces the tabular encoding: one row block per category
// (organic, featured, videos), blocks separated by a blank line. Every field
// is quoted, with embedded quotes doubled.
//
// Header behavior is asymmetric on purpose, mirroring the source tool this
// replaces: organic and featured print their header row whenever the category
// key is present, even with zero data rows, while the video header only
// appears when at least one video row exists. Do not "fix" this without a
// product decision; downstream consumers key off the organic/featured headers
// to detect an empty-but-requested category.
func renderCSV(agg *models.AggregateResult) string {
	var blocks []string

	if agg.OrganicResults != nil {
		var b strings.Builder
		writeRow(&b, "Position", "Title", "URL", "Snippet")
		for _, r := range agg.OrganicResults {
			writeRow(&b, strconv.Itoa(r.Position), deref(r.Title), deref(r.URL), deref(r.Snippet))
		}
		blocks = append(blocks, b.String())
	}

	if agg.FeaturedSnippets != nil {
		var b strings.Builder
		writeRow(&b, "Content", "Source", "URL")
		for _, f := range agg.FeaturedSnippets {
			writeRow(&b, deref(f.Content), deref(f.Source), deref(f.URL))
		}
		blocks = append(blocks, b.String())
	}

	if len(agg.VideoResults) > 0 {
		var b strings.Builder
		writeRow(&b, "Title", "URL", "Source", "Duration")
		for _, v := range agg.VideoResults {
			writeRow(&b, deref(v.Title), deref(v.URL), deref(v.Source), deref(v.Duration))
		}
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n")
}

// writeRow emits one quoted, comma-separated row.
func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
