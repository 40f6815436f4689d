package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/sparktsao/WebSearchPup/models"
)

// renderText produces the readable-text encoding: a fixed section order
// (organic, featured, questions, related, videos, images), each section
// headed by its count. Absent (nil) sections are omitted entirely; an empty
// requested section still prints its header with a zero count.
func renderText(agg *models.AggregateResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Search results for: %s\n", agg.Query)
	fmt.Fprintf(&b, "Captured at: %s\n", agg.Timestamp.Format(time.RFC3339))

	if agg.OrganicResults != nil {
		fmt.Fprintf(&b, "\n=== ORGANIC SEARCH RESULTS (%d) ===\n", len(agg.OrganicResults))
		for _, r := range agg.OrganicResults {
			fmt.Fprintf(&b, "\n%d. %s\n", r.Position, deref(r.Title))
			if r.URL != nil {
				fmt.Fprintf(&b, "   URL: %s\n", *r.URL)
			}
			if r.Snippet != nil {
				fmt.Fprintf(&b, "   %s\n", *r.Snippet)
			}
			for _, dl := range r.DeepLinks {
				fmt.Fprintf(&b, "   - %s (%s)\n", deref(dl.Text), deref(dl.URL))
			}
			if r.FollowUpResult != nil {
				fmt.Fprintf(&b, "   Follow-up [%s]: %s\n", r.FollowUpResult.Title, r.FollowUpResult.Excerpt)
			}
		}
	}

	if agg.FeaturedSnippets != nil {
		fmt.Fprintf(&b, "\n=== FEATURED SNIPPETS (%d) ===\n", len(agg.FeaturedSnippets))
		for _, f := range agg.FeaturedSnippets {
			fmt.Fprintf(&b, "\n%s\n", deref(f.Content))
			if f.Source != nil {
				fmt.Fprintf(&b, "Source: %s\n", *f.Source)
			}
			if f.URL != nil {
				fmt.Fprintf(&b, "URL: %s\n", *f.URL)
			}
		}
	}

	if agg.RelatedQuestions != nil {
		fmt.Fprintf(&b, "\n=== PEOPLE ALSO ASK (%d) ===\n", len(agg.RelatedQuestions))
		for _, q := range agg.RelatedQuestions {
			fmt.Fprintf(&b, "\nQ: %s\n", deref(q.Question))
			if q.Snippet != nil {
				fmt.Fprintf(&b, "A: %s\n", *q.Snippet)
			}
		}
	}

	if agg.RelatedSearches != nil {
		fmt.Fprintf(&b, "\n=== RELATED SEARCHES (%d) ===\n", len(agg.RelatedSearches))
		for _, r := range agg.RelatedSearches {
			fmt.Fprintf(&b, "- %s\n", deref(r.Query))
		}
	}

	if agg.VideoResults != nil {
		fmt.Fprintf(&b, "\n=== VIDEO RESULTS (%d) ===\n", len(agg.VideoResults))
		for _, v := range agg.VideoResults {
			fmt.Fprintf(&b, "\n%s\n", deref(v.Title))
			if v.URL != nil {
				fmt.Fprintf(&b, "   URL: %s\n", *v.URL)
			}
			if v.Source != nil {
				fmt.Fprintf(&b, "   Source: %s\n", *v.Source)
			}
			if v.Duration != nil {
				fmt.Fprintf(&b, "   Duration: %s\n", *v.Duration)
			}
		}
	}

	if agg.ImageResults != nil {
		fmt.Fprintf(&b, "\n=== IMAGE RESULTS (%d) ===\n", len(agg.ImageResults))
		for _, img := range agg.ImageResults {
			fmt.Fprintf(&b, "- %s (%s)\n", deref(img.Title), deref(img.Src))
		}
	}

	if agg.PageText != nil {
		fmt.Fprintf(&b, "\nPage text: %s\n", *agg.PageText)
	}

	return b.String()
}

// deref unwraps an optional field for display, mapping nil to "".
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
