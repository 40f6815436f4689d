package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/sparktsao/WebSearchPup/models"
)

// renderHTML produces the styled-document encoding: one self-contained page
// with a block per present category. Every user-supplied text field passes
// through escapeMarkup before embedding.
func renderHTML(agg *models.AggregateResult) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Search results: %s</title>\n", escapeMarkup(agg.Query))
	b.WriteString("<style>\n")
	b.WriteString("body { font-family: sans-serif; margin: 2em; color: #202124; }\n")
	b.WriteString("section { margin-bottom: 2em; }\n")
	b.WriteString("h2 { border-bottom: 1px solid #dadce0; padding-bottom: 0.3em; }\n")
	b.WriteString(".result { margin: 1em 0; }\n")
	b.WriteString(".result .url { color: #006621; font-size: 0.9em; }\n")
	b.WriteString(".result .snippet { color: #4d5156; }\n")
	b.WriteString(".deep-links a { margin-right: 1em; font-size: 0.9em; }\n")
	b.WriteString(".followup { background: #f8f9fa; padding: 0.5em; font-size: 0.9em; }\n")
	b.WriteString(".images { display: flex; flex-wrap: wrap; gap: 0.5em; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>Search results for “%s”</h1>\n", escapeMarkup(agg.Query))
	fmt.Fprintf(&b, "<p>Captured at %s</p>\n", agg.Timestamp.Format(time.RFC3339))

	if agg.OrganicResults != nil {
		fmt.Fprintf(&b, "<section>\n<h2>Organic results (%d)</h2>\n", len(agg.OrganicResults))
		for _, r := range agg.OrganicResults {
			b.WriteString("<div class=\"result\">\n")
			fmt.Fprintf(&b, "<h3>%d. %s</h3>\n", r.Position, escapeMarkup(deref(r.Title)))
			if r.URL != nil {
				fmt.Fprintf(&b, "<div class=\"url\">%s</div>\n", escapeMarkup(*r.URL))
			}
			if r.Snippet != nil {
				fmt.Fprintf(&b, "<div class=\"snippet\">%s</div>\n", escapeMarkup(*r.Snippet))
			}
			if len(r.DeepLinks) > 0 {
				b.WriteString("<div class=\"deep-links\">\n")
				for _, dl := range r.DeepLinks {
					fmt.Fprintf(&b, "<a href=\"%s\">%s</a>\n",
						escapeMarkup(deref(dl.URL)), escapeMarkup(deref(dl.Text)))
				}
				b.WriteString("</div>\n")
			}
			if r.FollowUpResult != nil {
				fmt.Fprintf(&b, "<div class=\"followup\"><strong>%s</strong> %s</div>\n",
					escapeMarkup(r.FollowUpResult.Title), escapeMarkup(r.FollowUpResult.Excerpt))
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</section>\n")
	}

	if agg.FeaturedSnippets != nil {
		fmt.Fprintf(&b, "<section>\n<h2>Featured snippets (%d)</h2>\n", len(agg.FeaturedSnippets))
		for _, f := range agg.FeaturedSnippets {
			b.WriteString("<div class=\"result\">\n")
			fmt.Fprintf(&b, "<div class=\"snippet\">%s</div>\n", escapeMarkup(deref(f.Content)))
			if f.Source != nil {
				fmt.Fprintf(&b, "<div class=\"url\">%s</div>\n", escapeMarkup(*f.Source))
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</section>\n")
	}

	if agg.RelatedQuestions != nil {
		fmt.Fprintf(&b, "<section>\n<h2>People also ask (%d)</h2>\n", len(agg.RelatedQuestions))
		for _, q := range agg.RelatedQuestions {
			b.WriteString("<div class=\"result\">\n")
			fmt.Fprintf(&b, "<strong>%s</strong>\n", escapeMarkup(deref(q.Question)))
			if q.Snippet != nil {
				fmt.Fprintf(&b, "<div class=\"snippet\">%s</div>\n", escapeMarkup(*q.Snippet))
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</section>\n")
	}

	if agg.RelatedSearches != nil {
		fmt.Fprintf(&b, "<section>\n<h2>Related searches (%d)</h2>\n<ul>\n", len(agg.RelatedSearches))
		for _, r := range agg.RelatedSearches {
			fmt.Fprintf(&b, "<li>%s</li>\n", escapeMarkup(deref(r.Query)))
		}
		b.WriteString("</ul>\n</section>\n")
	}

	if agg.VideoResults != nil {
		fmt.Fprintf(&b, "<section>\n<h2>Videos (%d)</h2>\n", len(agg.VideoResults))
		for _, v := range agg.VideoResults {
			b.WriteString("<div class=\"result\">\n")
			fmt.Fprintf(&b, "<h3>%s</h3>\n", escapeMarkup(deref(v.Title)))
			if v.URL != nil {
				fmt.Fprintf(&b, "<div class=\"url\">%s</div>\n", escapeMarkup(*v.URL))
			}
			if v.Duration != nil {
				fmt.Fprintf(&b, "<div>%s</div>\n", escapeMarkup(*v.Duration))
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</section>\n")
	}

	if agg.ImageResults != nil {
		fmt.Fprintf(&b, "<section>\n<h2>Images (%d)</h2>\n<div class=\"images\">\n", len(agg.ImageResults))
		for _, img := range agg.ImageResults {
			fmt.Fprintf(&b, "<figure><img src=\"%s\" alt=\"%s\"><figcaption>%s</figcaption></figure>\n",
				escapeMarkup(deref(img.Src)), escapeMarkup(deref(img.Alt)), escapeMarkup(deref(img.Title)))
		}
		b.WriteString("</div>\n</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// escapeMarkup replaces the five reserved markup characters with their
// entities. The ampersand replacement runs first so entities introduced by
// the later replacements are not escaped a second time.
func escapeMarkup(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
