package search

import (
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// extractFeatured maps answer boxes. Content longer than the snippet limit is
// cut to exactly that many runes with a single trailing ellipsis.
func extractFeatured(s browser.Session, timeout time.Duration) []models.FeaturedSnippet {
	return mapRegion(s, selectors.RegionFeatured, timeout, func(n browser.Node) models.FeaturedSnippet {
		var content, source, url *string

		if c := n.First(".hgKElc, .LGOjhe, .wDYxhc"); c != nil {
			content = models.TruncatePtr(models.StrPtr(c.Text()), models.SnippetLimit)
		}
		if src := n.First(".VuuXrf, cite"); src != nil {
			source = models.StrPtr(src.Text())
		}
		if a := n.First("a[href]"); a != nil {
			url = a.Attr("href")
		}

		return models.FeaturedSnippet{Content: content, Source: source, URL: url}
	})
}
