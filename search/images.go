package search

import (
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// extractImages maps the inline image grid. Src and Alt carry the raw element
// attributes; the human-readable title comes from the element's title
// attribute when present and falls back to alt text.
func extractImages(s browser.Session, timeout time.Duration) []models.ImageResult {
	return mapRegion(s, selectors.RegionImages, timeout, func(n browser.Node) models.ImageResult {
		src := n.Attr("src")
		if src == nil {
			src = n.Attr("data-src")
		}
		alt := n.Attr("alt")

		title := n.Attr("title")
		if title == nil {
			title = alt
		}

		return models.ImageResult{
			Title: title,
			Src:   src,
			Alt:   alt,
			URL:   n.Attr("data-lpage"),
		}
	})
}
