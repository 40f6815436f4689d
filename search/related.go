package search

import (
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// extractRelated maps the suggested alternative queries at the foot of the
// page. Each matched node is an anchor.
func extractRelated(s browser.Session, timeout time.Duration) []models.RelatedSearch {
	return mapRegion(s, selectors.RegionRelated, timeout, func(n browser.Node) models.RelatedSearch {
		return models.RelatedSearch{
			Query: models.StrPtr(n.Text()),
			URL:   n.Attr("href"),
		}
	})
}
