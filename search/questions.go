package search

import (
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// extractQuestions maps the "people also ask" block.
func extractQuestions(s browser.Session, timeout time.Duration) []models.RelatedQuestion {
	return mapRegion(s, selectors.RegionQuestions, timeout, func(n browser.Node) models.RelatedQuestion {
		question := n.Attr("data-q")
		if question == nil {
			if q := n.First("span"); q != nil {
				question = models.StrPtr(q.Text())
			}
		}

		var snippet *string
		if sn := n.First(".hgKElc, .LGOjhe"); sn != nil {
			snippet = models.StrPtr(sn.Text())
		}

		return models.RelatedQuestion{Question: question, Snippet: snippet}
	})
}
