package search

import (
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// extractOrganic maps the main result list. Positions are assigned 1-based in
// DOM encounter order after mapping, and every entry starts not yet
// follow-up-searched.
func extractOrganic(s browser.Session, timeout time.Duration) []models.OrganicResult {
	results := mapRegion(s, selectors.RegionOrganic, timeout, mapOrganicNode)
	for i := range results {
		results[i].Position = i + 1
		results[i].FollowUpSearched = false
	}
	return results
}

func mapOrganicNode(n browser.Node) models.OrganicResult {
	var title, url, snippet *string

	if t := n.First("h3"); t != nil {
		title = models.StrPtr(t.Text())
	}
	if a := n.First("a[href]"); a != nil {
		url = a.Attr("href")
	}
	if sn := n.First(".VwiC3b, .IsZvec, .st"); sn != nil {
		snippet = models.StrPtr(sn.Text())
	}

	deepLinks := make([]models.DeepLink, 0)
	for _, link := range n.All("a.fl, .HiHjCd a") {
		deepLinks = append(deepLinks, models.DeepLink{
			Text: models.StrPtr(link.Text()),
			URL:  link.Attr("href"),
		})
	}

	return models.OrganicResult{
		Title:     title,
		URL:       url,
		Snippet:   snippet,
		DeepLinks: deepLinks,
	}
}
