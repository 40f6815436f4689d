package pagetext

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sparktsao/WebSearchPup/models"
)

// Links parses the raw HTML and returns deduplicated outbound links with
// hrefs resolved against the source URL. Non-HTTP schemes are skipped, and
// the list is capped at max entries (0 means no cap).
func Links(rawHTML string, sourceURL string, max int) []models.DeepLink {
	links := []models.DeepLink{}

	base, err := url.Parse(sourceURL)
	if err != nil {
		return links
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return links
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if max > 0 && len(links) >= max {
			return false
		}

		href, exists := s.Attr("href")
		if !exists || href == "" {
			return true
		}

		resolved, err := base.Parse(href)
		if err != nil {
			return true
		}
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return true
		}

		absURL := resolved.String()
		if _, ok := seen[absURL]; ok {
			return true
		}
		seen[absURL] = struct{}{}

		links = append(links, models.DeepLink{
			Text: models.StrPtr(strings.TrimSpace(s.Text())),
			URL:  models.StrPtr(absURL),
		})
		return true
	})

	return links
}
