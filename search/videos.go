package search

import (
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// extractVideos maps the video card carousel.
func extractVideos(s browser.Session, timeout time.Duration) []models.VideoResult {
	return mapRegion(s, selectors.RegionVideos, timeout, func(n browser.Node) models.VideoResult {
		var title, url, source, duration *string

		if t := n.First("h3, .cHaqb"); t != nil {
			title = models.StrPtr(t.Text())
		}
		if a := n.First("a[href]"); a != nil {
			url = a.Attr("href")
		}
		if src := n.First(".pcJO7e, .NqVJQd, cite"); src != nil {
			source = models.StrPtr(src.Text())
		}
		if d := n.First(".J1mWY, .k1U36b"); d != nil {
			duration = models.StrPtr(d.Text())
		}

		return models.VideoResult{Title: title, URL: url, Source: source, Duration: duration}
	})
}
