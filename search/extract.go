package search

import (
	"log/slog"
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// pollInterval is the delay between region presence checks.
const pollInterval = 250 * time.Millisecond

// mapRegion is the shared polling routine behind all six extractors. It polls
// the region's fallback patterns until the first one yields nodes or the
// timeout expires, then applies the variant's node-to-record mapping. A
// timeout produces an empty, non-nil list: an absent region is a valid
// outcome, never an error.
func mapRegion[T any](s browser.Session, region selectors.Region, timeout time.Duration, mapNode func(browser.Node) T) []T {
	nodes, pattern := collectRegion(s, region, timeout)
	if pattern != "" {
		slog.Debug("region matched", "region", region, "pattern", pattern, "nodes", len(nodes))
	} else {
		slog.Info("region not found within timeout", "region", region, "timeout", timeout)
	}

	records := make([]T, 0, len(nodes))
	for _, n := range nodes {
		records = append(records, mapNode(n))
	}
	return records
}

// collectRegion polls each fallback pattern in order until one matches or the
// deadline passes. It returns the matched nodes and the winning pattern, or
// (nil, "") on timeout. Every pattern gets at least one attempt even with a
// zero timeout.
func collectRegion(s browser.Session, region selectors.Region, timeout time.Duration) ([]browser.Node, string) {
	deadline := time.Now().Add(timeout)
	for {
		for _, pattern := range selectors.Patterns(region) {
			if nodes := s.QueryAll(pattern); len(nodes) > 0 {
				return nodes, pattern
			}
		}
		if !time.Now().Before(deadline) {
			return nil, ""
		}
		time.Sleep(pollInterval)
	}
}
