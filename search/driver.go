package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/config"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// submitSearch drives the page through one search submission:
//
//  1. Navigate to the search surface and settle.
//  2. Locate the input control via the ordered fallback pattern list.
//  3. Type the query and press Enter.
//  4. Settle again, then wait for the results container.
//
// The only fatal outcome is no input control matching any pattern. A results
// container that never appears is logged and tolerated: each extractor
// re-checks for its own region before giving up.
func submitSearch(ctx context.Context, s browser.Session, cfg config.SearchConfig, query string) error {
	if err := s.Navigate(ctx, cfg.BaseURL, cfg.NavTimeout); err != nil {
		return err
	}
	settle(ctx, cfg.SettleDelay)

	control, pattern := findSearchInput(s)
	if control == nil {
		return models.NewSearchError(
			models.ErrCodeSearchInputNotFound,
			"no search input control matched any fallback pattern",
			nil,
		)
	}
	slog.Info("search input located", "pattern", pattern)

	if err := s.Type(control, query); err != nil {
		return err
	}
	if err := s.PressKey("Enter"); err != nil {
		return err
	}
	settle(ctx, cfg.SettleDelay)

	if !s.WaitForRegion(selectors.Primary(selectors.RegionResultsContainer), cfg.ResultsTimeout) {
		slog.Warn("results container did not appear in time, extractors will re-check",
			"timeout", cfg.ResultsTimeout)
	}
	return nil
}

// findSearchInput tries each input pattern in order and returns the first
// control found. First match wins; later patterns are not attempted.
func findSearchInput(s browser.Session) (browser.Node, string) {
	for _, pattern := range selectors.Patterns(selectors.RegionSearchInput) {
		if control, ok := s.FindControl(pattern); ok {
			return control, pattern
		}
	}
	return nil, ""
}

// settle sleeps for the configured delay to absorb asynchronous rendering,
// returning early when the context expires.
func settle(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
