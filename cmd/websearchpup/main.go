// websearchpup drives a headless browser through one search run and persists
// the extracted results.
//
// Usage: websearchpup [query] [outputDir]
//
// The query defaults to the configured default query; the output directory
// defaults to a slugified form of the query.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/config"
	"github.com/sparktsao/WebSearchPup/crawl"
	"github.com/sparktsao/WebSearchPup/output"
	"github.com/sparktsao/WebSearchPup/search"
	"github.com/sparktsao/WebSearchPup/webhook"
)

func main() {
	cfg := config.Load()
	initLogger(cfg.Log)

	query := cfg.Search.DefaultQuery
	if len(os.Args) > 1 && os.Args[1] != "" {
		query = os.Args[1]
	}
	outDir := output.Slugify(query)
	if len(os.Args) > 2 && os.Args[2] != "" {
		outDir = os.Args[2]
	}

	if err := run(cfg, query, outDir); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, query, outDir string) error {
	ctx := context.Background()

	slog.Info("websearchpup starting",
		"query", query,
		"outputDir", outDir,
		"formats", cfg.Output.Formats,
	)

	b, err := browser.New(cfg.Browser)
	if err != nil {
		return err
	}
	defer b.Close()

	session, err := b.NewSession()
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			slog.Warn("session close failed", "error", err)
		}
	}()

	if err := pipeline(ctx, b, session, cfg, query, outDir); err != nil {
		return err
	}

	slog.Info("websearchpup finished", "query", query, "outputDir", outDir)
	return nil
}

// pipeline runs one search against an open session: aggregate, screenshot,
// follow up, persist, then the optional crawl batch and webhook.
func pipeline(ctx context.Context, b *browser.Browser, session browser.Session, cfg *config.Config, query, outDir string) error {
	orch := search.NewOrchestrator(session, cfg.Search)
	orch.SetCollector(search.NewCollector())

	agg, err := orch.Run(ctx, query)
	if err != nil {
		return err
	}

	// The screenshot must happen while the session still shows the results
	// page: the follow-up hop navigates the shared session away from it.
	if cfg.Output.Screenshot {
		if err := output.SaveScreenshot(session, outDir); err != nil {
			slog.Warn("screenshot failed", "error", err)
		}
	}

	// Follow up on the top organic entry when one carries a URL. A failed
	// hop degrades to a nil result and the run continues.
	if cfg.Search.FollowUpDepth > 0 && len(agg.OrganicResults) > 0 {
		resolver := search.NewResolver(session, cfg.Search.NavTimeout)
		if fu := resolver.Resolve(ctx, &agg.OrganicResults[0], cfg.Search.FollowUpDepth); fu == nil {
			slog.Warn("follow-up yielded no result", "position", 1)
		}
	}

	if err := output.Save(agg, cfg.Output.Formats, outDir); err != nil {
		return err
	}

	// Optionally crawl the remaining organic URLs as a bounded batch. The
	// first entry was already followed up on its own page.
	if cfg.Crawl.Enabled && len(agg.OrganicResults) > 1 {
		var urls []string
		for _, entry := range agg.OrganicResults[1:] {
			if entry.URL != nil && *entry.URL != "" {
				urls = append(urls, *entry.URL)
			}
		}
		if len(urls) > 0 {
			captures := crawl.New(b, cfg.Crawl, cfg.Browser.DefaultProxy).FetchAll(ctx, urls)
			if err := output.SaveCaptures(captures, outDir); err != nil {
				slog.Warn("crawl captures not saved", "error", err)
			}
		}
	}

	if cfg.Output.WebhookURL != "" {
		event := &webhook.Event{
			Type:      "search.completed",
			Query:     query,
			Timestamp: time.Now().Unix(),
			Data:      agg,
		}
		if err := webhook.DeliverWithRetry(ctx, cfg.Output.WebhookURL, cfg.Output.WebhookSecret, event); err != nil {
			slog.Warn("webhook delivery gave up", "error", err)
		}
	}

	for step, d := range orch.Timings() {
		slog.Debug("step timing", "step", step, "elapsed", d)
	}
	return nil
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
