// Package search drives one browser session through search submission, region
// extraction and optional follow-up resolution.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/config"
	"github.com/sparktsao/WebSearchPup/models"
)

// Orchestrator runs the full pipeline against one session. It is not safe for
// concurrent use: all extraction happens sequentially against the shared page.
type Orchestrator struct {
	session   browser.Session
	cfg       config.SearchConfig
	collector *Collector
}

// NewOrchestrator wires an orchestrator to a session.
func NewOrchestrator(s browser.Session, cfg config.SearchConfig) *Orchestrator {
	return &Orchestrator{session: s, cfg: cfg}
}

// SetCollector attaches an optional timing collector. The collector observes
// only; attaching or detaching one never changes results.
func (o *Orchestrator) SetCollector(c *Collector) {
	o.collector = c
}

// Run submits the query and aggregates every enabled region extraction.
//
// The aggregate is stamped with the verbatim query and the wall-clock time of
// extraction start. A disabled category is skipped entirely and stays absent
// from the aggregate; an enabled category that finds nothing yields an empty
// list. Only driver-level failures (no input control, navigation) abort the
// run; per-category trouble is logged and the remaining categories proceed.
func (o *Orchestrator) Run(ctx context.Context, query string) (*models.AggregateResult, error) {
	stopTotal := o.collector.Track("total")
	defer stopTotal()

	agg := &models.AggregateResult{
		Query:     query,
		Timestamp: time.Now().UTC(),
	}

	stopSearch := o.collector.Track("search")
	err := submitSearch(ctx, o.session, o.cfg, query)
	stopSearch()
	if err != nil {
		return nil, err
	}

	cats := o.cfg.Categories
	if cats.Organic {
		o.runCategory("organic", func() {
			agg.OrganicResults = extractOrganic(o.session, o.cfg.FirstRegionTimeout)
		})
	}
	if cats.Featured {
		o.runCategory("featured", func() {
			agg.FeaturedSnippets = extractFeatured(o.session, o.cfg.RegionTimeout)
		})
	}
	if cats.Questions {
		o.runCategory("questions", func() {
			agg.RelatedQuestions = extractQuestions(o.session, o.cfg.RegionTimeout)
		})
	}
	if cats.Related {
		o.runCategory("related", func() {
			agg.RelatedSearches = extractRelated(o.session, o.cfg.RegionTimeout)
		})
	}
	if cats.Videos {
		o.runCategory("videos", func() {
			agg.VideoResults = extractVideos(o.session, o.cfg.RegionTimeout)
		})
	}
	if cats.Images {
		o.runCategory("images", func() {
			agg.ImageResults = extractImages(o.session, o.cfg.RegionTimeout)
		})
	}

	o.runCategory("page_text", func() {
		agg.PageText = o.capturePageText()
	})

	slog.Info("aggregation complete",
		"query", query,
		"organic", len(agg.OrganicResults),
		"featured", len(agg.FeaturedSnippets),
		"questions", len(agg.RelatedQuestions),
		"related", len(agg.RelatedSearches),
		"videos", len(agg.VideoResults),
		"images", len(agg.ImageResults),
	)
	return agg, nil
}

// runCategory isolates one category: a panic inside an extractor is logged
// and swallowed so the remaining categories still run.
func (o *Orchestrator) runCategory(name string, fn func()) {
	stop := o.collector.Track(name)
	defer stop()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("category extraction failed", "category", name, "panic", r)
		}
	}()
	fn()
}

// capturePageText reads a short excerpt of the visible body text. Captured on
// every run regardless of category configuration.
func (o *Orchestrator) capturePageText() *string {
	nodes := o.session.QueryAll("body")
	if len(nodes) == 0 {
		return nil
	}
	text := nodes[0].Text()
	if text == "" {
		return nil
	}
	return models.TruncatePtr(&text, models.SnippetLimit)
}

// Timings returns the collector's snapshot, nil when no collector is set.
func (o *Orchestrator) Timings() models.Timings {
	return o.collector.Snapshot()
}
