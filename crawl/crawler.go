// Package crawl fetches a bounded batch of follow-up URLs. Each concurrent
// unit owns its own browser page; pages are never shared between units.
package crawl

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/cache"
	"github.com/sparktsao/WebSearchPup/config"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/pagetext"
)

// maxCaptureLinks bounds the outbound links kept per captured page.
const maxCaptureLinks = 20

// Capture is the outcome of fetching one URL.
type Capture struct {
	URL     string            `json:"url"`
	Title   string            `json:"title,omitempty"`
	Excerpt string            `json:"excerpt,omitempty"`
	Links   []models.DeepLink `json:"links,omitempty"`

	// Method records how the page was fetched: "http" or "browser".
	Method string `json:"method,omitempty"`

	// Success is false when both fetch paths failed; Error carries the
	// reason. A failed capture never fails the batch.
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Crawler fetches page excerpts for a batch of URLs, HTTP-first with a
// browser fallback for pages that need JS rendering.
type Crawler struct {
	browser *browser.Browser
	cfg     config.CrawlConfig
	fetcher *httpFetcher
	limiter *rate.Limiter
	cache   *cache.Cache[Capture]
}

// New builds a crawler on top of a running browser.
func New(b *browser.Browser, cfg config.CrawlConfig, proxy string) *Crawler {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 1
	}
	return &Crawler{
		browser: b,
		cfg:     cfg,
		fetcher: newHTTPFetcher(proxy),
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		cache:   cache.New[Capture](cfg.CacheSize, cfg.CacheTTL),
	}
}

// FetchAll processes up to MaxURLs of the batch with the configured
// concurrency factor and returns captures in input order. Individual failures
// degrade to unsuccessful captures.
func (c *Crawler) FetchAll(ctx context.Context, urls []string) []Capture {
	if len(urls) > c.cfg.MaxURLs {
		slog.Warn("crawl batch truncated", "requested", len(urls), "max", c.cfg.MaxURLs)
		urls = urls[:c.cfg.MaxURLs]
	}

	captures := make([]Capture, len(urls))
	sem := make(chan struct{}, c.cfg.Concurrency)
	var wg sync.WaitGroup

	for i, u := range urls {
		wg.Add(1)
		go func(idx int, target string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := c.limiter.Wait(ctx); err != nil {
				captures[idx] = Capture{URL: target, Error: err.Error()}
				return
			}
			captures[idx] = c.fetchOne(ctx, target)
		}(i, u)
	}
	wg.Wait()

	return captures
}

// fetchOne tries the HTTP path first and escalates to a fresh browser page
// when the response looks like a JS shell or the HTTP fetch fails.
func (c *Crawler) fetchOne(ctx context.Context, target string) Capture {
	key := cache.Key(target)
	if cached, ok := c.cache.Get(key); ok {
		slog.Debug("crawl cache hit", "url", target)
		return cached
	}

	httpCtx, cancel := context.WithTimeout(ctx, c.cfg.HTTPTimeout)
	body, err := c.fetcher.fetch(httpCtx, target)
	cancel()

	if err == nil && !needsBrowser(body) {
		title, text := pagetext.Excerpt(string(body), target)
		if title == "" {
			title = pagetext.Title(body)
		}
		capture := Capture{
			URL:     target,
			Title:   title,
			Excerpt: models.Truncate(text, models.ExcerptLimit),
			Links:   pagetext.Links(string(body), target, maxCaptureLinks),
			Method:  "http",
			Success: true,
		}
		c.cache.Set(key, capture)
		return capture
	}
	if err != nil {
		slog.Debug("http fetch failed, escalating to browser", "url", target, "error", err)
	}

	capture := c.fetchWithBrowser(ctx, target)
	if capture.Success {
		c.cache.Set(key, capture)
	}
	return capture
}

func (c *Crawler) fetchWithBrowser(ctx context.Context, target string) Capture {
	session, err := c.browser.NewSession()
	if err != nil {
		return Capture{URL: target, Error: err.Error()}
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			slog.Warn("crawl session close failed", "url", target, "error", closeErr)
		}
	}()

	if err := session.Navigate(ctx, target, c.cfg.PageTimeout); err != nil {
		return Capture{URL: target, Error: err.Error()}
	}

	html, err := session.HTML()
	if err != nil {
		return Capture{URL: target, Error: err.Error()}
	}

	title := session.PageTitle()
	readableTitle, text := pagetext.Excerpt(html, target)
	if title == "" {
		title = readableTitle
	}

	return Capture{
		URL:     target,
		Title:   title,
		Excerpt: models.Truncate(text, models.ExcerptLimit),
		Links:   pagetext.Links(html, target, maxCaptureLinks),
		Method:  "browser",
		Success: true,
	}
}
