package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/pagetext"
)

// Resolver performs the secondary navigation into one organic entry's target
// URL. It is the single writer of the entry's FollowUpSearched flag and
// FollowUpResult field; every other component only reads them.
type Resolver struct {
	session    browser.Session
	navTimeout time.Duration
}

// NewResolver wires a resolver to a session.
func NewResolver(s browser.Session, navTimeout time.Duration) *Resolver {
	return &Resolver{session: s, navTimeout: navTimeout}
}

// Resolve navigates to the entry's URL, captures the page title and a bounded
// body-text excerpt, and records the outcome on the entry.
//
// It returns nil without side effects when the entry has no URL, was already
// followed up, or maxDepth is not positive — safe to call speculatively in a
// loop without duplicate navigation. Any navigation or extraction failure
// also yields nil and leaves FollowUpSearched untouched, so a later retry is
// still possible.
//
// maxDepth above one is accepted but a single call performs at most one hop;
// deeper chaining is reserved.
func (r *Resolver) Resolve(ctx context.Context, entry *models.OrganicResult, maxDepth int) *models.FollowUpResult {
	if entry == nil || entry.URL == nil || *entry.URL == "" {
		return nil
	}
	if entry.FollowUpSearched || maxDepth <= 0 {
		return nil
	}

	url := *entry.URL
	if err := r.session.Navigate(ctx, url, r.navTimeout); err != nil {
		slog.Warn("follow-up navigation failed", "url", url, "error", err)
		return nil
	}

	html, err := r.session.HTML()
	if err != nil {
		slog.Warn("follow-up page read failed", "url", url, "error", err)
		return nil
	}

	title := r.session.PageTitle()
	readableTitle, text := pagetext.Excerpt(html, url)
	if title == "" {
		title = readableTitle
	}

	result := &models.FollowUpResult{
		Title:   title,
		Excerpt: models.Truncate(text, models.ExcerptLimit),
		URL:     url,
	}

	entry.FollowUpSearched = true
	entry.FollowUpResult = result
	slog.Info("follow-up captured", "url", url, "position", entry.Position)
	return result
}
