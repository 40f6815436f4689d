// Package browser owns the automation-engine capability surface. The rest of
// the pipeline talks to a Session and never to the engine directly, so
// extractors and the driver can run against a fake in tests.
package browser

import (
	"context"
	"time"
)

// Node is a handle to one DOM element. Reads never fail loudly: a node whose
// backing element has detached reports empty text and absent attributes.
type Node interface {
	// Text returns the element's visible text, "" when unavailable.
	Text() string

	// Attr returns the named attribute, nil when absent.
	Attr(name string) *string

	// First returns the first descendant matching the pattern, nil when
	// nothing matches. It does not wait.
	First(pattern string) Node

	// All returns every descendant matching the pattern in document order.
	All(pattern string) []Node
}

// Session is the capability surface over one browser page. All calls against
// one session are sequential; a session must not be shared across concurrent
// units.
type Session interface {
	// Navigate loads the URL and waits for the DOM to settle, bounded by
	// the timeout.
	Navigate(ctx context.Context, url string, timeout time.Duration) error

	// FindControl returns the first element matching the pattern without
	// waiting. The boolean reports whether a match exists.
	FindControl(pattern string) (Node, bool)

	// Type inserts text into a control previously located via FindControl.
	Type(n Node, text string) error

	// PressKey dispatches a keyboard key ("Enter", "Escape", "Tab").
	PressKey(key string) error

	// WaitForRegion polls for the pattern up to the timeout and reports
	// whether it appeared. Expiry is an answer, not an error.
	WaitForRegion(pattern string, timeout time.Duration) bool

	// QueryAll returns every element currently matching the pattern in
	// document order. It does not wait.
	QueryAll(pattern string) []Node

	// HTML returns the rendered document markup.
	HTML() (string, error)

	// PageTitle returns the document title, "" when unavailable.
	PageTitle() string

	// Screenshot writes a full-page capture to path.
	Screenshot(path string) error

	// Close releases the page. Safe to call once per session.
	Close() error
}
