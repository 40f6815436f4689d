package search

import (
	"context"
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
)

// fakeNode is an in-memory Node for extractor tests.
type fakeNode struct {
	text     string
	attrs    map[string]string
	children map[string][]*fakeNode // keyed by the exact query pattern
}

func (n *fakeNode) Text() string { return n.text }

func (n *fakeNode) Attr(name string) *string {
	if v, ok := n.attrs[name]; ok {
		return &v
	}
	return nil
}

func (n *fakeNode) First(pattern string) browser.Node {
	if kids := n.children[pattern]; len(kids) > 0 {
		return kids[0]
	}
	return nil
}

func (n *fakeNode) All(pattern string) []browser.Node {
	kids := n.children[pattern]
	out := make([]browser.Node, 0, len(kids))
	for _, k := range kids {
		out = append(out, k)
	}
	return out
}

// fakeSession is an in-memory Session recording every capability call.
type fakeSession struct {
	controls map[string]*fakeNode   // FindControl pattern -> control
	regions  map[string][]*fakeNode // QueryAll pattern -> nodes
	title    string
	html     string
	htmlErr  error
	navErr   error

	navigations []string
	findCalls   []string
	typed       []string
	keys        []string
	waited      []string
	closed      bool
}

func (s *fakeSession) Navigate(_ context.Context, url string, _ time.Duration) error {
	s.navigations = append(s.navigations, url)
	return s.navErr
}

func (s *fakeSession) FindControl(pattern string) (browser.Node, bool) {
	s.findCalls = append(s.findCalls, pattern)
	if c, ok := s.controls[pattern]; ok {
		return c, true
	}
	return nil, false
}

func (s *fakeSession) Type(_ browser.Node, text string) error {
	s.typed = append(s.typed, text)
	return nil
}

func (s *fakeSession) PressKey(key string) error {
	s.keys = append(s.keys, key)
	return nil
}

func (s *fakeSession) WaitForRegion(pattern string, _ time.Duration) bool {
	s.waited = append(s.waited, pattern)
	return len(s.regions[pattern]) > 0
}

func (s *fakeSession) QueryAll(pattern string) []browser.Node {
	nodes := s.regions[pattern]
	out := make([]browser.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}

func (s *fakeSession) HTML() (string, error) { return s.html, s.htmlErr }
func (s *fakeSession) PageTitle() string     { return s.title }

func (s *fakeSession) Screenshot(string) error { return nil }

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}
