package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sparktsao/WebSearchPup/browser"
	"github.com/sparktsao/WebSearchPup/config"
	"github.com/sparktsao/WebSearchPup/output"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// orderedNode is a minimal DOM stand-in for pipeline ordering tests.
type orderedNode struct {
	text     string
	attrs    map[string]string
	children map[string][]*orderedNode
}

func (n *orderedNode) Text() string { return n.text }

func (n *orderedNode) Attr(name string) *string {
	if v, ok := n.attrs[name]; ok {
		return &v
	}
	return nil
}

func (n *orderedNode) First(pattern string) browser.Node {
	if kids := n.children[pattern]; len(kids) > 0 {
		return kids[0]
	}
	return nil
}

func (n *orderedNode) All(pattern string) []browser.Node {
	kids := n.children[pattern]
	out := make([]browser.Node, 0, len(kids))
	for _, k := range kids {
		out = append(out, k)
	}
	return out
}

// orderedSession records every navigation and screenshot in call order.
type orderedSession struct {
	controls map[string]*orderedNode
	regions  map[string][]*orderedNode
	events   []string
}

func (s *orderedSession) Navigate(_ context.Context, url string, _ time.Duration) error {
	s.events = append(s.events, "navigate:"+url)
	return nil
}

func (s *orderedSession) FindControl(pattern string) (browser.Node, bool) {
	if c, ok := s.controls[pattern]; ok {
		return c, true
	}
	return nil, false
}

func (s *orderedSession) Type(browser.Node, string) error { return nil }
func (s *orderedSession) PressKey(string) error           { return nil }

func (s *orderedSession) WaitForRegion(pattern string, _ time.Duration) bool {
	return len(s.regions[pattern]) > 0
}

func (s *orderedSession) QueryAll(pattern string) []browser.Node {
	nodes := s.regions[pattern]
	out := make([]browser.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}

func (s *orderedSession) HTML() (string, error) {
	return "<html><head><title>Target</title></head><body><p>target body text</p></body></html>", nil
}

func (s *orderedSession) PageTitle() string { return "Target" }

func (s *orderedSession) Screenshot(path string) error {
	s.events = append(s.events, "screenshot")
	return os.WriteFile(path, []byte("png"), 0o644)
}

func (s *orderedSession) Close() error { return nil }

func pipelineConfig() *config.Config {
	return &config.Config{
		Search: config.SearchConfig{
			BaseURL:       "https://serp.test",
			Categories:    config.CategorySet{Organic: true},
			FollowUpDepth: 1,
		},
		Output: config.OutputConfig{
			Formats:    []string{"json"},
			Screenshot: true,
		},
	}
}

func TestPipeline_ScreenshotBeforeFollowUpNavigation(t *testing.T) {
	s := &orderedSession{
		controls: map[string]*orderedNode{
			selectors.Primary(selectors.RegionSearchInput): {},
		},
		regions: map[string][]*orderedNode{
			selectors.Primary(selectors.RegionOrganic): {{
				children: map[string][]*orderedNode{
					"h3":      {{text: "Result one"}},
					"a[href]": {{attrs: map[string]string{"href": "https://target.test/a"}}},
				},
			}},
		},
	}
	dir := t.TempDir()

	if err := pipeline(context.Background(), nil, s, pipelineConfig(), "q", dir); err != nil {
		t.Fatalf("pipeline: %v", err)
	}

	shot, followNav := -1, -1
	for i, ev := range s.events {
		switch ev {
		case "screenshot":
			shot = i
		case "navigate:https://target.test/a":
			followNav = i
		}
	}
	if shot == -1 {
		t.Fatal("no screenshot was taken")
	}
	if followNav == -1 {
		t.Fatal("follow-up never navigated to the top organic entry")
	}
	if shot > followNav {
		t.Errorf("screenshot at event %d, follow-up navigation at %d: the capture must show the results page, not the follow-up target", shot, followNav)
	}

	if _, err := os.Stat(output.ScreenshotPath(dir)); err != nil {
		t.Errorf("screenshot file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, output.BaseName+".json")); err != nil {
		t.Errorf("result file missing: %v", err)
	}
}
