package search

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/selectors"
)

func TestCollectRegion_TimeoutYieldsNothing(t *testing.T) {
	s := &fakeSession{}
	nodes, pattern := collectRegion(s, selectors.RegionOrganic, 0)
	if nodes != nil || pattern != "" {
		t.Errorf("empty page should yield no nodes, got %d (pattern %q)", len(nodes), pattern)
	}
}

func TestCollectRegion_FallbackPattern(t *testing.T) {
	// Only the second organic pattern matches; the helper must fall
	// through to it within a single pass.
	patterns := selectors.Patterns(selectors.RegionOrganic)
	s := &fakeSession{
		regions: map[string][]*fakeNode{
			patterns[1]: {{text: "result"}},
		},
	}

	nodes, pattern := collectRegion(s, selectors.RegionOrganic, 0)
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(nodes))
	}
	if pattern != patterns[1] {
		t.Errorf("matched pattern = %q, want %q", pattern, patterns[1])
	}
}

func TestExtractOrganic_EmptyRegionIsEmptyList(t *testing.T) {
	s := &fakeSession{}
	results := extractOrganic(s, 0)
	if results == nil {
		t.Fatal("timeout must yield an empty list, not nil")
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func organicNode(title, href, snippet string) *fakeNode {
	n := &fakeNode{children: map[string][]*fakeNode{}}
	if title != "" {
		n.children["h3"] = []*fakeNode{{text: title}}
	}
	if href != "" {
		n.children["a[href]"] = []*fakeNode{{attrs: map[string]string{"href": href}}}
	}
	if snippet != "" {
		n.children[".VwiC3b, .IsZvec, .st"] = []*fakeNode{{text: snippet}}
	}
	return n
}

func TestExtractOrganic_PositionsAndDefaults(t *testing.T) {
	pattern := selectors.Primary(selectors.RegionOrganic)
	s := &fakeSession{
		regions: map[string][]*fakeNode{
			pattern: {
				organicNode("First", "https://a.test", "snippet a"),
				organicNode("Second", "https://b.test", ""),
				organicNode("", "", ""),
			},
		},
	}

	results := extractOrganic(s, 0)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	for i, r := range results {
		if r.Position != i+1 {
			t.Errorf("result %d position = %d, want contiguous 1-based ranks", i, r.Position)
		}
		if r.FollowUpSearched {
			t.Errorf("result %d starts follow-up-searched", i)
		}
		if r.DeepLinks == nil {
			t.Errorf("result %d deep links should be an empty list, not nil", i)
		}
	}

	if results[0].Title == nil || *results[0].Title != "First" {
		t.Errorf("first title = %v", results[0].Title)
	}
	if results[1].Snippet != nil {
		t.Errorf("missing snippet should map to nil, got %q", *results[1].Snippet)
	}
	if results[2].Title != nil || results[2].URL != nil {
		t.Error("bare node should map every content field to nil")
	}
}

func TestExtractOrganic_DeepLinks(t *testing.T) {
	n := organicNode("Docs", "https://docs.test", "")
	n.children["a.fl, .HiHjCd a"] = []*fakeNode{
		{text: "Install", attrs: map[string]string{"href": "https://docs.test/install"}},
		{text: "FAQ", attrs: map[string]string{"href": "https://docs.test/faq"}},
	}
	s := &fakeSession{
		regions: map[string][]*fakeNode{
			selectors.Primary(selectors.RegionOrganic): {n},
		},
	}

	results := extractOrganic(s, 0)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	links := results[0].DeepLinks
	if len(links) != 2 {
		t.Fatalf("got %d deep links, want 2", len(links))
	}
	if *links[0].Text != "Install" || *links[1].Text != "FAQ" {
		t.Errorf("deep link order not preserved: %v, %v", *links[0].Text, *links[1].Text)
	}
}

func TestExtractFeatured_ContentTruncation(t *testing.T) {
	long := strings.Repeat("a", 150)
	n := &fakeNode{children: map[string][]*fakeNode{
		".hgKElc, .LGOjhe, .wDYxhc": {{text: long}},
	}}
	s := &fakeSession{
		regions: map[string][]*fakeNode{
			selectors.Primary(selectors.RegionFeatured): {n},
		},
	}

	snippets := extractFeatured(s, 0)
	if len(snippets) != 1 {
		t.Fatalf("got %d snippets, want 1", len(snippets))
	}
	content := snippets[0].Content
	if content == nil {
		t.Fatal("content is nil")
	}
	if n := utf8.RuneCountInString(*content); n != models.SnippetLimit+1 {
		t.Errorf("content = %d glyphs, want %d (100 chars + one ellipsis)", n, models.SnippetLimit+1)
	}
	if !strings.HasPrefix(long, strings.TrimSuffix(*content, models.Ellipsis)) {
		t.Error("stored content is not a prefix of the original")
	}
}

func TestExtractRelated_AnchorsMapDirectly(t *testing.T) {
	pattern := selectors.Primary(selectors.RegionRelated)
	s := &fakeSession{
		regions: map[string][]*fakeNode{
			pattern: {
				{text: "headless chrome", attrs: map[string]string{"href": "/search?q=headless+chrome"}},
				{text: "browser automation"},
			},
		},
	}

	related := extractRelated(s, 0)
	if len(related) != 2 {
		t.Fatalf("got %d related searches, want 2", len(related))
	}
	if *related[0].Query != "headless chrome" || *related[0].URL != "/search?q=headless+chrome" {
		t.Errorf("first related search mapped wrong: %+v", related[0])
	}
	if related[1].URL != nil {
		t.Error("anchor without href should map URL to nil")
	}
}

func TestExtractImages_RawAttributes(t *testing.T) {
	pattern := selectors.Primary(selectors.RegionImages)
	s := &fakeSession{
		regions: map[string][]*fakeNode{
			pattern: {
				{attrs: map[string]string{"src": "https://img.test/a.png", "alt": "diagram"}},
				{attrs: map[string]string{"data-src": "https://img.test/lazy.png"}},
			},
		},
	}

	images := extractImages(s, 0)
	if len(images) != 2 {
		t.Fatalf("got %d images, want 2", len(images))
	}
	if *images[0].Src != "https://img.test/a.png" || *images[0].Alt != "diagram" {
		t.Errorf("raw attributes lost: %+v", images[0])
	}
	if *images[0].Title != "diagram" {
		t.Errorf("title should fall back to alt, got %v", images[0].Title)
	}
	if *images[1].Src != "https://img.test/lazy.png" {
		t.Errorf("data-src fallback missing: %+v", images[1])
	}
	if images[1].Alt != nil {
		t.Error("absent alt should stay nil")
	}
}
