package search

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/sparktsao/WebSearchPup/config"
	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/selectors"
)

// populatedSession builds a fake page with an input control, one organic
// result and body text. Fresh per call so parallel runs never share state.
func populatedSession() *fakeSession {
	return &fakeSession{
		controls: map[string]*fakeNode{
			selectors.Primary(selectors.RegionSearchInput): {},
		},
		regions: map[string][]*fakeNode{
			selectors.Primary(selectors.RegionOrganic): {
				organicNode("Result one", "https://one.test", "first snippet"),
			},
			"body": {{text: "full page body text"}},
		},
	}
}

func TestRun_QueryVerbatimAndTimestamp(t *testing.T) {
	query := "  Golang tutorial  " // caller whitespace preserved untouched
	orch := NewOrchestrator(populatedSession(), driverConfig())

	before := time.Now().UTC()
	agg, err := orch.Run(context.Background(), query)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	after := time.Now().UTC()

	if agg.Query != query {
		t.Errorf("query = %q, want verbatim %q", agg.Query, query)
	}
	if agg.Timestamp.Before(before) || agg.Timestamp.After(after) {
		t.Errorf("timestamp %v outside extraction window [%v, %v]", agg.Timestamp, before, after)
	}
}

func TestRun_AbsentVersusEmpty(t *testing.T) {
	s := populatedSession()
	cfg := driverConfig()
	cfg.Categories = config.CategorySet{Organic: true, Videos: true} // others not requested

	agg, err := NewOrchestrator(s, cfg).Run(context.Background(), "q")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(agg.OrganicResults) != 1 {
		t.Errorf("organic results = %d, want 1", len(agg.OrganicResults))
	}
	if agg.VideoResults == nil {
		t.Error("requested videos with zero matches must be empty, not absent")
	}
	if len(agg.VideoResults) != 0 {
		t.Errorf("video results = %d, want 0", len(agg.VideoResults))
	}
	if agg.FeaturedSnippets != nil || agg.RelatedQuestions != nil ||
		agg.RelatedSearches != nil || agg.ImageResults != nil {
		t.Error("unrequested categories must stay absent")
	}
}

func TestRun_PageTextAlwaysCaptured(t *testing.T) {
	s := populatedSession()
	longBody := strings.Repeat("b", 500)
	s.regions["body"] = []*fakeNode{{text: longBody}}
	cfg := driverConfig()
	cfg.Categories = config.CategorySet{} // no categories at all

	agg, err := NewOrchestrator(s, cfg).Run(context.Background(), "q")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if agg.PageText == nil {
		t.Fatal("page text must be captured regardless of category configuration")
	}
	if n := utf8.RuneCountInString(*agg.PageText); n != models.SnippetLimit+1 {
		t.Errorf("page text = %d glyphs, want %d", n, models.SnippetLimit+1)
	}
}

func TestRun_CollectorDoesNotAffectResults(t *testing.T) {
	withOrch := NewOrchestrator(populatedSession(), driverConfig())
	withOrch.SetCollector(NewCollector())
	withAgg, err := withOrch.Run(context.Background(), "q")
	if err != nil {
		t.Fatalf("Run with collector: %v", err)
	}

	withoutAgg, err := NewOrchestrator(populatedSession(), driverConfig()).Run(context.Background(), "q")
	if err != nil {
		t.Fatalf("Run without collector: %v", err)
	}

	// Timestamps necessarily differ between runs; everything else must not.
	withAgg.Timestamp = withoutAgg.Timestamp
	if !reflect.DeepEqual(withAgg, withoutAgg) {
		t.Errorf("collector changed the aggregate:\nwith:    %+v\nwithout: %+v", withAgg, withoutAgg)
	}

	if len(withOrch.Timings()) == 0 {
		t.Error("collector recorded no timings")
	}
}

func TestRun_CategoryPanicIsIsolated(t *testing.T) {
	s := populatedSession()
	// A region node whose mapping panics: organic First() panics when
	// children is consulted via a poisoned node.
	s.regions[selectors.Primary(selectors.RegionOrganic)] = []*fakeNode{nil}

	cfg := driverConfig()
	agg, err := NewOrchestrator(s, cfg).Run(context.Background(), "q")
	if err != nil {
		t.Fatalf("a panicking category must not abort the run: %v", err)
	}
	if agg.PageText == nil {
		t.Error("categories after the panicking one did not run")
	}
}

func TestRun_FatalDriverErrorPropagates(t *testing.T) {
	s := populatedSession()
	s.controls = nil // no input control anywhere

	_, err := NewOrchestrator(s, driverConfig()).Run(context.Background(), "q")
	if err == nil {
		t.Fatal("missing search input must abort the run")
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	stop := c.Track("step")
	stop() // must not panic
	if c.Snapshot() != nil {
		t.Error("nil collector snapshot should be nil")
	}
}
