// Package selectors is the static registry of CSS patterns for each logical
// region of the results page. Every region maps to an ordered fallback list:
// callers try patterns front to back and stop at the first that matches, which
// keeps extraction resilient against markup variation between page versions.
package selectors

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

// Region names every known portion of the rendered document.
type Region string

const (
	RegionSearchInput      Region = "search_input"
	RegionResultsContainer Region = "results_container"
	RegionOrganic          Region = "organic"
	RegionFeatured         Region = "featured"
	RegionQuestions        Region = "questions"
	RegionRelated          Region = "related"
	RegionVideos           Region = "videos"
	RegionImages           Region = "images"
)

// registry holds the fallback pattern list per region. Order matters: the
// most specific current-markup pattern goes first, legacy variants after.
var registry = map[Region][]string{
	RegionSearchInput: {
		`textarea[name="q"]`,
		`input[name="q"]`,
		`textarea[title="Search"]`,
		`input[title="Search"]`,
		`[role="combobox"]`,
	},
	RegionResultsContainer: {
		`#search`,
		`#rso`,
		`#main`,
	},
	RegionOrganic: {
		`#search .g`,
		`#rso .g`,
		`#search .MjjYud`,
		`div.g`,
	},
	RegionFeatured: {
		`.xpdopen`,
		`.g-blk`,
		`.kp-blk`,
	},
	RegionQuestions: {
		`.related-question-pair`,
		`[jsname="yEVEwb"]`,
		`div[data-initq]`,
	},
	RegionRelated: {
		`#botstuff a[href*="/search"]`,
		`.k8XOCe`,
		`.s75CSd`,
	},
	RegionVideos: {
		`video-voyager`,
		`.dXiKIc`,
		`.RzdJxc`,
	},
	RegionImages: {
		`g-img img`,
		`img.rg_i`,
		`#search img[data-src]`,
	},
}

// Patterns returns the ordered fallback list for a region. The returned slice
// must not be modified.
func Patterns(r Region) []string {
	return registry[r]
}

// Primary returns the first (preferred) pattern for a region.
func Primary(r Region) string {
	p := registry[r]
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Validate compiles every registered pattern with cascadia and reports the
// first malformed one. Run from tests so a bad edit fails fast instead of
// silently matching nothing at runtime.
func Validate() error {
	for region, patterns := range registry {
		for _, p := range patterns {
			if _, err := cascadia.Parse(p); err != nil {
				return fmt.Errorf("region %s: bad pattern %q: %w", region, p, err)
			}
		}
	}
	return nil
}
