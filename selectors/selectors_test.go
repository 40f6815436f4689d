package selectors

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("registry contains a malformed pattern: %v", err)
	}
}

func TestPatterns_EveryRegionPopulated(t *testing.T) {
	regions := []Region{
		RegionSearchInput,
		RegionResultsContainer,
		RegionOrganic,
		RegionFeatured,
		RegionQuestions,
		RegionRelated,
		RegionVideos,
		RegionImages,
	}
	for _, r := range regions {
		if len(Patterns(r)) == 0 {
			t.Errorf("region %s has no fallback patterns", r)
		}
	}
}

func TestPrimary(t *testing.T) {
	if got := Primary(RegionOrganic); got != Patterns(RegionOrganic)[0] {
		t.Errorf("Primary = %q, want first registered pattern", got)
	}
	if got := Primary(Region("unknown")); got != "" {
		t.Errorf("unknown region Primary = %q, want empty", got)
	}
}
