package models

import "time"

// DeepLink is a secondary link published under an organic result.
type DeepLink struct {
	Text *string `json:"text"`
	URL  *string `json:"url"`
}

// FollowUpResult is the supplementary content captured by visiting an organic
// result's target URL.
type FollowUpResult struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	URL     string `json:"url"`
}

// OrganicResult is one entry of the main result list. Position is the 1-based
// rank in DOM encounter order. All content fields are nullable: a field absent
// in the page yields nil, which is a valid extraction outcome rather than an
// error.
//
// FollowUpSearched transitions false->true exactly once, set only by the
// follow-up resolver on a successful hop. It is the only field of an entry
// that mutates after extraction.
type OrganicResult struct {
	Position         int             `json:"position"`
	Title            *string         `json:"title"`
	URL              *string         `json:"url"`
	Snippet          *string         `json:"snippet"`
	DeepLinks        []DeepLink      `json:"deep_links"`
	FollowUpSearched bool            `json:"followup_searched"`
	FollowUpResult   *FollowUpResult `json:"followup_result,omitempty"`
}

// FeaturedSnippet is the answer box shown above organic results. Content is
// truncated to SnippetLimit runes with a trailing ellipsis when longer.
type FeaturedSnippet struct {
	Content *string `json:"content"`
	Source  *string `json:"source"`
	URL     *string `json:"url"`
}

// RelatedQuestion is one "people also ask" entry.
type RelatedQuestion struct {
	Question *string `json:"question"`
	Snippet  *string `json:"snippet"`
}

// RelatedSearch is one suggested alternative query.
type RelatedSearch struct {
	Query *string `json:"query"`
	URL   *string `json:"url"`
}

// VideoResult describes one video card.
type VideoResult struct {
	Title    *string `json:"title"`
	URL      *string `json:"url"`
	Source   *string `json:"source"`
	Duration *string `json:"duration"`
}

// ImageResult describes one image cell. Src and Alt carry the raw element
// attributes; Title is the human-readable caption when one exists.
type ImageResult struct {
	Title *string `json:"title"`
	Src   *string `json:"src"`
	Alt   *string `json:"alt"`
	URL   *string `json:"url"`
}

// AggregateResult combines all requested region extractions for one query run.
//
// Each region list distinguishes absent from empty: a nil slice means the
// category was not requested and its key is omitted from serialized output
// (omitzero); a non-nil empty slice means the category was requested and the
// region yielded zero records. Query and Timestamp are stamped once when
// aggregation starts.
type AggregateResult struct {
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`

	OrganicResults   []OrganicResult   `json:"organic_results,omitzero"`
	FeaturedSnippets []FeaturedSnippet `json:"featured_snippets,omitzero"`
	RelatedQuestions []RelatedQuestion `json:"related_questions,omitzero"`
	RelatedSearches  []RelatedSearch   `json:"related_searches,omitzero"`
	VideoResults     []VideoResult     `json:"video_results,omitzero"`
	ImageResults     []ImageResult     `json:"image_results,omitzero"`

	// PageText is a short excerpt of the visible page body, captured on every
	// run regardless of category configuration.
	PageText *string `json:"page_text,omitempty"`
}

// StrPtr returns a pointer to s, or nil when s is empty. Extractors use it to
// map missing DOM text to an absent field.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
