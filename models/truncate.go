package models

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis is the single marker appended to every truncated text field.
const Ellipsis = "…"

// Truncation thresholds, in runes. The same SnippetLimit applies to featured
// snippet content and the page-text excerpt; ExcerptLimit applies to follow-up
// body excerpts.
const (
	SnippetLimit = 100
	ExcerptLimit = 1000
)

// Truncate cuts s to at most limit runes and appends the ellipsis marker.
// Truncation is a prefix operation and idempotent: a string that was already
// truncated to this limit passes through unchanged, so re-truncation never
// stacks markers.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if strings.HasSuffix(s, Ellipsis) &&
		utf8.RuneCountInString(strings.TrimSuffix(s, Ellipsis)) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + Ellipsis
}

// TruncatePtr applies Truncate through an optional field.
func TruncatePtr(s *string, limit int) *string {
	if s == nil {
		return nil
	}
	t := Truncate(*s, limit)
	return &t
}
