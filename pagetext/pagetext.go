// Package pagetext turns rendered HTML into plain-text excerpts for follow-up
// and crawl captures.
package pagetext

import (
	"bytes"
	"log/slog"
	nurl "net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// minContentLength is the minimum TextContent length (in characters) for
// readability output to be considered valid. Below this threshold we assume
// the algorithm failed to locate the main content and fall back to stripping
// the raw HTML.
const minContentLength = 50

// Excerpt extracts a readable title and body text from rawHTML. It runs the
// Mozilla Readability algorithm first and falls back to a plain visible-text
// pass when readability fails or finds too little content. The returned text
// is whitespace-collapsed but not truncated; callers apply their own limit.
func Excerpt(rawHTML, sourceURL string) (title, text string) {
	parsedURL, err := nurl.Parse(sourceURL)
	if err == nil {
		article, rerr := readability.FromReader(strings.NewReader(rawHTML), parsedURL)
		if rerr == nil && len(strings.TrimSpace(article.TextContent)) >= minContentLength {
			return strings.TrimSpace(article.Title), collapse(article.TextContent)
		}
		if rerr != nil {
			slog.Debug("readability extraction failed, falling back to visible text",
				"url", sourceURL, "error", rerr)
		}
	}
	return "", VisibleText([]byte(rawHTML))
}

// VisibleText extracts the visible text from within <body>, stripping all
// tags and <script>/<style>/<noscript> content.
func VisibleText(body []byte) string {
	tokenizer := html.NewTokenizer(bytes.NewReader(body))
	var buf strings.Builder
	inBody := false
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(buf.String())
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			tag := string(tn)
			if tag == "body" {
				inBody = true
			}
			if tag == "script" || tag == "style" || tag == "noscript" {
				skipDepth++
			}
		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			tag := string(tn)
			if tag == "script" || tag == "style" || tag == "noscript" {
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			if inBody && skipDepth == 0 {
				text := strings.TrimSpace(string(tokenizer.Text()))
				if text != "" {
					buf.WriteString(text)
					buf.WriteByte(' ')
				}
			}
		}
	}
}

// Title extracts the <title> content from raw HTML bytes.
func Title(body []byte) string {
	tokenizer := html.NewTokenizer(bytes.NewReader(body))
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			if string(tn) == "title" {
				if tokenizer.Next() == html.TextToken {
					return strings.TrimSpace(string(tokenizer.Text()))
				}
				return ""
			}
		}
	}
}

// collapse folds runs of whitespace into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
