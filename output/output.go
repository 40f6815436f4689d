// Package output persists rendered results to the output directory.
package output

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sparktsao/WebSearchPup/models"
	"github.com/sparktsao/WebSearchPup/render"
)

// BaseName is the stem of every persisted result file.
const BaseName = "search-results"

// CrawlBaseName is the stem of the crawl capture file.
const CrawlBaseName = "crawl-captures"

// Save renders the aggregate in each requested format and writes one file per
// format under dir. A single format failing to render or write is logged and
// skipped; the remaining formats still get written. The returned error is
// non-nil only when the directory itself cannot be created.
func Save(agg *models.AggregateResult, formats []string, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.NewSearchError(models.ErrCodeSaveFailed, "failed to create output directory", err)
	}

	for _, f := range formats {
		format := render.Format(f)
		content, err := render.Render(agg, format)
		if err != nil {
			slog.Error("render failed, skipping format", "format", f, "error", err)
			continue
		}

		path := filepath.Join(dir, BaseName+"."+string(format))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			slog.Error("write failed, skipping format", "path", path, "error", err)
			continue
		}
		slog.Info("result written", "path", path)
	}
	return nil
}

// SaveCaptures writes the crawl captures as indented JSON under dir.
func SaveCaptures(captures any, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.NewSearchError(models.ErrCodeSaveFailed, "failed to create output directory", err)
	}

	data, err := json.MarshalIndent(captures, "", "  ")
	if err != nil {
		return models.NewSearchError(models.ErrCodeSaveFailed, "failed to encode crawl captures", err)
	}

	path := filepath.Join(dir, CrawlBaseName+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return models.NewSearchError(models.ErrCodeSaveFailed, "failed to write crawl captures", err)
	}
	slog.Info("crawl captures written", "path", path)
	return nil
}

// ScreenshotPath returns the screenshot location under dir.
func ScreenshotPath(dir string) string {
	return filepath.Join(dir, BaseName+".png")
}

// Screenshotter captures the currently displayed page to a file.
type Screenshotter interface {
	Screenshot(path string) error
}

// SaveScreenshot captures the page to its location under dir, creating the
// directory when it does not exist yet.
func SaveScreenshot(s Screenshotter, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.NewSearchError(models.ErrCodeSaveFailed, "failed to create output directory", err)
	}
	return s.Screenshot(ScreenshotPath(dir))
}

// Slugify maps a query to a filesystem-friendly directory name: lowercase,
// runs of non-alphanumerics folded into single hyphens.
func Slugify(query string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(query) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
