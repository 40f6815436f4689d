package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sparktsao/WebSearchPup/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"puppeteer tutorial", "puppeteer-tutorial"},
		{"Golang Tutorial", "golang-tutorial"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"c++ & go!", "c-go"},
		{"already-slugged", "already-slugged"},
		{"123 numbers", "123-numbers"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSave_WritesOneFilePerFormat(t *testing.T) {
	dir := t.TempDir()
	agg := &models.AggregateResult{
		Query:          "q",
		Timestamp:      time.Now().UTC(),
		OrganicResults: []models.OrganicResult{},
	}

	if err := Save(agg, []string{"json", "txt", "csv", "html"}, dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	for _, ext := range []string{"json", "txt", "csv", "html"} {
		path := filepath.Join(dir, BaseName+"."+ext)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

type fakeShooter struct {
	paths []string
}

func (f *fakeShooter) Screenshot(path string) error {
	f.paths = append(f.paths, path)
	return nil
}

func TestSaveScreenshot_CreatesDirAndUsesCanonicalPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-yet-created")
	shooter := &fakeShooter{}

	if err := SaveScreenshot(shooter, dir); err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
	if len(shooter.paths) != 1 || shooter.paths[0] != ScreenshotPath(dir) {
		t.Errorf("captured to %v, want %q", shooter.paths, ScreenshotPath(dir))
	}
}

func TestSave_UnsupportedFormatSkippedNotFatal(t *testing.T) {
	dir := t.TempDir()
	agg := &models.AggregateResult{Query: "q", Timestamp: time.Now().UTC()}

	if err := Save(agg, []string{"xml", "json"}, dir); err != nil {
		t.Fatalf("one bad format must not fail the batch: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, BaseName+".xml")); !os.IsNotExist(err) {
		t.Error("no partial file may be written for an unsupported format")
	}
	if _, err := os.Stat(filepath.Join(dir, BaseName+".json")); err != nil {
		t.Errorf("supported format should still be written: %v", err)
	}
}
