package analysis

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
)

// stubParser derives fields from file content so tests need no real images.
type stubParser struct{}

func (stubParser) Parse(path string) ([]metadata.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(data)
	switch {
	case strings.Contains(content, "corrupt"):
		return nil, &metadata.ParseError{Path: path, Err: errors.New("bad container")}
	case strings.Contains(content, "gps"):
		return []metadata.Field{
			{Tag: model.TagGPSLatitude, Value: "40.7128"},
			{Tag: model.TagISO, Value: "100"},
		}, nil
	default:
		return []metadata.Field{{Tag: model.TagISO, Value: "100"}}, nil
	}
}

func scanFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanSingleFile(t *testing.T) {
	path := scanFixture(t, t.TempDir(), "photo.jpg", "gps data")
	a := New(policy.ForLevel(model.LevelMinimal))

	reports, err := Scan(stubParser{}, a, path, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if len(reports[0].Findings) != 1 {
		t.Errorf("expected 1 finding, got %v", reports[0].Findings)
	}
}

func TestScanUnsupportedSingleFile(t *testing.T) {
	path := scanFixture(t, t.TempDir(), "notes.txt", "gps data")
	a := New(policy.ForLevel(model.LevelMinimal))

	if _, err := Scan(stubParser{}, a, path, false); err == nil {
		t.Error("expected error for unsupported file")
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	scanFixture(t, dir, "a.jpg", "gps data")
	scanFixture(t, dir, "b.jpg", "clean")
	scanFixture(t, dir, "c.jpg", "corrupt")
	scanFixture(t, dir, "readme.txt", "not an image")

	a := New(policy.ForLevel(model.LevelMinimal))
	reports, err := Scan(stubParser{}, a, dir, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}

	var withFindings, withErr int
	for _, r := range reports {
		if r.Err != nil {
			withErr++
		}
		if len(r.Findings) > 0 {
			withFindings++
		}
	}
	if withFindings != 1 {
		t.Errorf("expected 1 report with findings, got %d", withFindings)
	}
	if withErr != 1 {
		t.Errorf("expected 1 report with error, got %d", withErr)
	}
}

func TestScanRecursion(t *testing.T) {
	dir := t.TempDir()
	scanFixture(t, dir, "top.jpg", "clean")
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	scanFixture(t, sub, "nested.jpg", "clean")

	a := New(policy.ForLevel(model.LevelMinimal))

	flat, err := Scan(stubParser{}, a, dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(flat) != 1 {
		t.Errorf("non-recursive scan saw %d files, want 1", len(flat))
	}

	deep, err := Scan(stubParser{}, a, dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(deep) != 2 {
		t.Errorf("recursive scan saw %d files, want 2", len(deep))
	}
}

func TestScanMissingRoot(t *testing.T) {
	a := New(policy.ForLevel(model.LevelMinimal))
	if _, err := Scan(stubParser{}, a, filepath.Join(t.TempDir(), "missing"), false); err == nil {
		t.Error("expected error for missing path")
	}
}
