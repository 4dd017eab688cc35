package analysis

import (
	"testing"

	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
)

// Fields of a typical phone photo: GPS position, serial number, capture time,
// and camera settings.
func sampleFields() []metadata.Field {
	return []metadata.Field{
		{Tag: model.TagGPSLatitude, Value: "40.7128"},
		{Tag: model.TagGPSLongitude, Value: "-74.0060"},
		{Tag: model.TagCameraSerialNumber, Value: "ABC123"},
		{Tag: model.TagDateTimeOriginal, Value: "2024:06:01 12:00:00"},
		{Tag: model.TagISO, Value: "200"},
		{Tag: model.TagFNumber, Value: "2.8"},
		{Tag: model.TagModel, Value: "PowerShot"},
	}
}

func TestAnalyzeAtStandard(t *testing.T) {
	a := New(policy.ForLevel(model.LevelStandard))
	found := a.Analyze(sampleFields())

	// Two GPS fields and the serial number; timestamps and settings survive.
	if len(found) != 3 {
		t.Fatalf("expected 3 findings, got %d: %v", len(found), found)
	}

	counts := make(map[model.PrivacyCategory]int)
	for _, f := range found {
		counts[f.Category]++
	}
	if counts[model.CategoryLocation] != 2 {
		t.Errorf("expected 2 location findings, got %d", counts[model.CategoryLocation])
	}
	if counts[model.CategoryDeviceID] != 1 {
		t.Errorf("expected 1 device identifier finding, got %d", counts[model.CategoryDeviceID])
	}
}

func TestAnalyzePreservesInputOrder(t *testing.T) {
	a := New(policy.ForLevel(model.LevelStandard))
	found := a.Analyze(sampleFields())

	want := []model.TagID{model.TagGPSLatitude, model.TagGPSLongitude, model.TagCameraSerialNumber}
	for i, tag := range want {
		if found[i].Tag != tag {
			t.Errorf("finding %d = %s, want %s", i, found[i].Tag, tag)
		}
	}
}

func TestAnalyzeAtMinimal(t *testing.T) {
	a := New(policy.ForLevel(model.LevelMinimal))
	found := a.Analyze(sampleFields())

	if len(found) != 2 {
		t.Fatalf("expected only GPS findings at minimal, got %v", found)
	}
	for _, f := range found {
		if f.Category != model.CategoryLocation {
			t.Errorf("unexpected category %s at minimal", f.Category)
		}
	}
}

func TestAnalyzeParanoidKeepsSettings(t *testing.T) {
	a := New(policy.ForLevel(model.LevelParanoid))
	found := a.Analyze(sampleFields())

	for _, f := range found {
		switch f.Tag {
		case model.TagISO, model.TagFNumber, model.TagModel:
			t.Errorf("pinned tag %s reported as privacy finding at paranoid", f.Tag)
		}
	}
	if len(found) != 4 {
		t.Errorf("expected 4 findings at paranoid, got %d: %v", len(found), found)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := New(policy.ForLevel(model.LevelParanoid))
	if got := a.Analyze(nil); len(got) != 0 {
		t.Errorf("expected no findings for empty input, got %v", got)
	}
}

func TestHasSensitiveData(t *testing.T) {
	std := New(policy.ForLevel(model.LevelStandard))

	if !std.HasSensitiveData(sampleFields()) {
		t.Error("expected sensitive data at standard")
	}

	clean := []metadata.Field{
		{Tag: model.TagISO, Value: "100"},
		{Tag: model.TagFNumber, Value: "4.0"},
	}
	if std.HasSensitiveData(clean) {
		t.Error("camera settings alone should not be sensitive")
	}
	if std.HasSensitiveData(nil) {
		t.Error("no fields, no sensitive data")
	}
}

func TestDescription(t *testing.T) {
	a := New(policy.ForLevel(model.LevelStandard))
	found := a.Analyze([]metadata.Field{{Tag: model.TagGPSLatitude, Value: "40.7128"}})

	if len(found) != 1 {
		t.Fatal("expected one finding")
	}
	if found[0].Description != "GPSLatitude: 40.7128" {
		t.Errorf("description = %q", found[0].Description)
	}
	if found[0].Value != "40.7128" {
		t.Errorf("value = %q", found[0].Value)
	}
}

func TestSummarize(t *testing.T) {
	a := New(policy.ForLevel(model.LevelStandard))
	s := Summarize(a.Analyze(sampleFields()))

	if !s.HasLocationData || !s.HasDeviceIdentifiers {
		t.Errorf("summary missing categories: %+v", s)
	}
	if s.HasTimestamps || s.HasSoftwareInfo {
		t.Errorf("summary has categories that should be absent at standard: %+v", s)
	}
	if s.TotalFields != 3 {
		t.Errorf("TotalFields = %d, want 3", s.TotalFields)
	}
	if !s.HasPrivacyData() {
		t.Error("expected HasPrivacyData")
	}

	empty := Summarize(nil)
	if empty.HasPrivacyData() {
		t.Error("empty summary should have no privacy data")
	}
	lines := empty.Describe()
	if len(lines) != 1 || lines[0] != "No privacy-sensitive data found" {
		t.Errorf("unexpected describe output: %v", lines)
	}
}
