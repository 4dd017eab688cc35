package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

// minimalTIFF builds a little-endian TIFF containing a single ASCII Make tag.
func minimalTIFF() []byte {
	return []byte{
		0x49, 0x49, 0x2A, 0x00, // II*\0
		0x08, 0x00, 0x00, 0x00, // IFD0 at offset 8
		0x01, 0x00, // one entry
		0x0F, 0x01, // tag 0x010F (Make)
		0x02, 0x00, // type ASCII
		0x06, 0x00, 0x00, 0x00, // count 6
		0x1A, 0x00, 0x00, 0x00, // value at offset 26
		0x00, 0x00, 0x00, 0x00, // no next IFD
		'C', 'a', 'n', 'o', 'n', 0x00,
	}
}

// minimalJPEG is a JFIF image with no EXIF segment.
func minimalJPEG() []byte {
	return []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xE0, 0x00, 0x10, // APP0, length 16
		'J', 'F', 'I', 'F', 0x00,
		0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
		0xFF, 0xD9, // EOI
	}
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"jpeg", minimalJPEG(), FormatJPEG},
		{"tiff little endian", minimalTIFF(), FormatTIFF},
		{"tiff big endian", []byte{0x4D, 0x4D, 0x00, 0x2A}, FormatTIFF},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}, FormatUnknown},
		{"empty", nil, FormatUnknown},
		{"short", []byte{0xFF}, FormatUnknown},
	}

	for _, tc := range tests {
		if got := DetectFormat(tc.data); got != tc.want {
			t.Errorf("%s: DetectFormat = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestSupportedExt(t *testing.T) {
	for _, p := range []string{"a.jpg", "b.JPEG", "c.tif", "d.TIFF"} {
		if !SupportedExt(p) {
			t.Errorf("expected %s to be supported", p)
		}
	}
	for _, p := range []string{"a.png", "b.gif", "noext", "e.jpg.txt"} {
		if SupportedExt(p) {
			t.Errorf("expected %s to be unsupported", p)
		}
	}
}

func TestParseTIFFMakeTag(t *testing.T) {
	path := writeTemp(t, "photo.tif", minimalTIFF())

	fields, err := NewParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var found bool
	for _, f := range fields {
		if f.Tag == model.TagMake {
			found = true
			if f.Value != "Canon" {
				t.Errorf("Make = %q, want Canon", f.Value)
			}
		}
	}
	if !found {
		t.Fatalf("Make tag not found in %v", fields)
	}
}

func TestParseJPEGWithoutExif(t *testing.T) {
	path := writeTemp(t, "plain.jpg", minimalJPEG())

	fields, err := NewParser().Parse(path)
	if err != nil {
		t.Fatalf("expected no error for EXIF-less JPEG, got %v", err)
	}
	if len(fields) != 0 {
		t.Errorf("expected zero fields, got %v", fields)
	}
}

func TestParseCorruptFile(t *testing.T) {
	path := writeTemp(t, "junk.jpg", []byte{0x00, 0x01, 0x02, 0x03})

	_, err := NewParser().Parse(path)
	if err == nil {
		t.Fatal("expected ParseError for unrecognized bytes")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if perr.Path != path {
		t.Errorf("ParseError path = %q, want %q", perr.Path, path)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := NewParser().Parse(filepath.Join(t.TempDir(), "nope.jpg"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		t.Error("missing file should be an I/O error, not a ParseError")
	}
}

func TestHasExifSegment(t *testing.T) {
	if hasExifSegment(minimalJPEG()) {
		t.Error("JFIF-only JPEG should not report an EXIF segment")
	}

	withExif := []byte{
		0xFF, 0xD8,
		0xFF, 0xE1, 0x00, 0x0A, 'E', 'x', 'i', 'f', 0x00, 0x00, 0x49, 0x49,
		0xFF, 0xD9,
	}
	if !hasExifSegment(withExif) {
		t.Error("expected EXIF segment to be detected")
	}
}
