// Package metadata reads EXIF tag/value pairs out of JPEG and TIFF files.
// It is the parse capability consumed by the analyzer; it never writes.
package metadata

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

// Field is one parsed metadata field with its rendered value.
type Field struct {
	Tag   model.TagID
	Value string
}

// ParseError reports a structurally corrupt or unsupported metadata
// container. A file without any EXIF payload is not a ParseError.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing metadata in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser extracts metadata fields from an image file.
type Parser interface {
	Parse(path string) ([]Field, error)
}

// Format identifies a supported image container.
type Format int

const (
	FormatUnknown Format = iota
	FormatJPEG
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// DetectFormat sniffs the container format from leading magic bytes.
func DetectFormat(data []byte) Format {
	if len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return FormatJPEG
	}
	if len(data) >= 4 {
		if bytes.Equal(data[:4], []byte{0x49, 0x49, 0x2A, 0x00}) || bytes.Equal(data[:4], []byte{0x4D, 0x4D, 0x00, 0x2A}) {
			return FormatTIFF
		}
	}
	return FormatUnknown
}

// SupportedExt reports whether the file extension names a supported format.
func SupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".tif", ".tiff":
		return true
	}
	return false
}

// ExifParser is the production Parser backed by goexif.
type ExifParser struct{}

// NewParser returns a ready ExifParser.
func NewParser() *ExifParser {
	return &ExifParser{}
}

// Parse reads all EXIF fields from the file. Fields are returned in a
// deterministic (tag-name sorted) order. A JPEG without an EXIF segment
// yields zero fields; a corrupt or unrecognized container yields a
// *ParseError.
func (p *ExifParser) Parse(path string) ([]Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	format := DetectFormat(data)
	if format == FormatUnknown {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("unrecognized image format")}
	}

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		// A JPEG may simply carry no EXIF segment. Only call it corrupt
		// when the segment exists but cannot be decoded.
		if format == FormatJPEG && !hasExifSegment(data) {
			return nil, nil
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	collector := &fieldCollector{}
	if err := x.Walk(collector); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	sort.Slice(collector.fields, func(i, j int) bool {
		return collector.fields[i].Tag < collector.fields[j].Tag
	})
	return collector.fields, nil
}

// fieldCollector gathers fields during an EXIF walk.
type fieldCollector struct {
	fields []Field
}

func (c *fieldCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	c.fields = append(c.fields, Field{
		Tag:   model.TagID(name),
		Value: renderValue(tag),
	})
	return nil
}

func renderValue(tag *tiff.Tag) string {
	if tag == nil {
		return ""
	}
	return strings.Trim(tag.String(), `"`)
}

// hasExifSegment scans JPEG APP1 segments for an Exif header.
func hasExifSegment(data []byte) bool {
	i := 2 // skip SOI
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			return false
		}
		marker := data[i+1]
		// Standalone markers carry no length.
		if marker == 0xD8 || (marker >= 0xD0 && marker <= 0xD7) || marker == 0x01 {
			i += 2
			continue
		}
		if marker == 0xDA || marker == 0xD9 {
			// Entropy-coded data or end of image: no EXIF past this point.
			return false
		}
		length := int(data[i+2])<<8 | int(data[i+3])
		if length < 2 || i+2+length > len(data) {
			return false
		}
		if marker == 0xE1 && length >= 8 && bytes.HasPrefix(data[i+4:], []byte("Exif\x00\x00")) {
			return true
		}
		i += 2 + length
	}
	return false
}
