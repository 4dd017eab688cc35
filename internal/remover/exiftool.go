package remover

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
)

// ExifTool is the production Remover, backed by the exiftool binary.
type ExifTool struct {
	bin string
}

// NewExifTool returns a Remover using the exiftool binary found on PATH.
func NewExifTool() *ExifTool {
	return &ExifTool{bin: "exiftool"}
}

// NewExifToolAt returns a Remover using a specific exiftool binary.
func NewExifToolAt(bin string) *ExifTool {
	return &ExifTool{bin: bin}
}

// CheckAvailable verifies that exiftool can be executed. Callers treat a
// failure here as fatal configuration, before any file is processed.
func (e *ExifTool) CheckAvailable(ctx context.Context) error {
	if _, err := e.Version(ctx); err != nil {
		return fmt.Errorf("exiftool not available (install it and ensure it is on PATH): %w", err)
	}
	return nil
}

// Version returns the exiftool version string.
func (e *ExifTool) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, e.bin, "-ver").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Remove rewrites inputPath to outputPath with the selected tags stripped.
func (e *ExifTool) Remove(ctx context.Context, inputPath, outputPath string, sel policy.Selection) error {
	args := buildArgs(sel)
	args = append(args, "-o", outputPath, inputPath)

	cmd := exec.CommandContext(ctx, e.bin, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Never leave a half-written output behind.
		os.Remove(outputPath)
		if ctx.Err() != nil {
			return &RemovalError{Path: inputPath, Err: ctx.Err()}
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return &RemovalError{Path: inputPath, Err: fmt.Errorf("exiftool: %s", msg)}
	}
	return nil
}

// buildArgs translates a removal selection into exiftool arguments.
// GPS tags collapse into the gps group wildcard, and the XMP/IPTC block
// selectors become whole-group deletions; everything else is a per-tag
// assignment to empty.
func buildArgs(sel policy.Selection) []string {
	if sel.WipeAll {
		args := []string{"-all=", "-TagsFromFile", "@"}
		for _, tag := range sel.Preserve {
			args = append(args, "-"+string(tag))
		}
		return args
	}

	var args []string
	gpsSeen := false
	for _, tag := range sel.Tags {
		switch {
		case strings.HasPrefix(string(tag), "GPS"):
			if !gpsSeen {
				args = append(args, "-gps:all=")
				gpsSeen = true
			}
		case tag == model.TagXMPBlock:
			args = append(args, "-xmp:all=")
		case tag == model.TagIPTCBlock:
			args = append(args, "-iptc:all=")
		default:
			args = append(args, "-"+string(tag)+"=")
		}
	}
	return args
}
