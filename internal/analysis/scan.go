package analysis

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

// Report pairs a file with its privacy findings. Err is set when the file
// could not be parsed; Findings is nil in that case.
type Report struct {
	Path     string
	Findings []model.PrivacyField
	Err      error
}

// Scan analyzes a file or directory without modifying anything. Directory
// entries that cannot be parsed produce a Report with Err set; only root
// level failures are returned as an error.
func Scan(parser metadata.Parser, a *Analyzer, path string, recursive bool) ([]Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input path: %w", err)
	}

	if !info.IsDir() {
		if !metadata.SupportedExt(path) {
			return nil, fmt.Errorf("unsupported file format: %s", path)
		}
		return []Report{scanOne(parser, a, path)}, nil
	}

	var reports []Report
	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			reports = append(reports, Report{Path: p, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !recursive && p != path {
				return filepath.SkipDir
			}
			return nil
		}
		if !metadata.SupportedExt(p) {
			return nil
		}
		reports = append(reports, scanOne(parser, a, p))
		return nil
	})
	if walkErr != nil {
		return reports, walkErr
	}
	return reports, nil
}

func scanOne(parser metadata.Parser, a *Analyzer, path string) Report {
	fields, err := parser.Parse(path)
	if err != nil {
		return Report{Path: path, Err: err}
	}
	return Report{Path: path, Findings: a.Analyze(fields)}
}
