// Package analysis applies the privacy policy to parsed metadata and
// produces structured findings.
package analysis

import (
	"fmt"

	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
)

// Analyzer evaluates parsed fields against a privacy policy. It holds no
// mutable state and is safe to share across concurrent file analyses.
type Analyzer struct {
	policy *policy.Policy
}

// New creates an Analyzer for the given policy.
func New(p *policy.Policy) *Analyzer {
	return &Analyzer{policy: p}
}

// Policy returns the policy the analyzer was built with.
func (a *Analyzer) Policy() *policy.Policy {
	return a.policy
}

// Analyze returns one PrivacyField per parsed field the policy would remove,
// preserving input order.
func (a *Analyzer) Analyze(fields []metadata.Field) []model.PrivacyField {
	var found []model.PrivacyField
	for _, f := range fields {
		if a.policy.ShouldPreserve(f.Tag) {
			continue
		}
		found = append(found, model.PrivacyField{
			Tag:         f.Tag,
			Value:       f.Value,
			Category:    policy.Categorize(f.Tag),
			Description: fmt.Sprintf("%s: %s", f.Tag, f.Value),
		})
	}
	return found
}

// HasSensitiveData reports whether Analyze would produce any findings,
// short-circuiting on the first match.
func (a *Analyzer) HasSensitiveData(fields []metadata.Field) bool {
	for _, f := range fields {
		if !a.policy.ShouldPreserve(f.Tag) {
			return true
		}
	}
	return false
}

// Summary is a category roll-up of findings for one file.
type Summary struct {
	HasLocationData      bool
	HasDeviceIdentifiers bool
	HasPersonalInfo      bool
	HasTimestamps        bool
	HasSoftwareInfo      bool
	HasOther             bool
	TotalFields          int
}

// Summarize rolls findings up by category.
func Summarize(fields []model.PrivacyField) Summary {
	s := Summary{TotalFields: len(fields)}
	for _, f := range fields {
		switch f.Category {
		case model.CategoryLocation:
			s.HasLocationData = true
		case model.CategoryDeviceID:
			s.HasDeviceIdentifiers = true
		case model.CategoryPersonal:
			s.HasPersonalInfo = true
		case model.CategoryTimestamp:
			s.HasTimestamps = true
		case model.CategorySoftware:
			s.HasSoftwareInfo = true
		default:
			s.HasOther = true
		}
	}
	return s
}

// HasPrivacyData reports whether any sensitive field was found.
func (s Summary) HasPrivacyData() bool {
	return s.TotalFields > 0
}

// Describe returns human-readable lines for each category present.
func (s Summary) Describe() []string {
	var lines []string
	if s.HasLocationData {
		lines = append(lines, "Contains GPS location data")
	}
	if s.HasDeviceIdentifiers {
		lines = append(lines, "Contains device serial numbers or unique identifiers")
	}
	if s.HasPersonalInfo {
		lines = append(lines, "Contains personal information (names, copyright, comments)")
	}
	if s.HasTimestamps {
		lines = append(lines, "Contains timestamp information")
	}
	if s.HasSoftwareInfo {
		lines = append(lines, "Contains software processing information")
	}
	if s.HasOther {
		lines = append(lines, "Contains additional metadata")
	}
	if len(lines) == 0 {
		lines = append(lines, "No privacy-sensitive data found")
	}
	return lines
}
