// Package model defines the core data types shared across exifclean.
package model

import (
	"fmt"
	"strings"
)

// PrivacyLevel controls how aggressively metadata is stripped.
// Levels are ordered: each level removes everything the previous one does.
type PrivacyLevel int

const (
	// LevelMinimal removes only location data (GPS).
	LevelMinimal PrivacyLevel = iota
	// LevelStandard also removes device serial numbers and personal fields.
	LevelStandard
	// LevelStrict also removes timestamps, software info, and description metadata.
	LevelStrict
	// LevelParanoid removes everything except essential camera settings.
	LevelParanoid
)

func (l PrivacyLevel) String() string {
	switch l {
	case LevelMinimal:
		return "minimal"
	case LevelStandard:
		return "standard"
	case LevelStrict:
		return "strict"
	case LevelParanoid:
		return "paranoid"
	default:
		return "unknown"
	}
}

// Levels returns all privacy levels in ascending order.
func Levels() []PrivacyLevel {
	return []PrivacyLevel{LevelMinimal, LevelStandard, LevelStrict, LevelParanoid}
}

// ParseLevel converts a level name to a PrivacyLevel. Names are
// case-insensitive.
func ParseLevel(s string) (PrivacyLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return LevelMinimal, nil
	case "standard":
		return LevelStandard, nil
	case "strict":
		return LevelStrict, nil
	case "paranoid":
		return LevelParanoid, nil
	default:
		return LevelStandard, fmt.Errorf("unknown privacy level %q (expected minimal, standard, strict, or paranoid)", s)
	}
}

// PrivacyCategory classifies a tag for reporting. Categories are a view over
// tags; removal decisions never key off them.
type PrivacyCategory int

const (
	CategoryLocation PrivacyCategory = iota
	CategoryDeviceID
	CategoryPersonal
	CategoryTimestamp
	CategorySoftware
	CategoryTechnical
	CategoryOther
)

func (c PrivacyCategory) String() string {
	switch c {
	case CategoryLocation:
		return "location data"
	case CategoryDeviceID:
		return "device identifier"
	case CategoryPersonal:
		return "personal information"
	case CategoryTimestamp:
		return "timestamp"
	case CategorySoftware:
		return "software information"
	case CategoryTechnical:
		return "technical setting"
	default:
		return "other"
	}
}

// PrivacyField is a single privacy-sensitive metadata instance discovered in
// a file. Read-only after creation.
type PrivacyField struct {
	Tag         TagID
	Value       string
	Category    PrivacyCategory
	Description string
}

func (f PrivacyField) String() string {
	return fmt.Sprintf("[%s] %s", f.Category, f.Description)
}

// ResultKind is the outcome class of processing one file.
type ResultKind int

const (
	ResultProcessed ResultKind = iota
	ResultSkipped
	ResultFailed
)

func (k ResultKind) String() string {
	switch k {
	case ResultProcessed:
		return "processed"
	case ResultSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// ProcessResult is the per-file outcome produced by the processor. Exactly
// one is recorded per file; never mutated after creation.
type ProcessResult struct {
	Path           string
	Kind           ResultKind
	HadPrivacyData bool
	Reason         string // set for skips
	Err            error  // set for failures
}

// Processed records a successfully processed file.
func Processed(path string, hadPrivacyData bool) ProcessResult {
	return ProcessResult{Path: path, Kind: ResultProcessed, HadPrivacyData: hadPrivacyData}
}

// Skipped records a file that was not processed.
func Skipped(path, reason string) ProcessResult {
	return ProcessResult{Path: path, Kind: ResultSkipped, Reason: reason}
}

// Failed records a file whose processing failed.
func Failed(path string, err error) ProcessResult {
	return ProcessResult{Path: path, Kind: ResultFailed, Err: err}
}

// FileError pairs a file with the error it produced.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) String() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// RunSummary is the final state of a batch run.
type RunSummary struct {
	RunID                string
	FilesProcessed       int
	FilesWithPrivacyData int
	FilesSkipped         int
	FilesFailed          int
	Errors               []FileError
}

// Total returns the number of files the run saw.
func (s RunSummary) Total() int {
	return s.FilesProcessed + s.FilesSkipped + s.FilesFailed
}

// ReviewDecision records the user's decision for a file in an interactive
// review session.
type ReviewDecision int

const (
	DecisionPending ReviewDecision = iota
	DecisionApproved
	DecisionSkipped
)

func (d ReviewDecision) String() string {
	switch d {
	case DecisionApproved:
		return "approved"
	case DecisionSkipped:
		return "skipped"
	default:
		return "pending"
	}
}
