package processor

import (
	"sync"

	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

// Aggregator accumulates per-file outcomes into a RunSummary. Record is
// safe for concurrent callers; it is the only shared mutable state in a run.
type Aggregator struct {
	mu      sync.Mutex
	summary model.RunSummary
}

// NewAggregator creates an empty aggregator for a run.
func NewAggregator(runID string) *Aggregator {
	return &Aggregator{summary: model.RunSummary{RunID: runID}}
}

// RunID returns the run identifier.
func (a *Aggregator) RunID() string {
	return a.summary.RunID
}

// Record counts one result. Failures are appended to the collected error
// list in arrival order.
func (a *Aggregator) Record(res model.ProcessResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch res.Kind {
	case model.ResultProcessed:
		a.summary.FilesProcessed++
		if res.HadPrivacyData {
			a.summary.FilesWithPrivacyData++
		}
	case model.ResultSkipped:
		a.summary.FilesSkipped++
	case model.ResultFailed:
		a.summary.FilesFailed++
		a.summary.Errors = append(a.summary.Errors, model.FileError{Path: res.Path, Err: res.Err})
	}
}

// Finalize returns a snapshot of the summary. It may be called repeatedly;
// each call reflects the state at call time.
func (a *Aggregator) Finalize() model.RunSummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot := a.summary
	snapshot.Errors = make([]model.FileError, len(a.summary.Errors))
	copy(snapshot.Errors, a.summary.Errors)
	return snapshot
}
