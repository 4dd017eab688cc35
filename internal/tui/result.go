package tui

import "github.com/WerlingM/privacy-exif-cleaner/internal/model"

// Result captures the decisions of a finished review session.
type Result struct {
	Files     []File
	Decisions map[int]model.ReviewDecision
}

// result snapshots the model state into a Result.
func (m Model) result() *Result {
	decisions := make(map[int]model.ReviewDecision, len(m.decisions))
	for i, d := range m.decisions {
		decisions[i] = d
	}
	return &Result{Files: m.files, Decisions: decisions}
}

// ApprovedFiles returns the paths the user approved, in review order.
func (r *Result) ApprovedFiles() []string {
	var paths []string
	for i, f := range r.Files {
		if r.Decisions[i] == model.DecisionApproved {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// Counts returns the number of approved, skipped, and undecided files.
func (r *Result) Counts() (approved, skipped, pending int) {
	for i := range r.Files {
		switch r.Decisions[i] {
		case model.DecisionApproved:
			approved++
		case model.DecisionSkipped:
			skipped++
		default:
			pending++
		}
	}
	return approved, skipped, pending
}
