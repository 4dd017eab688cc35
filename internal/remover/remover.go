// Package remover strips metadata from image files. The actual rewrite is
// delegated to an external backend behind a narrow interface so alternates
// can be substituted without touching the policy engine or processor.
package remover

import (
	"context"
	"fmt"

	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
)

// RemovalError reports a failed removal attempt. The input file is never
// modified by a failed removal; the output path is cleaned up.
type RemovalError struct {
	Path string
	Err  error
}

func (e *RemovalError) Error() string {
	return fmt.Sprintf("removing metadata from %s: %v", e.Path, e.Err)
}

func (e *RemovalError) Unwrap() error {
	return e.Err
}

// Remover rewrites inputPath to outputPath with the selected tags absent and
// all other metadata preserved. The call is atomic from the caller's
// perspective: on failure outputPath is not left partially written.
// outputPath must differ from inputPath; in-place rewrites are the caller's
// responsibility (write to a temp path, then rename).
type Remover interface {
	Remove(ctx context.Context, inputPath, outputPath string, sel policy.Selection) error
}
