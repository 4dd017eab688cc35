// Package processor coordinates per-file analysis and removal and aggregates
// batch outcomes. A single file's failure never aborts the batch.
package processor

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/WerlingM/privacy-exif-cleaner/internal/analysis"
	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
	"github.com/WerlingM/privacy-exif-cleaner/internal/remover"
)

// Options configure a processing run.
type Options struct {
	Level      model.PrivacyLevel
	Recursive  bool
	Backup     bool
	DryRun     bool
	OutputRoot string // empty means rewrite in place
	Timeout    time.Duration
}

// DefaultTimeout bounds a single file's parse and removal time so one hung
// file cannot stall the batch.
const DefaultTimeout = 30 * time.Second

// Processor runs the analyze → remove pipeline over files. The policy is
// constructed once and shared read-only; the aggregator is the only mutable
// state shared between files.
type Processor struct {
	opts     Options
	policy   *policy.Policy
	analyzer *analysis.Analyzer
	parser   metadata.Parser
	remover  remover.Remover
	log      zerolog.Logger

	inputRoot string

	// OnResult, when set, observes every per-file result as it is recorded.
	OnResult func(model.ProcessResult)
}

// New creates a Processor. The parser and remover are the only collaborators
// that touch the filesystem or spawn processes.
func New(opts Options, parser metadata.Parser, rem remover.Remover, log zerolog.Logger) *Processor {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	p := policy.ForLevel(opts.Level)
	return &Processor{
		opts:     opts,
		policy:   p,
		analyzer: analysis.New(p),
		parser:   parser,
		remover:  rem,
		log:      log,
	}
}

// Policy returns the shared policy for this run.
func (p *Processor) Policy() *policy.Policy {
	return p.policy
}

// Analyze parses a file and returns its privacy findings without modifying
// anything.
func (p *Processor) Analyze(path string) ([]model.PrivacyField, error) {
	fields, err := p.parser.Parse(path)
	if err != nil {
		return nil, err
	}
	return p.analyzer.Analyze(fields), nil
}

// Process runs the full pipeline for one file. All failures are converted
// into a Failed result; Process itself never returns an error.
func (p *Processor) Process(ctx context.Context, path string) model.ProcessResult {
	ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	if !metadata.SupportedExt(path) {
		return model.Skipped(path, "unsupported file format")
	}

	fields, err := p.parser.Parse(path)
	if err != nil {
		return model.Failed(path, err)
	}

	found := p.analyzer.Analyze(fields)
	if len(found) == 0 {
		p.log.Debug().Str("file", path).Msg("no privacy-sensitive data")
		return model.Processed(path, false)
	}

	for _, f := range found {
		p.log.Debug().Str("file", path).Str("category", f.Category.String()).Msg(f.Description)
	}

	if p.opts.DryRun {
		p.log.Info().Str("file", path).Int("fields", len(found)).Msg("would remove privacy-sensitive fields")
		return model.Processed(path, true)
	}

	if err := p.removeAndCommit(ctx, path); err != nil {
		return model.Failed(path, err)
	}

	p.log.Info().Str("file", path).Int("fields", len(found)).Msg("privacy-sensitive fields removed")
	return model.Processed(path, true)
}

// removeAndCommit invokes the removal backend against a temp path and moves
// the result into place, so a failure mid-write never corrupts the original.
func (p *Processor) removeAndCommit(ctx context.Context, path string) error {
	outPath, err := p.outputPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmpPath := outPath + ".exifclean.tmp"
	defer os.Remove(tmpPath)

	if err := p.remover.Remove(ctx, path, tmpPath, p.policy.Selection()); err != nil {
		return err
	}

	inPlace := outPath == path
	if inPlace && p.opts.Backup {
		if err := createBackup(path); err != nil {
			return err
		}
	}

	return os.Rename(tmpPath, outPath)
}

// outputPath mirrors the input's run-relative path under the output root, or
// returns the input path itself for in-place rewrites.
func (p *Processor) outputPath(path string) (string, error) {
	if p.opts.OutputRoot == "" {
		return path, nil
	}
	rel := filepath.Base(path)
	if p.inputRoot != "" {
		r, err := filepath.Rel(p.inputRoot, path)
		if err == nil {
			rel = r
		}
	}
	return filepath.Join(p.opts.OutputRoot, rel), nil
}

// Run processes every supported file under root and returns the aggregated
// summary. Only enumeration-level failures (bad root, cancellation) are
// returned as errors; per-file failures end up in the summary.
func (p *Processor) Run(ctx context.Context, root string) (model.RunSummary, error) {
	info, err := os.Stat(root)
	if err != nil {
		return model.RunSummary{}, fmt.Errorf("input directory: %w", err)
	}
	if !info.IsDir() {
		return model.RunSummary{}, fmt.Errorf("input path %s is not a directory", root)
	}

	p.inputRoot = root
	agg := NewAggregator(uuid.NewString())
	p.log.Info().Str("run_id", agg.RunID()).Str("root", root).Stringer("level", p.opts.Level).Bool("dry_run", p.opts.DryRun).Msg("starting run")

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			p.record(agg, model.Failed(path, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !p.opts.Recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !metadata.SupportedExt(path) {
			return nil
		}
		p.record(agg, p.Process(ctx, path))
		return nil
	})

	summary := agg.Finalize()
	if walkErr != nil && walkErr != ctx.Err() {
		return summary, walkErr
	}
	if ctx.Err() != nil {
		return summary, ctx.Err()
	}
	return summary, nil
}

func (p *Processor) record(agg *Aggregator, res model.ProcessResult) {
	switch res.Kind {
	case model.ResultFailed:
		p.log.Error().Str("file", res.Path).Err(res.Err).Msg("file failed")
	case model.ResultSkipped:
		p.log.Warn().Str("file", res.Path).Str("reason", res.Reason).Msg("file skipped")
	}
	agg.Record(res)
	if p.OnResult != nil {
		p.OnResult(res)
	}
}

// createBackup copies the original next to itself with a .bak suffix before
// an in-place rewrite.
func createBackup(path string) error {
	return copyFile(path, path+".bak")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
