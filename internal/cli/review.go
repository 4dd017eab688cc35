package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WerlingM/privacy-exif-cleaner/internal/analysis"
	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
	"github.com/WerlingM/privacy-exif-cleaner/internal/processor"
	"github.com/WerlingM/privacy-exif-cleaner/internal/remover"
	"github.com/WerlingM/privacy-exif-cleaner/internal/tui"
)

var reviewCmd = &cobra.Command{
	Use:   "review [path]",
	Short: "Interactively review and clean files",
	Long: `Open an interactive TUI showing each file's privacy findings. Approve
the files you want cleaned; approved files are processed when the
review is finished. Nothing is modified until then.

Examples:
  exifclean review photos/               # review a directory
  exifclean review -r -l strict photos/  # recurse at the strict level`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().BoolP("recursive", "r", false, "review directories recursively")
	reviewCmd.Flags().BoolP("backup", "b", false, "keep a .bak copy of each rewritten file")
	reviewCmd.Flags().BoolP("dry-run", "n", false, "report what would be removed without writing")
	reviewCmd.Flags().StringP("output", "o", "", "write cleaned files under this directory instead of in place")
	reviewCmd.Flags().String("exiftool", "", "path to the exiftool binary")
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, level, log, err := setup(cmd)
	if err != nil {
		return err
	}
	recursive, _ := cmd.Flags().GetBool("recursive")

	analyzer := analysis.New(policy.ForLevel(level))
	reports, err := analysis.Scan(metadata.NewParser(), analyzer, args[0], recursive)
	if err != nil {
		return err
	}

	var files []tui.File
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping unreadable file %s: %v\n", r.Path, r.Err)
			continue
		}
		if len(r.Findings) == 0 {
			continue
		}
		files = append(files, tui.File{Path: r.Path, Findings: r.Findings})
	}

	if len(files) == 0 {
		fmt.Println("No privacy-sensitive data found.")
		return nil
	}

	result, err := tui.Run(files, level)
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Fprintln(os.Stderr, "Review aborted; no files were modified.")
		return nil
	}

	approved := result.ApprovedFiles()
	if len(approved) == 0 {
		fmt.Println("No files approved; nothing to clean.")
		return nil
	}

	backup, _ := cmd.Flags().GetBool("backup")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	output, _ := cmd.Flags().GetString("output")

	ctx := cmd.Context()
	rem := remover.NewExifToolAt(exiftoolPath(cmd, cfg))
	if !dryRun {
		if err := rem.CheckAvailable(ctx); err != nil {
			return err
		}
	}

	proc := processor.New(processor.Options{
		Level:      level,
		Backup:     backup || cfg.Backup,
		DryRun:     dryRun,
		OutputRoot: output,
		Timeout:    cfg.Timeout,
	}, metadata.NewParser(), rem, log)

	var failed int
	for _, path := range approved {
		res := proc.Process(ctx, path)
		printResult(res, dryRun)
		if res.Kind == model.ResultFailed {
			failed++
		}
	}

	fmt.Printf("Cleaned %d of %d approved file(s)\n", len(approved)-failed, len(approved))
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}
