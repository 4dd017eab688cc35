package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/processor"
	"github.com/WerlingM/privacy-exif-cleaner/internal/remover"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove privacy-sensitive metadata from a file or directory",
	Long: `Remove privacy-sensitive metadata from a photo or every supported photo
in a directory. Files without privacy-sensitive data are left untouched.

Examples:
  exifclean clean photo.jpg                  # single file, standard level
  exifclean clean -l paranoid vacation/      # strip everything but camera settings
  exifclean clean -r -b photos/              # recurse, keep .bak copies
  exifclean clean -n -l strict photos/       # dry run, report only
  exifclean clean -o cleaned/ photos/        # write cleaned copies elsewhere

Exit codes:
  0 — all files processed
  1 — one or more files failed`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolP("recursive", "r", false, "process directories recursively")
	cleanCmd.Flags().BoolP("backup", "b", false, "keep a .bak copy of each rewritten file")
	cleanCmd.Flags().BoolP("dry-run", "n", false, "report what would be removed without writing")
	cleanCmd.Flags().StringP("output", "o", "", "write cleaned files under this directory instead of in place")
	cleanCmd.Flags().String("exiftool", "", "path to the exiftool binary")
	cleanCmd.Flags().Duration("timeout", 0, "per-file processing timeout")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, level, log, err := setup(cmd)
	if err != nil {
		return err
	}

	recursive, _ := cmd.Flags().GetBool("recursive")
	backup, _ := cmd.Flags().GetBool("backup")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	output, _ := cmd.Flags().GetString("output")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout <= 0 {
		timeout = cfg.Timeout
	}

	ctx := cmd.Context()
	rem := remover.NewExifToolAt(exiftoolPath(cmd, cfg))
	if !dryRun {
		if err := rem.CheckAvailable(ctx); err != nil {
			return err
		}
		if v, err := rem.Version(ctx); err == nil {
			log.Debug().Str("exiftool_version", v).Msg("removal backend ready")
		}
	}

	proc := processor.New(processor.Options{
		Level:      level,
		Recursive:  recursive,
		Backup:     backup || cfg.Backup,
		DryRun:     dryRun,
		OutputRoot: output,
		Timeout:    timeout,
	}, metadata.NewParser(), rem, log)

	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("input path: %w", err)
	}

	if !info.IsDir() {
		res := proc.Process(ctx, args[0])
		printResult(res, dryRun)
		if res.Kind == model.ResultFailed {
			os.Exit(1)
		}
		return nil
	}

	summary, err := proc.Run(ctx, args[0])
	if err != nil {
		return err
	}
	printSummary(summary, dryRun)
	if summary.FilesFailed > 0 {
		os.Exit(1)
	}
	return nil
}

func printResult(res model.ProcessResult, dryRun bool) {
	switch res.Kind {
	case model.ResultProcessed:
		switch {
		case !res.HadPrivacyData:
			fmt.Printf("%s: no privacy-sensitive data\n", res.Path)
		case dryRun:
			fmt.Printf("%s: would remove privacy-sensitive data (dry run)\n", res.Path)
		default:
			fmt.Printf("%s: privacy-sensitive data removed\n", res.Path)
		}
	case model.ResultSkipped:
		fmt.Printf("%s: skipped (%s)\n", res.Path, res.Reason)
	case model.ResultFailed:
		fmt.Printf("%s: failed: %v\n", res.Path, res.Err)
	}
}

func printSummary(s model.RunSummary, dryRun bool) {
	if dryRun {
		fmt.Println("Dry run — no files were modified.")
	}
	fmt.Printf("Processed: %d file(s), %d contained privacy-sensitive data\n",
		s.FilesProcessed, s.FilesWithPrivacyData)
	if s.FilesSkipped > 0 {
		fmt.Printf("Skipped:   %d\n", s.FilesSkipped)
	}
	if s.FilesFailed > 0 {
		fmt.Printf("Failed:    %d\n", s.FilesFailed)
		for _, e := range s.Errors {
			fmt.Printf("  %s\n", e)
		}
	}
}
