// Package cli implements the exifclean command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/WerlingM/privacy-exif-cleaner/internal/config"
	"github.com/WerlingM/privacy-exif-cleaner/internal/logging"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
)

var rootCmd = &cobra.Command{
	Use:   "exifclean",
	Short: "Remove privacy-sensitive metadata from photos",
	Long: `exifclean analyzes and removes privacy-sensitive EXIF metadata from
JPEG and TIFF images: GPS coordinates, serial numbers, timestamps, and
personal fields. Camera settings that photographers care about (ISO,
aperture, shutter speed) are preserved at every level.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringP("level", "l", "", "privacy level: minimal, standard, strict, paranoid")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "log errors only")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves the configuration, privacy level, and logger shared by the
// file-touching subcommands. The --level flag overrides the config file.
func setup(cmd *cobra.Command) (*config.Config, model.PrivacyLevel, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, 0, zerolog.Nop(), err
	}

	levelStr, _ := cmd.Flags().GetString("level")
	if levelStr == "" {
		levelStr = cfg.Level
	}
	level, err := model.ParseLevel(levelStr)
	if err != nil {
		return nil, 0, zerolog.Nop(), err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	log := logging.New(logging.Options{Verbose: verbose || cfg.Verbose, Quiet: quiet})

	return cfg, level, log, nil
}

// exiftoolPath resolves the exiftool binary: flag, then config, then PATH.
func exiftoolPath(cmd *cobra.Command, cfg *config.Config) string {
	if bin, _ := cmd.Flags().GetString("exiftool"); bin != "" {
		return bin
	}
	if cfg.ExifTool != "" {
		return cfg.ExifTool
	}
	return "exiftool"
}
