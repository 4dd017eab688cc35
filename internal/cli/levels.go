package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Describe what each privacy level removes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, level := range model.Levels() {
			fmt.Println(level)
			for _, line := range policy.Describe(level) {
				fmt.Printf("  %s\n", line)
			}
			fmt.Println()
		}
	},
}
