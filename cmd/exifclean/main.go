package main

import (
	"os"

	"github.com/WerlingM/privacy-exif-cleaner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
