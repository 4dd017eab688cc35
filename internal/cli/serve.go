package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WerlingM/privacy-exif-cleaner/internal/api"
	"github.com/WerlingM/privacy-exif-cleaner/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP server exposing the exifclean analysis engine.

Endpoints:
  GET  /health       — Health check
  POST /api/analyze  — Analyze a file or directory for privacy findings
  GET  /api/policy   — Describe a privacy level's removal policy
  GET  /api/ws       — WebSocket for streaming cleaning runs`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1", "address to listen on")
	serveCmd.Flags().IntP("port", "p", 6425, "port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	port, _ := cmd.Flags().GetInt("port")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log := logging.New(logging.Options{Verbose: verbose, JSON: true})

	listen := fmt.Sprintf("%s:%d", addr, port)
	srv := api.New(listen, log)
	return srv.ListenAndServe()
}
