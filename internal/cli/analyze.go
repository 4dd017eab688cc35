package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WerlingM/privacy-exif-cleaner/internal/analysis"
	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Report privacy-sensitive metadata without modifying files",
	Long: `Analyze a photo or directory and report the metadata the selected
privacy level would remove. Files are never modified.
Useful for CI, pre-publish checks, and piping into other tools.

Exit codes:
  0 — no privacy-sensitive data found
  1 — privacy-sensitive data found
  2 — one or more files could not be read`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("format", "f", "text", "output format: text, json, markdown, html")
	analyzeCmd.Flags().BoolP("recursive", "r", false, "analyze directories recursively")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	_, level, _, err := setup(cmd)
	if err != nil {
		return err
	}
	recursive, _ := cmd.Flags().GetBool("recursive")

	analyzer := analysis.New(policy.ForLevel(level))
	reports, err := analysis.Scan(metadata.NewParser(), analyzer, args[0], recursive)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		err = outputJSON(level, reports)
	case "markdown":
		err = outputMarkdown(level, reports)
	case "html":
		err = outputHTML(level, reports)
	case "text":
		err = outputText(level, reports)
	default:
		return fmt.Errorf("unknown format %q (expected text, json, markdown, or html)", format)
	}
	if err != nil {
		return err
	}

	exitForReports(reports)
	return nil
}

// exitForReports sets the analyze exit code.
func exitForReports(reports []analysis.Report) {
	var found, failed bool
	for _, r := range reports {
		if r.Err != nil {
			failed = true
		}
		if len(r.Findings) > 0 {
			found = true
		}
	}
	if failed {
		os.Exit(2)
	}
	if found {
		os.Exit(1)
	}
}

func totalFindings(reports []analysis.Report) int {
	n := 0
	for _, r := range reports {
		n += len(r.Findings)
	}
	return n
}

func outputText(level model.PrivacyLevel, reports []analysis.Report) error {
	total := totalFindings(reports)
	fmt.Printf("%d file(s) analyzed at level %s, %d privacy-sensitive field(s)\n\n", len(reports), level, total)

	for _, r := range reports {
		if r.Err != nil {
			fmt.Printf("  %s\n    !! unreadable: %v\n\n", r.Path, r.Err)
			continue
		}
		if len(r.Findings) == 0 {
			continue
		}
		if info, statErr := os.Stat(r.Path); statErr == nil {
			fmt.Printf("  %s (%s)\n", r.Path, humanSize(info.Size()))
		} else {
			fmt.Printf("  %s\n", r.Path)
		}
		for _, line := range analysis.Summarize(r.Findings).Describe() {
			fmt.Printf("    %s\n", line)
		}
		for _, f := range r.Findings {
			fmt.Printf("    %s [%s] %s\n", categoryIcon(f.Category), f.Category, f.Description)
		}
		fmt.Println()
	}

	if total == 0 {
		fmt.Println("No privacy-sensitive data found.")
	}
	return nil
}

func outputJSON(level model.PrivacyLevel, reports []analysis.Report) error {
	type jsonFinding struct {
		Tag         string `json:"tag"`
		Value       string `json:"value"`
		Category    string `json:"category"`
		Description string `json:"description"`
	}

	type jsonFile struct {
		Path     string        `json:"path"`
		Error    string        `json:"error,omitempty"`
		Findings []jsonFinding `json:"findings"`
	}

	type jsonOutput struct {
		Level         string     `json:"level"`
		Total         int        `json:"total"`
		TotalFindings int        `json:"total_findings"`
		Files         []jsonFile `json:"files"`
	}

	out := jsonOutput{
		Level:         level.String(),
		Total:         len(reports),
		TotalFindings: totalFindings(reports),
	}

	for _, r := range reports {
		jf := jsonFile{Path: r.Path}
		if r.Err != nil {
			jf.Error = r.Err.Error()
		}
		for _, f := range r.Findings {
			jf.Findings = append(jf.Findings, jsonFinding{
				Tag:         string(f.Tag),
				Value:       f.Value,
				Category:    f.Category.String(),
				Description: f.Description,
			})
		}
		out.Files = append(out.Files, jf)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func outputMarkdown(level model.PrivacyLevel, reports []analysis.Report) error {
	fmt.Printf("## Privacy Report\n\n")
	fmt.Printf("**%d file(s)** analyzed at level **%s**, **%d** privacy-sensitive field(s)\n\n",
		len(reports), level, totalFindings(reports))

	if totalFindings(reports) == 0 {
		fmt.Println("No privacy-sensitive data found.")
		return nil
	}

	fmt.Println("| File | Tag | Category | Value |")
	fmt.Println("|------|-----|----------|-------|")
	for _, r := range reports {
		for _, f := range r.Findings {
			fmt.Printf("| `%s` | %s | %s | %s |\n", r.Path, f.Tag, f.Category, f.Value)
		}
	}

	for _, r := range reports {
		if r.Err != nil {
			fmt.Printf("\n**Unreadable:** `%s` (%v)\n", r.Path, r.Err)
		}
	}
	return nil
}

func outputHTML(level model.PrivacyLevel, reports []analysis.Report) error {
	fmt.Print(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>exifclean Privacy Report</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 900px; margin: 40px auto; padding: 0 20px; background: #282a36; color: #f8f8f2; }
  h1 { color: #bd93f9; }
  .summary { background: #343746; padding: 16px; border-radius: 8px; margin-bottom: 24px; }
  .summary span { margin-right: 24px; }
  .cat-location { color: #ff5555; font-weight: bold; }
  .cat-device { color: #ffb86c; }
  .cat-personal { color: #bd93f9; }
  .cat-timestamp { color: #f1fa8c; }
  .cat-software { color: #8be9fd; }
  .cat-other { color: #6272a4; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; padding: 8px 12px; background: #44475a; color: #f8f8f2; }
  td { padding: 8px 12px; border-bottom: 1px solid #44475a; }
  tr:hover { background: #343746; }
  .file { color: #8be9fd; }
  code { background: #343746; padding: 2px 6px; border-radius: 4px; font-size: 0.9em; }
  .clean { color: #50fa7b; font-size: 1.2em; }
  .unreadable { color: #ff5555; }
  footer { margin-top: 32px; color: #6272a4; font-size: 0.85em; }
</style>
</head>
<body>
<h1>exifclean Privacy Report</h1>
`)

	fmt.Printf(`<div class="summary">
  <span><strong>%d</strong> file(s) analyzed</span>
  <span>Level: <strong>%s</strong></span>
  <span>Findings: <strong>%d</strong></span>
</div>
`, len(reports), level, totalFindings(reports))

	if totalFindings(reports) == 0 {
		fmt.Println(`<p class="clean">No privacy-sensitive data found.</p>`)
	} else {
		fmt.Println(`<table>
<thead><tr><th>File</th><th>Tag</th><th>Category</th><th>Value</th></tr></thead>
<tbody>`)
		for _, r := range reports {
			for _, f := range r.Findings {
				fmt.Printf(`<tr><td class="file"><code>%s</code></td><td>%s</td><td class="%s">%s</td><td>%s</td></tr>
`, htmlEscape(r.Path), f.Tag, categoryClass(f.Category), f.Category, htmlEscape(f.Value))
			}
		}
		fmt.Println(`</tbody></table>`)
	}

	for _, r := range reports {
		if r.Err != nil {
			fmt.Printf(`<p class="unreadable">Unreadable: <code>%s</code> (%s)</p>
`, htmlEscape(r.Path), htmlEscape(r.Err.Error()))
		}
	}

	fmt.Println(`<footer>Generated by <strong>exifclean</strong></footer>
</body>
</html>`)
	return nil
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

func categoryClass(c model.PrivacyCategory) string {
	switch c {
	case model.CategoryLocation:
		return "cat-location"
	case model.CategoryDeviceID:
		return "cat-device"
	case model.CategoryPersonal:
		return "cat-personal"
	case model.CategoryTimestamp:
		return "cat-timestamp"
	case model.CategorySoftware:
		return "cat-software"
	default:
		return "cat-other"
	}
}

// humanSize renders a byte count as a short human-readable figure.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

func categoryIcon(c model.PrivacyCategory) string {
	switch c {
	case model.CategoryLocation:
		return "!!"
	case model.CategoryDeviceID:
		return "! "
	case model.CategoryPersonal:
		return "* "
	default:
		return "- "
	}
}
