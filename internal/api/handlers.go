package api

import (
	"net/http"
	"os"

	"github.com/WerlingM/privacy-exif-cleaner/internal/analysis"
	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/policy"
)

// --- Health ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Analyze ---

type analyzeRequest struct {
	Path      string `json:"path"`
	Level     string `json:"level,omitempty"`
	Recursive bool   `json:"recursive,omitempty"`
}

type analyzeResponse struct {
	Level         string     `json:"level"`
	Total         int        `json:"total"`
	TotalFindings int        `json:"total_findings"`
	Files         []fileJSON `json:"files"`
}

type fileJSON struct {
	Path     string        `json:"path"`
	Error    string        `json:"error,omitempty"`
	Findings []findingJSON `json:"findings"`
}

type findingJSON struct {
	Tag         string `json:"tag"`
	Value       string `json:"value"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := readJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if req.Path == "" {
		s.writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	level, err := parseLevelOrDefault(req.Level)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := os.Stat(req.Path); err != nil {
		s.writeError(w, http.StatusNotFound, "path not found: "+req.Path)
		return
	}

	analyzer := analysis.New(policy.ForLevel(level))
	reports, err := analysis.Scan(metadata.NewParser(), analyzer, req.Path, req.Recursive)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := analyzeResponse{
		Level: level.String(),
		Total: len(reports),
	}
	for _, rep := range reports {
		fj := fileJSON{Path: rep.Path}
		if rep.Err != nil {
			fj.Error = rep.Err.Error()
		}
		for _, f := range rep.Findings {
			fj.Findings = append(fj.Findings, findingJSON{
				Tag:         string(f.Tag),
				Value:       f.Value,
				Category:    f.Category.String(),
				Description: f.Description,
			})
		}
		resp.TotalFindings += len(rep.Findings)
		resp.Files = append(resp.Files, fj)
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// --- Policy ---

type policyResponse struct {
	Level       string   `json:"level"`
	Removes     []string `json:"removes"`
	Preserves   []string `json:"preserves"`
	Description []string `json:"description"`
}

func (s *Server) handlePolicy(w http.ResponseWriter, r *http.Request) {
	level, err := parseLevelOrDefault(r.URL.Query().Get("level"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := policy.ForLevel(level)
	resp := policyResponse{
		Level:       level.String(),
		Description: policy.Describe(level),
	}
	for _, tag := range p.TagsToRemove() {
		resp.Removes = append(resp.Removes, string(tag))
	}
	for _, tag := range policy.PinnedTags() {
		resp.Preserves = append(resp.Preserves, string(tag))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func parseLevelOrDefault(v string) (model.PrivacyLevel, error) {
	if v == "" {
		return model.LevelStandard, nil
	}
	return model.ParseLevel(v)
}
