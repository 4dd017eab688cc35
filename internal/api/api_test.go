package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

func newTestServer() *Server {
	return New(":0", zerolog.Nop())
}

// minimalJPEG is a bare JFIF file with no EXIF segment.
func minimalJPEG() []byte {
	return []byte{
		0xFF, 0xD8,
		0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00,
		0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
		0xFF, 0xD9,
	}
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "photo.jpg"), minimalJPEG(), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer()
	dir := fixtureDir(t)

	body, _ := json.Marshal(analyzeRequest{Path: dir, Level: "strict"})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp analyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json decode: %v", err)
	}

	if resp.Level != "strict" {
		t.Errorf("expected level strict, got %q", resp.Level)
	}
	if resp.Total != 1 {
		t.Errorf("expected 1 file, got %d", resp.Total)
	}
	if resp.TotalFindings != 0 {
		t.Errorf("expected no findings in EXIF-less fixture, got %d", resp.TotalFindings)
	}
}

func TestAnalyzeMissingPath(t *testing.T) {
	srv := newTestServer()

	body, _ := json.Marshal(analyzeRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAnalyzeUnknownPath(t *testing.T) {
	srv := newTestServer()

	body, _ := json.Marshal(analyzeRequest{Path: filepath.Join(t.TempDir(), "missing")})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAnalyzeInvalidJSON(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPolicyEndpoint(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/policy?level=paranoid", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var resp policyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if resp.Level != "paranoid" {
		t.Errorf("expected level paranoid, got %q", resp.Level)
	}
	if len(resp.Removes) == 0 {
		t.Error("expected non-empty removal list")
	}
	if len(resp.Preserves) == 0 {
		t.Error("expected pinned tags to be preserved")
	}
}

func TestPolicyDefaultsToStandard(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/policy", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	var resp policyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if resp.Level != "standard" {
		t.Errorf("expected level standard, got %q", resp.Level)
	}
}

func TestPolicyUnknownLevel(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/policy?level=extreme", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestWebSocketRun(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	defer conn.Close()

	dir := fixtureDir(t)
	startData, _ := json.Marshal(wsStartRun{Path: dir, Level: "strict", DryRun: true})
	if err := conn.WriteJSON(wsMessage{Type: wsMsgStartRun, Data: startData}); err != nil {
		t.Fatalf("ws write: %v", err)
	}

	// One result per file, then a summary.
	var msg1 wsMessage
	if err := conn.ReadJSON(&msg1); err != nil {
		t.Fatalf("ws read result: %v", err)
	}
	if msg1.Type != wsMsgResult {
		t.Fatalf("expected 'result' message, got %q", msg1.Type)
	}

	var res wsResult
	if err := json.Unmarshal(msg1.Data, &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if res.Status != "processed" {
		t.Errorf("expected processed, got %q", res.Status)
	}
	if res.HadPrivacyData {
		t.Error("EXIF-less fixture should not carry privacy data")
	}

	var msg2 wsMessage
	if err := conn.ReadJSON(&msg2); err != nil {
		t.Fatalf("ws read summary: %v", err)
	}
	if msg2.Type != wsMsgSummary {
		t.Fatalf("expected 'summary' message, got %q", msg2.Type)
	}

	var summary wsSummary
	if err := json.Unmarshal(msg2.Data, &summary); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if summary.Processed != 1 || summary.Failed != 0 {
		t.Errorf("expected 1 processed / 0 failed, got %d/%d", summary.Processed, summary.Failed)
	}
	if summary.RunID == "" {
		t.Error("expected run_id in summary")
	}
}

func TestWebSocketUnknownMessage(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(wsMessage{Type: "bogus"}); err != nil {
		t.Fatalf("ws write: %v", err)
	}

	var msg wsMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ws read: %v", err)
	}
	if msg.Type != wsMsgError {
		t.Errorf("expected 'error' message, got %q", msg.Type)
	}
}

func TestWebSocketRunOnMissingPath(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	defer conn.Close()

	startData, _ := json.Marshal(wsStartRun{Path: filepath.Join(t.TempDir(), "missing")})
	conn.WriteJSON(wsMessage{Type: wsMsgStartRun, Data: startData})

	var msg wsMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ws read: %v", err)
	}
	if msg.Type != wsMsgError {
		t.Errorf("expected 'error' message, got %q", msg.Type)
	}
}
