package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/WerlingM/privacy-exif-cleaner/internal/metadata"
	"github.com/WerlingM/privacy-exif-cleaner/internal/model"
	"github.com/WerlingM/privacy-exif-cleaner/internal/processor"
	"github.com/WerlingM/privacy-exif-cleaner/internal/remover"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 64,
	WriteBufferSize: 1024 * 64,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local dev; restrict in production
	},
}

// WebSocket message types from client.
const (
	wsMsgStartRun = "start_run"
	wsMsgCancel   = "cancel"
)

// WebSocket message types to client.
const (
	wsMsgResult  = "result"
	wsMsgSummary = "summary"
	wsMsgError   = "error"
)

// wsMessage is the envelope for WebSocket messages in both directions.
type wsMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// wsStartRun is the payload for "start_run" messages.
type wsStartRun struct {
	Path       string `json:"path"`
	Level      string `json:"level,omitempty"`
	Recursive  bool   `json:"recursive,omitempty"`
	DryRun     bool   `json:"dry_run,omitempty"`
	Backup     bool   `json:"backup,omitempty"`
	OutputRoot string `json:"output_root,omitempty"`
}

// wsResult streams one per-file outcome.
type wsResult struct {
	Path           string `json:"path"`
	Status         string `json:"status"`
	HadPrivacyData bool   `json:"had_privacy_data,omitempty"`
	Reason         string `json:"reason,omitempty"`
	Error          string `json:"error,omitempty"`
}

// wsSummary is sent when the run completes or is canceled.
type wsSummary struct {
	RunID           string        `json:"run_id"`
	Processed       int           `json:"processed"`
	WithPrivacyData int           `json:"with_privacy_data"`
	Skipped         int           `json:"skipped"`
	Failed          int           `json:"failed"`
	Errors          []wsFileError `json:"errors,omitempty"`
	Canceled        bool          `json:"canceled,omitempty"`
}

type wsFileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// runSession holds the state for one WebSocket connection. At most one
// cleaning run is active per connection.
type runSession struct {
	mu      sync.Mutex // serializes conn writes and run state
	conn    *websocket.Conn
	cancel  context.CancelFunc
	running bool
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	session := &runSession{conn: conn}
	defer session.stop()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Error().Err(err).Msg("websocket read")
			}
			return
		}

		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.sendWS(session, wsMsgError, map[string]string{"message": "invalid message format"})
			continue
		}

		switch msg.Type {
		case wsMsgStartRun:
			s.handleWSStartRun(session, msg.Data)
		case wsMsgCancel:
			session.stop()
		default:
			s.sendWS(session, wsMsgError, map[string]string{"message": "unknown message type: " + msg.Type})
		}
	}
}

// stop cancels the active run, if any.
func (sess *runSession) stop() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.cancel != nil {
		sess.cancel()
	}
}

func (s *Server) handleWSStartRun(sess *runSession, data json.RawMessage) {
	var req wsStartRun
	if err := json.Unmarshal(data, &req); err != nil {
		s.sendWS(sess, wsMsgError, map[string]string{"message": "invalid start_run data"})
		return
	}

	level, err := parseLevelOrDefault(req.Level)
	if err != nil {
		s.sendWS(sess, wsMsgError, map[string]string{"message": err.Error()})
		return
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		s.sendWS(sess, wsMsgError, map[string]string{"message": "path not found: " + req.Path})
		return
	}
	if !info.IsDir() {
		s.sendWS(sess, wsMsgError, map[string]string{"message": "path must be a directory"})
		return
	}

	sess.mu.Lock()
	if sess.running {
		sess.mu.Unlock()
		s.sendWS(sess, wsMsgError, map[string]string{"message": "a run is already active"})
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	sess.running = true
	sess.cancel = cancel
	sess.mu.Unlock()

	proc := processor.New(processor.Options{
		Level:      level,
		Recursive:  req.Recursive,
		Backup:     req.Backup,
		DryRun:     req.DryRun,
		OutputRoot: req.OutputRoot,
	}, metadata.NewParser(), remover.NewExifTool(), s.log)

	proc.OnResult = func(res model.ProcessResult) {
		out := wsResult{
			Path:           res.Path,
			Status:         res.Kind.String(),
			HadPrivacyData: res.HadPrivacyData,
			Reason:         res.Reason,
		}
		if res.Err != nil {
			out.Error = res.Err.Error()
		}
		s.sendWS(sess, wsMsgResult, out)
	}

	go func() {
		defer cancel()
		summary, runErr := proc.Run(ctx, req.Path)

		canceled := errors.Is(runErr, context.Canceled)
		if runErr != nil && !canceled {
			s.sendWS(sess, wsMsgError, map[string]string{"message": runErr.Error()})
		}

		out := wsSummary{
			RunID:           summary.RunID,
			Processed:       summary.FilesProcessed,
			WithPrivacyData: summary.FilesWithPrivacyData,
			Skipped:         summary.FilesSkipped,
			Failed:          summary.FilesFailed,
			Canceled:        canceled,
		}
		for _, e := range summary.Errors {
			out.Errors = append(out.Errors, wsFileError{Path: e.Path, Error: e.Err.Error()})
		}
		s.sendWS(sess, wsMsgSummary, out)

		sess.mu.Lock()
		sess.running = false
		sess.cancel = nil
		sess.mu.Unlock()
	}()
}

func (s *Server) sendWS(sess *runSession, msgType string, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		s.log.Error().Err(err).Msg("ws marshal")
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := sess.conn.WriteJSON(wsMessage{Type: msgType, Data: raw}); err != nil {
		s.log.Error().Err(err).Msg("ws write")
	}
}
