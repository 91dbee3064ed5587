package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/permission"
	"desktop-assistant/internal/pipeline"
)

// noopLogger is a test implementation of the log.Logger interface
type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockPipeline is a test implementation of pipeline.Pipeline
type mockPipeline struct {
	result   model.ExecutionResult
	accept   bool
	lastCmd  model.Command
	statusFn func() pipeline.Status
}

func (m *mockPipeline) Process(ctx context.Context, cmd model.Command) model.ExecutionResult {
	return m.result
}

func (m *mockPipeline) Submit(ctx context.Context, cmd model.Command) (model.ExecutionResult, bool) {
	m.lastCmd = cmd
	if !m.accept {
		return model.ExecutionResult{}, false
	}
	return m.result, true
}

func (m *mockPipeline) TrySubmit(cmd model.Command) bool { return m.accept }

func (m *mockPipeline) Busy() bool { return false }

func (m *mockPipeline) Status(ctx context.Context) pipeline.Status {
	if m.statusFn != nil {
		return m.statusFn()
	}
	return pipeline.Status{}
}

// mockPermissions is a test implementation of permission.Manager
type mockPermissions struct {
	records    []permission.Record
	granted    []string
	denied     []string
	revokeErr  error
}

func (m *mockPermissions) CheckAndRequest(ctx context.Context, target string) bool { return true }

func (m *mockPermissions) Grant(ctx context.Context, target string) error {
	m.granted = append(m.granted, target)
	return nil
}

func (m *mockPermissions) Deny(ctx context.Context, target string) error {
	m.denied = append(m.denied, target)
	return nil
}

func (m *mockPermissions) Revoke(ctx context.Context, target string) error { return m.revokeErr }

func (m *mockPermissions) List(ctx context.Context) []permission.Record { return m.records }

func newTestServer(p *mockPipeline, perms *mockPermissions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := New(noopLogger{}, p, perms)
	RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return out
}

func TestProcessCommand(t *testing.T) {
	p := &mockPipeline{
		accept: true,
		result: model.ExecutionResult{Success: true, Message: "Opened chrome"},
	}
	engine := newTestServer(p, &mockPermissions{})

	w := doRequest(t, engine, http.MethodPost, "/api/v1/command",
		`{"command": "open chrome", "source": "remote_api"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	resp := envelope(t, w)
	data := resp["data"].(map[string]any)
	if data["success"] != true {
		t.Errorf("success = %v, want true", data["success"])
	}
	if data["message"] != "Opened chrome" {
		t.Errorf("message = %v", data["message"])
	}
	if id, _ := data["command_id"].(string); id == "" {
		t.Error("command_id must be set")
	}
	if p.lastCmd.Source != model.SourceRemoteAPI {
		t.Errorf("Source = %s, want remote_api", p.lastCmd.Source)
	}
}

func TestProcessCommand_DefaultSource(t *testing.T) {
	p := &mockPipeline{accept: true, result: model.ExecutionResult{Success: true, Message: "ok"}}
	engine := newTestServer(p, &mockPermissions{})

	doRequest(t, engine, http.MethodPost, "/api/v1/command", `{"command": "hello"}`)

	if p.lastCmd.Source != model.SourceRemoteAPI {
		t.Errorf("Source = %s, want remote_api default", p.lastCmd.Source)
	}
}

func TestProcessCommand_BusyDrop(t *testing.T) {
	p := &mockPipeline{accept: false}
	engine := newTestServer(p, &mockPermissions{})

	w := doRequest(t, engine, http.MethodPost, "/api/v1/command", `{"command": "open chrome"}`)

	// Busy drop is admission control, not a transport failure: still 200.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := envelope(t, w)["data"].(map[string]any)
	if data["success"] != false {
		t.Error("dropped command must report success=false")
	}
	if data["message"] != pipeline.MsgBusyDropped {
		t.Errorf("message = %v, want busy notice", data["message"])
	}
}

func TestProcessCommand_ValidationErrors(t *testing.T) {
	p := &mockPipeline{accept: true}
	engine := newTestServer(p, &mockPermissions{})

	cases := []struct {
		name string
		body string
	}{
		{"missing command", `{}`},
		{"empty command", `{"command": ""}`},
		{"bad source", `{"command": "x", "source": "carrier_pigeon"}`},
		{"broken JSON", `{"command":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, engine, http.MethodPost, "/api/v1/command", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestStatusEndpoint(t *testing.T) {
	p := &mockPipeline{statusFn: func() pipeline.Status {
		return pipeline.Status{Busy: true, Processed: 7}
	}}
	engine := newTestServer(p, &mockPermissions{})

	w := doRequest(t, engine, http.MethodGet, "/api/v1/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	data := envelope(t, w)["data"].(map[string]any)
	if data["busy"] != true {
		t.Error("busy = false, want true")
	}
	if data["processed"] != float64(7) {
		t.Errorf("processed = %v, want 7", data["processed"])
	}
}

func TestPermissionEndpoints(t *testing.T) {
	perms := &mockPermissions{records: []permission.Record{
		{Target: "chrome", Decision: permission.DecisionAllow},
	}}
	engine := newTestServer(&mockPipeline{}, perms)

	t.Run("list", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodGet, "/api/v1/permissions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		data := envelope(t, w)["data"].(map[string]any)
		items := data["permissions"].([]any)
		if len(items) != 1 {
			t.Fatalf("got %d records, want 1", len(items))
		}
	})

	t.Run("grant", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/api/v1/permissions/spotify/grant", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if len(perms.granted) != 1 || perms.granted[0] != "spotify" {
			t.Errorf("granted = %v, want [spotify]", perms.granted)
		}
	})

	t.Run("deny", func(t *testing.T) {
		w := doRequest(t, engine, http.MethodPost, "/api/v1/permissions/terminal/deny", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if len(perms.denied) != 1 || perms.denied[0] != "terminal" {
			t.Errorf("denied = %v, want [terminal]", perms.denied)
		}
	})

	t.Run("revoke missing record", func(t *testing.T) {
		perms.revokeErr = errRecordMissing
		w := doRequest(t, engine, http.MethodDelete, "/api/v1/permissions/nothing", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

var errRecordMissing = errors.New("no permission record")
