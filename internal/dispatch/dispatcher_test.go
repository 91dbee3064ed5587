package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"desktop-assistant/internal/capability"
	"desktop-assistant/internal/llm"
	"desktop-assistant/internal/model"
	"desktop-assistant/internal/permission"
	"desktop-assistant/internal/safety"
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

// mockApp is a test implementation of capability.AppController
type mockApp struct {
	openErr         error
	gracefulErr     error
	forceErr        error
	closeCalls      []bool
	panicOnOpen     bool
	lastOpenedName  string
}

func (m *mockApp) Open(ctx context.Context, name string) error {
	if m.panicOnOpen {
		panic("capability exploded")
	}
	m.lastOpenedName = name
	return m.openErr
}

func (m *mockApp) Close(ctx context.Context, name string, force bool) error {
	m.closeCalls = append(m.closeCalls, force)
	if force {
		return m.forceErr
	}
	return m.gracefulErr
}

// mockBrowser is a test implementation of capability.BrowserController
type mockBrowser struct {
	lastQuery string
	lastURL   string
}

func (m *mockBrowser) Search(ctx context.Context, query string) error {
	m.lastQuery = query
	return nil
}

func (m *mockBrowser) OpenURL(ctx context.Context, url string) error {
	m.lastURL = url
	return nil
}

func (m *mockBrowser) NavigateVideo(ctx context.Context, videoName string) error { return nil }

// mockInput is a test implementation of capability.InputController
type mockInput struct {
	typed          string
	clickX, clickY int
}

func (m *mockInput) Type(ctx context.Context, text string) error {
	m.typed = text
	return nil
}

func (m *mockInput) Click(ctx context.Context, x, y int) error {
	m.clickX, m.clickY = x, y
	return nil
}

// mockShell is a test implementation of capability.ShellExecutor
type mockShell struct {
	output      *capability.ShellOutput
	err         error
	lastCommand string
	callCount   int
}

func (m *mockShell) Run(ctx context.Context, command string, timeout time.Duration) (*capability.ShellOutput, error) {
	m.callCount++
	m.lastCommand = command
	return m.output, m.err
}

// mockSystem is a test implementation of capability.SystemController
type mockSystem struct {
	volume    int
	clipboard string
	info      *capability.SystemInfo
}

func (m *mockSystem) Shutdown(ctx context.Context) error { return nil }
func (m *mockSystem) Restart(ctx context.Context) error  { return nil }
func (m *mockSystem) Sleep(ctx context.Context) error    { return nil }
func (m *mockSystem) Lock(ctx context.Context) error     { return nil }
func (m *mockSystem) Logout(ctx context.Context) error   { return nil }

func (m *mockSystem) SetVolume(ctx context.Context, level int) error {
	m.volume = level
	return nil
}
func (m *mockSystem) MuteVolume(ctx context.Context) error              { return nil }
func (m *mockSystem) UnmuteVolume(ctx context.Context) error            { return nil }
func (m *mockSystem) SetBrightness(ctx context.Context, level int) error { return nil }

func (m *mockSystem) MinimizeWindow(ctx context.Context) error { return nil }
func (m *mockSystem) MaximizeWindow(ctx context.Context) error { return nil }
func (m *mockSystem) CloseWindow(ctx context.Context) error    { return nil }

func (m *mockSystem) GetClipboard(ctx context.Context) (string, error) { return m.clipboard, nil }
func (m *mockSystem) SetClipboard(ctx context.Context, text string) error {
	m.clipboard = text
	return nil
}

func (m *mockSystem) GetSystemInfo(ctx context.Context) (*capability.SystemInfo, error) {
	if m.info == nil {
		return &capability.SystemInfo{}, nil
	}
	return m.info, nil
}

// mockFiles is a test implementation of capability.FileManager
type mockFiles struct {
	created map[string]string
	entries []string
	deleted []string
}

func (m *mockFiles) CreateFile(ctx context.Context, path, content string) error {
	if m.created == nil {
		m.created = map[string]string{}
	}
	m.created[path] = content
	return nil
}

func (m *mockFiles) ListDirectory(ctx context.Context, path string) ([]string, error) {
	return m.entries, nil
}

func (m *mockFiles) DeleteFile(ctx context.Context, path string) error {
	m.deleted = append(m.deleted, path)
	return nil
}

// mockPermissions is a test implementation of permission.Manager
type mockPermissions struct {
	grant      bool
	lastTarget string
	callCount  int
}

func (m *mockPermissions) CheckAndRequest(ctx context.Context, target string) bool {
	m.callCount++
	m.lastTarget = target
	return m.grant
}

func (m *mockPermissions) Grant(ctx context.Context, target string) error  { return nil }
func (m *mockPermissions) Deny(ctx context.Context, target string) error   { return nil }
func (m *mockPermissions) Revoke(ctx context.Context, target string) error { return nil }
func (m *mockPermissions) List(ctx context.Context) []permission.Record    { return nil }

// mockSafety is a test implementation of safety.Checker
type mockSafety struct {
	execAllowed bool
	pathAllowed bool
}

func (m *mockSafety) IsPathSafe(path string) Verdict  { return verdict(m.pathAllowed) }
func (m *mockSafety) CanDelete(path string) Verdict   { return verdict(m.pathAllowed) }
func (m *mockSafety) CanModify(path string) Verdict   { return verdict(m.pathAllowed) }
func (m *mockSafety) CanExecuteCommand(commandText string) Verdict {
	return verdict(m.execAllowed)
}

type Verdict = safety.Verdict

func verdict(allowed bool) Verdict {
	if allowed {
		return Verdict{Allowed: true, Reason: "ok"}
	}
	return Verdict{Allowed: false, Reason: "denied by test"}
}

// mockRouter is a test implementation of llm.Router
type mockRouter struct {
	text string
	err  error
}

func (m *mockRouter) Generate(ctx context.Context, input *llm.GenerateInput) (*llm.GenerateResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResult{Success: true, Text: m.text, Provider: "ollama"}, nil
}

func (m *mockRouter) GenerateCode(ctx context.Context, prompt, language string, maxTokens int) (*llm.GenerateResult, error) {
	return m.Generate(ctx, &llm.GenerateInput{Prompt: prompt})
}

func (m *mockRouter) Decide(ctx context.Context, input *llm.GenerateInput) llm.RoutingDecision {
	return llm.RoutingDecision{}
}

func (m *mockRouter) VerifyAvailability(ctx context.Context) error { return nil }
func (m *mockRouter) Status(ctx context.Context) llm.Status        { return llm.Status{} }

type fixture struct {
	app         *mockApp
	browser     *mockBrowser
	input       *mockInput
	shell       *mockShell
	system      *mockSystem
	files       *mockFiles
	permissions *mockPermissions
	safety      *mockSafety
	router      *mockRouter
	dispatcher  Dispatcher
}

func newFixture() *fixture {
	f := &fixture{
		app:         &mockApp{},
		browser:     &mockBrowser{},
		input:       &mockInput{},
		shell:       &mockShell{output: &capability.ShellOutput{Stdout: "out"}},
		system:      &mockSystem{},
		files:       &mockFiles{},
		permissions: &mockPermissions{grant: true},
		safety:      &mockSafety{execAllowed: true, pathAllowed: true},
		router:      &mockRouter{text: "answer"},
	}
	f.dispatcher = New(noopLogger{}, Capabilities{
		App:     f.app,
		Browser: f.browser,
		Input:   f.input,
		Shell:   f.shell,
		System:  f.system,
		Files:   f.files,
	}, f.permissions, f.safety, f.router)
	return f
}

func intentOf(kind model.IntentKind, entities map[string]any) *model.Intent {
	if entities == nil {
		entities = map[string]any{}
	}
	return &model.Intent{Kind: kind, Entities: entities, Confidence: 0.9, Origin: model.OriginModel}
}

func TestDispatch_UnknownKind(t *testing.T) {
	f := newFixture()
	result := f.dispatcher.Dispatch(context.Background(), intentOf("make_coffee", nil))
	if result.Success {
		t.Error("unmapped kind must fail")
	}
	if !strings.Contains(result.Message, "Unknown intent: make_coffee") {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestDispatch_AllTaxonomyKindsMapped(t *testing.T) {
	f := newFixture()
	d := f.dispatcher.(*implDispatcher)
	for _, kind := range model.KnownIntents {
		if _, ok := d.handlers[kind]; !ok {
			t.Errorf("no handler mapped for intent kind %s", kind)
		}
	}
}

func TestDispatch_MissingRequiredEntity(t *testing.T) {
	f := newFixture()
	result := f.dispatcher.Dispatch(context.Background(), intentOf(model.IntentOpenApp, nil))
	if result.Success {
		t.Error("missing entity must fail")
	}
	if !strings.Contains(result.Message, "app_name") {
		t.Errorf("message %q should name the missing entity", result.Message)
	}
	if f.permissions.callCount != 0 {
		t.Error("validation failure must not reach permission check")
	}
}

func TestDispatch_OpenAppPermissionDenied(t *testing.T) {
	f := newFixture()
	f.permissions.grant = false

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentOpenApp, map[string]any{"app_name": "chrome"}))

	if result.Success {
		t.Error("denied permission must fail the handler")
	}
	if !strings.Contains(result.Message, "Permission denied") {
		t.Errorf("unexpected message: %s", result.Message)
	}
	if f.app.lastOpenedName != "" {
		t.Error("capability must not be invoked after denial")
	}
}

func TestDispatch_CloseAppForcefulRetry(t *testing.T) {
	f := newFixture()
	f.app.gracefulErr = errors.New("still running")

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentCloseApp, map[string]any{"app_name": "chrome"}))

	if !result.Success {
		t.Fatalf("expected success after forceful retry, got: %s", result.Message)
	}
	if len(f.app.closeCalls) != 2 || f.app.closeCalls[0] || !f.app.closeCalls[1] {
		t.Errorf("closeCalls = %v, want [false true]", f.app.closeCalls)
	}
}

func TestDispatch_CloseAppBothAttemptsFail(t *testing.T) {
	f := newFixture()
	f.app.gracefulErr = errors.New("still running")
	f.app.forceErr = errors.New("unkillable")

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentCloseApp, map[string]any{"app_name": "chrome"}))

	if result.Success {
		t.Error("expected failure when both close attempts fail")
	}
}

func TestDispatch_RunCommandSafetyGate(t *testing.T) {
	f := newFixture()
	f.safety.execAllowed = false

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentRunCommand, map[string]any{"command": "rm -rf /"}))

	if result.Success {
		t.Error("unsafe command must be rejected")
	}
	if f.shell.callCount != 0 {
		t.Error("shell must not run a rejected command")
	}
}

func TestDispatch_RunCommandOutputInData(t *testing.T) {
	f := newFixture()
	f.shell.output = &capability.ShellOutput{Stdout: "hello\n", ExitCode: 0}

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentRunCommand, map[string]any{"command": "echo hello"}))

	if !result.Success {
		t.Fatalf("expected success, got: %s", result.Message)
	}
	if result.Data["stdout"] != "hello\n" {
		t.Errorf("stdout = %v, want hello", result.Data["stdout"])
	}
}

func TestDispatch_RunCommandNonZeroExit(t *testing.T) {
	f := newFixture()
	f.shell.output = &capability.ShellOutput{Stderr: "boom", ExitCode: 2}

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentRunCommand, map[string]any{"command": "false"}))

	if result.Success {
		t.Error("non-zero exit must fail")
	}
	if result.Data["exit_code"] != 2 {
		t.Errorf("exit_code = %v, want 2", result.Data["exit_code"])
	}
}

func TestDispatch_ClickCoercesEntityTypes(t *testing.T) {
	f := newFixture()

	// JSON numbers arrive as float64, but models also emit strings.
	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentClick, map[string]any{"x": float64(100), "y": "250"}))

	if !result.Success {
		t.Fatalf("expected success, got: %s", result.Message)
	}
	if f.input.clickX != 100 || f.input.clickY != 250 {
		t.Errorf("clicked at (%d, %d), want (100, 250)", f.input.clickX, f.input.clickY)
	}
}

func TestDispatch_GetTimeFormat(t *testing.T) {
	f := newFixture()
	result := f.dispatcher.Dispatch(context.Background(), intentOf(model.IntentGetTime, nil))
	if !result.Success {
		t.Fatalf("expected success, got: %s", result.Message)
	}
	if !strings.HasPrefix(result.Message, "It's ") || !strings.Contains(result.Message, " on ") {
		t.Errorf("unexpected time format: %s", result.Message)
	}
}

func TestDispatch_GeneralQueryUsesRouter(t *testing.T) {
	f := newFixture()
	f.router.text = "  The sky is blue.  "

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentGeneralQuery, map[string]any{"query": "why is the sky blue"}))

	if !result.Success {
		t.Fatalf("expected success, got: %s", result.Message)
	}
	if result.Message != "The sky is blue." {
		t.Errorf("Message = %q, want trimmed router text", result.Message)
	}
}

func TestDispatch_CreateFileSafetyGate(t *testing.T) {
	f := newFixture()
	f.safety.pathAllowed = false

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentCreateFile, map[string]any{"filepath": "/etc/passwd", "content": "x"}))

	if result.Success {
		t.Error("forbidden path must be rejected")
	}
	if len(f.files.created) != 0 {
		t.Error("file capability must not run after denial")
	}
}

func TestDispatch_DeleteFileDeniedNeverReachesCapability(t *testing.T) {
	f := newFixture()
	f.safety.pathAllowed = false

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentDeleteFile, map[string]any{"filepath": `C:\Windows\System32\x.dll`}))

	if result.Success {
		t.Error("forbidden path must be rejected")
	}
	if !strings.HasPrefix(result.Message, "Cannot delete file:") {
		t.Errorf("Message = %q, want prefix \"Cannot delete file:\"", result.Message)
	}
	if len(f.files.deleted) != 0 {
		t.Error("delete capability must not run after denial")
	}
}

func TestDispatch_DeleteFileAllowed(t *testing.T) {
	f := newFixture()

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentDeleteFile, map[string]any{"filepath": "/home/user/notes/old.txt"}))

	if !result.Success {
		t.Fatalf("expected success, got: %s", result.Message)
	}
	if len(f.files.deleted) != 1 || f.files.deleted[0] != "/home/user/notes/old.txt" {
		t.Errorf("deleted = %v, want the requested path", f.files.deleted)
	}
}

func TestDispatch_OpenCloseSuccessMessages(t *testing.T) {
	f := newFixture()

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentOpenApp, map[string]any{"app_name": "chrome"}))
	if result.Message != "Successfully opened chrome" {
		t.Errorf("Message = %q, want \"Successfully opened chrome\"", result.Message)
	}

	result = f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentCloseApp, map[string]any{"app_name": "chrome"}))
	if result.Message != "Successfully closed chrome" {
		t.Errorf("Message = %q, want \"Successfully closed chrome\"", result.Message)
	}
}

func TestDispatch_PanicRecovered(t *testing.T) {
	f := newFixture()
	f.app.panicOnOpen = true

	result := f.dispatcher.Dispatch(context.Background(),
		intentOf(model.IntentOpenApp, map[string]any{"app_name": "chrome"}))

	if result.Success {
		t.Error("panic must surface as a failure result")
	}
	if !strings.Contains(result.Message, "capability exploded") {
		t.Errorf("message %q should carry the panic detail", result.Message)
	}
}
