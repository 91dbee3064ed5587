package permission

import (
	"context"
	"path/filepath"
	"testing"

	"desktop-assistant/config"
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

// mockConsenter is a test implementation of the Consenter interface
type mockConsenter struct {
	grant     bool
	callCount int
}

func (m *mockConsenter) Consent(ctx context.Context, target string) (bool, error) {
	m.callCount++
	return m.grant, nil
}

func newTestManager(t *testing.T, cfg config.PermissionsConfig, consenter Consenter) Manager {
	t.Helper()
	if cfg.File == "" {
		cfg.File = filepath.Join(t.TempDir(), "permissions.json")
	}
	return New(noopLogger{}, cfg, consenter)
}

func TestCheckAndRequest_BlockedAlwaysWins(t *testing.T) {
	consenter := &mockConsenter{grant: true}
	mgr := newTestManager(t, config.PermissionsConfig{
		Blocked:      []string{"Regedit"},
		AutoApproved: []string{"regedit"},
	}, consenter)

	if mgr.CheckAndRequest(context.Background(), "regedit") {
		t.Error("blocked target must be denied even when auto-approved")
	}
	if consenter.callCount != 0 {
		t.Error("blocked target must never reach the consent step")
	}
}

func TestCheckAndRequest_AutoApproved(t *testing.T) {
	consenter := &mockConsenter{grant: false}
	mgr := newTestManager(t, config.PermissionsConfig{
		AutoApproved: []string{"notepad"},
	}, consenter)

	if !mgr.CheckAndRequest(context.Background(), "Notepad") {
		t.Error("auto-approved target must be allowed")
	}
	if consenter.callCount != 0 {
		t.Error("auto-approved target must never reach the consent step")
	}
}

func TestCheckAndRequest_ConsentInvokedOnceAndSticky(t *testing.T) {
	consenter := &mockConsenter{grant: true}
	mgr := newTestManager(t, config.PermissionsConfig{}, consenter)

	if !mgr.CheckAndRequest(context.Background(), "Chrome") {
		t.Fatal("expected grant when consenter approves")
	}
	// Case-folded key: a second lookup under different casing hits the
	// persisted record, not the consenter.
	if !mgr.CheckAndRequest(context.Background(), "chrome") {
		t.Error("persisted allow must be returned")
	}
	if consenter.callCount != 1 {
		t.Errorf("consenter called %d times, want 1", consenter.callCount)
	}
}

func TestCheckAndRequest_DenyIsSticky(t *testing.T) {
	consenter := &mockConsenter{grant: false}
	mgr := newTestManager(t, config.PermissionsConfig{}, consenter)

	if mgr.CheckAndRequest(context.Background(), "terminal") {
		t.Fatal("expected denial when consenter denies")
	}

	consenter.grant = true
	if mgr.CheckAndRequest(context.Background(), "terminal") {
		t.Error("a persisted deny must not be re-asked")
	}
	if consenter.callCount != 1 {
		t.Errorf("consenter called %d times, want 1", consenter.callCount)
	}
}

func TestPersistenceAcrossRestarts(t *testing.T) {
	file := filepath.Join(t.TempDir(), "permissions.json")

	mgr := newTestManager(t, config.PermissionsConfig{File: file}, &mockConsenter{grant: true})
	if !mgr.CheckAndRequest(context.Background(), "spotify") {
		t.Fatal("expected grant")
	}

	// New manager over the same file, with a denying consenter: the
	// persisted allow must win without consulting the consenter.
	consenter := &mockConsenter{grant: false}
	reloaded := newTestManager(t, config.PermissionsConfig{File: file}, consenter)
	if !reloaded.CheckAndRequest(context.Background(), "spotify") {
		t.Error("persisted allow must survive a restart")
	}
	if consenter.callCount != 0 {
		t.Error("persisted decision must not re-trigger consent")
	}
}

func TestGrantDenyRevokeList(t *testing.T) {
	consenter := &mockConsenter{grant: false}
	mgr := newTestManager(t, config.PermissionsConfig{}, consenter)
	ctx := context.Background()

	if err := mgr.Grant(ctx, "Chrome"); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Deny(ctx, "terminal"); err != nil {
		t.Fatal(err)
	}

	records := mgr.List(ctx)
	if len(records) != 2 {
		t.Fatalf("List returned %d records, want 2", len(records))
	}
	if records[0].Target != "chrome" || records[0].Decision != DecisionAllow {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[1].Target != "terminal" || records[1].Decision != DecisionDeny {
		t.Errorf("unexpected second record: %+v", records[1])
	}

	if !mgr.CheckAndRequest(ctx, "chrome") {
		t.Error("granted target must be allowed")
	}

	if err := mgr.Revoke(ctx, "chrome"); err != nil {
		t.Fatal(err)
	}
	if err := mgr.Revoke(ctx, "chrome"); err == nil {
		t.Error("revoking a missing record should error")
	}

	// Revoked target is undecided again and consults the consenter.
	if mgr.CheckAndRequest(ctx, "chrome") {
		t.Error("revoked target with denying consenter must be denied")
	}
	if consenter.callCount != 1 {
		t.Errorf("consenter called %d times, want 1", consenter.callCount)
	}
}
