package permission

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// CheckAndRequest resolves a target to a boolean grant. Blocked-list
// membership always wins; an undecided record runs the consent step and
// persists its outcome so the decision is sticky across restarts.
func (m *implManager) CheckAndRequest(ctx context.Context, target string) bool {
	key := foldKey(target)

	if m.blocked[key] {
		m.l.Infof(ctx, "permission denied (blocked list): %s", key)
		return false
	}
	if m.autoApproved[key] {
		return true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.records[key] {
	case DecisionAllow:
		return true
	case DecisionDeny:
		return false
	}

	granted := m.requestConsent(ctx, key)

	decision := DecisionDeny
	if granted {
		decision = DecisionAllow
	}
	m.records[key] = decision
	if err := m.persist(); err != nil {
		m.l.Errorf(ctx, "failed to persist permission for %s: %v", key, err)
	}
	m.l.Infof(ctx, "permission %s recorded for %s", decision, key)
	return granted
}

func (m *implManager) requestConsent(ctx context.Context, key string) bool {
	if m.consenter == nil {
		return false
	}
	granted, err := m.consenter.Consent(ctx, key)
	if err != nil {
		m.l.Warnf(ctx, "consent step failed for %s, denying: %v", key, err)
		return false
	}
	return granted
}

func (m *implManager) Grant(ctx context.Context, target string) error {
	return m.record(ctx, target, DecisionAllow)
}

func (m *implManager) Deny(ctx context.Context, target string) error {
	return m.record(ctx, target, DecisionDeny)
}

func (m *implManager) record(ctx context.Context, target string, decision Decision) error {
	key := foldKey(target)
	if key == "" {
		return fmt.Errorf("target name is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = decision
	return m.persist()
}

func (m *implManager) Revoke(ctx context.Context, target string) error {
	key := foldKey(target)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[key]; !ok {
		return fmt.Errorf("no permission record for %s", key)
	}
	delete(m.records, key)
	return m.persist()
}

func (m *implManager) List(ctx context.Context) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, 0, len(m.records))
	for target, decision := range m.records {
		out = append(out, Record{Target: target, Decision: decision})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target < out[j].Target })
	return out
}

func (m *implManager) load() {
	data, err := os.ReadFile(m.file)
	if err != nil {
		return
	}

	var st store
	if err := json.Unmarshal(data, &st); err != nil {
		return
	}
	for target, decision := range st.Permissions {
		m.records[foldKey(target)] = decision
	}
}

// persist writes the store atomically. Caller holds m.mu.
func (m *implManager) persist() error {
	if err := os.MkdirAll(filepath.Dir(m.file), 0o755); err != nil {
		return fmt.Errorf("failed to create permission store dir: %w", err)
	}

	data, err := json.MarshalIndent(store{Permissions: m.records}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode permission store: %w", err)
	}

	tmp := m.file + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write permission store: %w", err)
	}
	return os.Rename(tmp, m.file)
}
