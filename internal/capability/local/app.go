package local

import (
	"context"
	"fmt"
	"os/exec"

	"desktop-assistant/pkg/log"
)

// AppController opens and closes applications by name.
type AppController struct {
	l log.Logger
}

func (a *AppController) Open(ctx context.Context, name string) error {
	if err := exec.CommandContext(ctx, name).Start(); err != nil {
		// Fall back to the desktop launcher for names that are not
		// directly on PATH.
		if err2 := run(ctx, "gtk-launch", name); err2 != nil {
			return fmt.Errorf("failed to open %s: %w", name, err)
		}
	}
	a.l.Infof(ctx, "opened application: %s", name)
	return nil
}

func (a *AppController) Close(ctx context.Context, name string, force bool) error {
	args := []string{name}
	if force {
		args = []string{"-9", name}
	}
	if err := run(ctx, "pkill", args...); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	a.l.Infof(ctx, "closed application: %s (force=%v)", name, force)
	return nil
}
