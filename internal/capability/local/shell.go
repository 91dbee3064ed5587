package local

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"desktop-assistant/internal/capability"
	"desktop-assistant/pkg/log"
)

const defaultShellTimeout = 30 * time.Second

// ShellExecutor runs commands through the system shell with a hard timeout.
type ShellExecutor struct {
	l log.Logger
}

func (s *ShellExecutor) Run(ctx context.Context, command string, timeout time.Duration) (*capability.ShellOutput, error) {
	if timeout <= 0 {
		timeout = defaultShellTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &capability.ShellOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Non-zero exit is an outcome, not a transport failure.
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return nil, err
	}

	s.l.Debugf(ctx, "shell command ok: %q stdout_bytes=%d", command, stdout.Len())
	return out, nil
}
