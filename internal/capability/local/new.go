// Package local provides thin exec-based implementations of the capability
// contracts for a Linux desktop. Each adapter shells out to the common
// tooling for its concern and reports the raw outcome; all gating and
// retry policy stays with the caller.
package local

import (
	"context"
	"os/exec"

	"desktop-assistant/pkg/log"
)

// Adapters bundles every local capability implementation.
type Adapters struct {
	App     *AppController
	Browser *BrowserController
	Input   *InputController
	Shell   *ShellExecutor
	System  *SystemController
	Files   *FileManager
	Speaker *Speaker
}

// New builds the full local adapter set.
func New(l log.Logger, speechCommand string) *Adapters {
	return &Adapters{
		App:     &AppController{l: l},
		Browser: &BrowserController{l: l},
		Input:   &InputController{l: l},
		Shell:   &ShellExecutor{l: l},
		System:  &SystemController{l: l},
		Files:   &FileManager{l: l},
		Speaker: &Speaker{l: l, command: speechCommand},
	}
}

func run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
