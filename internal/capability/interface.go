// Package capability defines the contracts for the OS-facing abilities the
// dispatcher drives. Implementations live elsewhere (internal/capability/local
// for exec-based adapters, mocks in tests); no decision logic belongs here.
package capability

import (
	"context"
	"time"
)

// AppController manages application lifecycle.
type AppController interface {
	Open(ctx context.Context, name string) error
	// Close terminates an application; force escalates to a hard kill.
	Close(ctx context.Context, name string, force bool) error
}

// BrowserController drives the default browser.
type BrowserController interface {
	Search(ctx context.Context, query string) error
	OpenURL(ctx context.Context, url string) error
	NavigateVideo(ctx context.Context, videoName string) error
}

// InputController injects keyboard and mouse events.
type InputController interface {
	Type(ctx context.Context, text string) error
	Click(ctx context.Context, x, y int) error
}

// ShellOutput is the raw outcome of a shell execution.
type ShellOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ShellExecutor runs shell commands with a hard timeout.
type ShellExecutor interface {
	Run(ctx context.Context, command string, timeout time.Duration) (*ShellOutput, error)
}

// SystemInfo is a point-in-time resource snapshot.
type SystemInfo struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
}

// SystemController covers power state, audio, display, window, and
// clipboard operations.
type SystemController interface {
	Shutdown(ctx context.Context) error
	Restart(ctx context.Context) error
	Sleep(ctx context.Context) error
	Lock(ctx context.Context) error
	Logout(ctx context.Context) error

	SetVolume(ctx context.Context, level int) error
	MuteVolume(ctx context.Context) error
	UnmuteVolume(ctx context.Context) error
	SetBrightness(ctx context.Context, level int) error

	MinimizeWindow(ctx context.Context) error
	MaximizeWindow(ctx context.Context) error
	CloseWindow(ctx context.Context) error

	GetClipboard(ctx context.Context) (string, error)
	SetClipboard(ctx context.Context, text string) error

	GetSystemInfo(ctx context.Context) (*SystemInfo, error)
}

// FileManager performs basic filesystem operations. Safety gating happens
// in the dispatcher, never here.
type FileManager interface {
	CreateFile(ctx context.Context, path, content string) error
	ListDirectory(ctx context.Context, path string) ([]string, error)
	DeleteFile(ctx context.Context, path string) error
}

// Speaker synthesizes a spoken response. wait blocks until playback ends.
type Speaker interface {
	Speak(ctx context.Context, text string, wait bool) error
}
