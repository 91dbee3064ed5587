package local

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"desktop-assistant/internal/capability"
	"desktop-assistant/pkg/log"
)

// SystemController covers power, audio, display, window, and clipboard
// operations through the usual desktop tooling.
type SystemController struct {
	l log.Logger
}

func (s *SystemController) Shutdown(ctx context.Context) error {
	return run(ctx, "systemctl", "poweroff")
}

func (s *SystemController) Restart(ctx context.Context) error {
	return run(ctx, "systemctl", "reboot")
}

func (s *SystemController) Sleep(ctx context.Context) error {
	return run(ctx, "systemctl", "suspend")
}

func (s *SystemController) Lock(ctx context.Context) error {
	return run(ctx, "loginctl", "lock-session")
}

func (s *SystemController) Logout(ctx context.Context) error {
	return run(ctx, "loginctl", "terminate-user", os.Getenv("USER"))
}

func (s *SystemController) SetVolume(ctx context.Context, level int) error {
	if level < 0 || level > 100 {
		return fmt.Errorf("volume level %d out of range 0-100", level)
	}
	return run(ctx, "pactl", "set-sink-volume", "@DEFAULT_SINK@", fmt.Sprintf("%d%%", level))
}

func (s *SystemController) MuteVolume(ctx context.Context) error {
	return run(ctx, "pactl", "set-sink-mute", "@DEFAULT_SINK@", "1")
}

func (s *SystemController) UnmuteVolume(ctx context.Context) error {
	return run(ctx, "pactl", "set-sink-mute", "@DEFAULT_SINK@", "0")
}

func (s *SystemController) SetBrightness(ctx context.Context, level int) error {
	if level < 0 || level > 100 {
		return fmt.Errorf("brightness level %d out of range 0-100", level)
	}
	return run(ctx, "brightnessctl", "set", fmt.Sprintf("%d%%", level))
}

func (s *SystemController) MinimizeWindow(ctx context.Context) error {
	return run(ctx, "xdotool", "getactivewindow", "windowminimize")
}

func (s *SystemController) MaximizeWindow(ctx context.Context) error {
	return run(ctx, "wmctrl", "-r", ":ACTIVE:", "-b", "add,maximized_vert,maximized_horz")
}

func (s *SystemController) CloseWindow(ctx context.Context) error {
	return run(ctx, "xdotool", "getactivewindow", "windowclose")
}

func (s *SystemController) GetClipboard(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "xclip", "-selection", "clipboard", "-o").Output()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return string(out), nil
}

func (s *SystemController) SetClipboard(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, "xclip", "-selection", "clipboard")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

func (s *SystemController) GetSystemInfo(ctx context.Context) (*capability.SystemInfo, error) {
	info := &capability.SystemInfo{}

	if out, err := exec.CommandContext(ctx, "sh", "-c",
		`top -bn1 | awk '/Cpu\(s\)/ {print 100-$8}'`).Output(); err == nil {
		info.CPUPercent = parsePercent(string(out))
	}
	if out, err := exec.CommandContext(ctx, "sh", "-c",
		`free | awk '/Mem:/ {printf "%.1f", $3/$2*100}'`).Output(); err == nil {
		info.MemoryPercent = parsePercent(string(out))
	}
	if out, err := exec.CommandContext(ctx, "sh", "-c",
		`df / | awk 'NR==2 {gsub("%",""); print $5}'`).Output(); err == nil {
		info.DiskPercent = parsePercent(string(out))
	}

	return info, nil
}

func parsePercent(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
