package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"desktop-assistant/internal/llm"
	"desktop-assistant/internal/model"
)

func ok(message string) model.ExecutionResult {
	return model.ExecutionResult{Success: true, Message: message}
}

func okData(message string, data map[string]any) model.ExecutionResult {
	return model.ExecutionResult{Success: true, Message: message, Data: data}
}

func (d *implDispatcher) handleOpenApp(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	appName, failure := requireEntity(intent, "app_name")
	if failure != nil {
		return *failure
	}

	if !d.permissions.CheckAndRequest(ctx, appName) {
		return model.Failure(fmt.Sprintf("Permission denied for %s", appName))
	}

	if err := d.caps.App.Open(ctx, appName); err != nil {
		return model.Failure(fmt.Sprintf("Could not open %s: %v", appName, err))
	}
	return ok(fmt.Sprintf("Successfully opened %s", appName))
}

func (d *implDispatcher) handleCloseApp(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	appName, failure := requireEntity(intent, "app_name")
	if failure != nil {
		return *failure
	}

	if !d.permissions.CheckAndRequest(ctx, appName) {
		return model.Failure(fmt.Sprintf("Permission denied for %s", appName))
	}

	// Graceful close first, one forceful retry before giving up.
	if err := d.caps.App.Close(ctx, appName, false); err != nil {
		d.l.Warnf(ctx, "graceful close of %s failed, retrying forcefully: %v", appName, err)
		if err := d.caps.App.Close(ctx, appName, true); err != nil {
			return model.Failure(fmt.Sprintf("Could not close %s: %v", appName, err))
		}
	}
	return ok(fmt.Sprintf("Successfully closed %s", appName))
}

func (d *implDispatcher) handleSearchWeb(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	query, failure := requireEntity(intent, "query")
	if failure != nil {
		return *failure
	}

	if err := d.caps.Browser.Search(ctx, query); err != nil {
		return model.Failure(fmt.Sprintf("Search failed: %v", err))
	}
	return ok(fmt.Sprintf("Searching for %s", query))
}

func (d *implDispatcher) handleOpenURL(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	url, failure := requireEntity(intent, "url")
	if failure != nil {
		return *failure
	}

	if err := d.caps.Browser.OpenURL(ctx, url); err != nil {
		return model.Failure(fmt.Sprintf("Could not open URL: %v", err))
	}
	return ok(fmt.Sprintf("Opened %s", url))
}

func (d *implDispatcher) handleNavigateYoutube(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	videoName := intent.Entity("video_name")

	if err := d.caps.Browser.NavigateVideo(ctx, videoName); err != nil {
		return model.Failure(fmt.Sprintf("Could not open YouTube: %v", err))
	}
	if videoName == "" {
		return ok("Opened YouTube")
	}
	return ok(fmt.Sprintf("Searching YouTube for %s", videoName))
}

func (d *implDispatcher) handleTypeText(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	text, failure := requireEntity(intent, "text")
	if failure != nil {
		return *failure
	}

	if err := d.caps.Input.Type(ctx, text); err != nil {
		return model.Failure(fmt.Sprintf("Could not type text: %v", err))
	}
	return ok("Typed the text")
}

func (d *implDispatcher) handleClick(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	x, okX := intEntity(intent, "x")
	y, okY := intEntity(intent, "y")
	if !okX || !okY {
		return model.Failure("Missing required entity: x, y")
	}

	if err := d.caps.Input.Click(ctx, x, y); err != nil {
		return model.Failure(fmt.Sprintf("Could not click: %v", err))
	}
	return ok(fmt.Sprintf("Clicked at (%d, %d)", x, y))
}

func (d *implDispatcher) handleRunCommand(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	command, failure := requireEntity(intent, "command")
	if failure != nil {
		return *failure
	}

	if verdict := d.safety.CanExecuteCommand(command); !verdict.Allowed {
		return model.Failure(fmt.Sprintf("Command rejected: %s", verdict.Reason))
	}

	timeout := time.Duration(0)
	if secs, found := intEntity(intent, "timeout"); found && secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	out, err := d.caps.Shell.Run(ctx, command, timeout)
	if err != nil {
		return model.Failure(fmt.Sprintf("Command failed: %v", err))
	}

	data := map[string]any{
		"stdout":    out.Stdout,
		"stderr":    out.Stderr,
		"exit_code": out.ExitCode,
	}
	if out.ExitCode != 0 {
		return model.ExecutionResult{
			Success: false,
			Message: fmt.Sprintf("Command exited with code %d", out.ExitCode),
			Data:    data,
		}
	}
	return okData("Command executed", data)
}

func (d *implDispatcher) handleGenerateCode(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	prompt, failure := requireEntity(intent, "prompt")
	if failure != nil {
		return *failure
	}
	language := intent.Entity("language")

	result, err := d.router.GenerateCode(ctx, prompt, language, 0)
	if err != nil {
		return model.Failure(fmt.Sprintf("Code generation failed: %v", err))
	}
	return okData("Here is the code", map[string]any{
		"code":     result.Text,
		"provider": result.Provider,
	})
}

func (d *implDispatcher) handleGetTime(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	now := time.Now()
	return ok(fmt.Sprintf("It's %s on %s",
		now.Format("3:04 PM"), now.Format("January 2, 2006")))
}

func (d *implDispatcher) handleGeneralQuery(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	query, failure := requireEntity(intent, "query")
	if failure != nil {
		return *failure
	}

	result, err := d.router.Generate(ctx, &llm.GenerateInput{
		Prompt:   query,
		TaskType: llm.TaskGeneral,
		System:   "You are a helpful desktop assistant. Answer in one or two short sentences.",
	})
	if err != nil {
		return model.Failure(fmt.Sprintf("I couldn't answer that: %v", err))
	}
	return ok(strings.TrimSpace(result.Text))
}

func (d *implDispatcher) handleSystemShutdown(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.Shutdown(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Shutdown failed: %v", err))
	}
	return ok("Shutting down")
}

func (d *implDispatcher) handleSystemRestart(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.Restart(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Restart failed: %v", err))
	}
	return ok("Restarting")
}

func (d *implDispatcher) handleSystemSleep(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.Sleep(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Sleep failed: %v", err))
	}
	return ok("Going to sleep")
}

func (d *implDispatcher) handleSystemLock(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.Lock(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Lock failed: %v", err))
	}
	return ok("Screen locked")
}

func (d *implDispatcher) handleSystemLogout(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.Logout(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Logout failed: %v", err))
	}
	return ok("Logging out")
}

func (d *implDispatcher) handleSetVolume(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	level, found := intEntity(intent, "level")
	if !found {
		return model.Failure("Missing required entity: level")
	}

	if err := d.caps.System.SetVolume(ctx, level); err != nil {
		return model.Failure(fmt.Sprintf("Could not set volume: %v", err))
	}
	return ok(fmt.Sprintf("Volume set to %d", level))
}

func (d *implDispatcher) handleMuteVolume(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.MuteVolume(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Could not mute: %v", err))
	}
	return ok("Muted")
}

func (d *implDispatcher) handleUnmuteVolume(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.UnmuteVolume(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Could not unmute: %v", err))
	}
	return ok("Unmuted")
}

func (d *implDispatcher) handleSetBrightness(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	level, found := intEntity(intent, "level")
	if !found {
		return model.Failure("Missing required entity: level")
	}

	if err := d.caps.System.SetBrightness(ctx, level); err != nil {
		return model.Failure(fmt.Sprintf("Could not set brightness: %v", err))
	}
	return ok(fmt.Sprintf("Brightness set to %d", level))
}

func (d *implDispatcher) handleMinimizeWindow(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.MinimizeWindow(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Could not minimize window: %v", err))
	}
	return ok("Window minimized")
}

func (d *implDispatcher) handleMaximizeWindow(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.MaximizeWindow(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Could not maximize window: %v", err))
	}
	return ok("Window maximized")
}

func (d *implDispatcher) handleCloseWindow(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	if err := d.caps.System.CloseWindow(ctx); err != nil {
		return model.Failure(fmt.Sprintf("Could not close window: %v", err))
	}
	return ok("Window closed")
}

func (d *implDispatcher) handleGetClipboard(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	text, err := d.caps.System.GetClipboard(ctx)
	if err != nil {
		return model.Failure(fmt.Sprintf("Could not read clipboard: %v", err))
	}
	return okData("Clipboard contents", map[string]any{"text": text})
}

func (d *implDispatcher) handleSetClipboard(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	text, failure := requireEntity(intent, "text")
	if failure != nil {
		return *failure
	}

	if err := d.caps.System.SetClipboard(ctx, text); err != nil {
		return model.Failure(fmt.Sprintf("Could not write clipboard: %v", err))
	}
	return ok("Copied to clipboard")
}

func (d *implDispatcher) handleCreateFile(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	filepath, failure := requireEntity(intent, "filepath")
	if failure != nil {
		return *failure
	}
	content := intent.Entity("content")

	if verdict := d.safety.CanModify(filepath); !verdict.Allowed {
		return model.Failure(fmt.Sprintf("Access denied: %s", verdict.Reason))
	}

	if err := d.caps.Files.CreateFile(ctx, filepath, content); err != nil {
		return model.Failure(fmt.Sprintf("Could not create file: %v", err))
	}
	return ok(fmt.Sprintf("Created %s", filepath))
}

func (d *implDispatcher) handleDeleteFile(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	filepath, failure := requireEntity(intent, "filepath")
	if failure != nil {
		return *failure
	}

	// Deletion is opt-in by folder; the capability is never reached on a
	// denied verdict.
	if verdict := d.safety.CanDelete(filepath); !verdict.Allowed {
		return model.Failure(fmt.Sprintf("Cannot delete file: %s", verdict.Reason))
	}

	if err := d.caps.Files.DeleteFile(ctx, filepath); err != nil {
		return model.Failure(fmt.Sprintf("Could not delete file: %v", err))
	}
	return ok(fmt.Sprintf("Deleted %s", filepath))
}

func (d *implDispatcher) handleListDirectory(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	dirpath, failure := requireEntity(intent, "dirpath")
	if failure != nil {
		return *failure
	}

	if verdict := d.safety.IsPathSafe(dirpath); !verdict.Allowed {
		return model.Failure(fmt.Sprintf("Access denied: %s", verdict.Reason))
	}

	entries, err := d.caps.Files.ListDirectory(ctx, dirpath)
	if err != nil {
		return model.Failure(fmt.Sprintf("Could not list directory: %v", err))
	}
	return okData(fmt.Sprintf("%d entries in %s", len(entries), dirpath),
		map[string]any{"entries": entries})
}

func (d *implDispatcher) handleGetSystemInfo(ctx context.Context, intent *model.Intent) model.ExecutionResult {
	info, err := d.caps.System.GetSystemInfo(ctx)
	if err != nil {
		return model.Failure(fmt.Sprintf("Could not read system info: %v", err))
	}

	return okData(fmt.Sprintf("CPU %.0f%%, memory %.0f%%, disk %.0f%%",
		info.CPUPercent, info.MemoryPercent, info.DiskPercent),
		map[string]any{
			"cpu_percent":    info.CPUPercent,
			"memory_percent": info.MemoryPercent,
			"disk_percent":   info.DiskPercent,
		})
}
