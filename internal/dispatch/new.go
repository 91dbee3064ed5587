package dispatch

import (
	"context"

	"desktop-assistant/internal/capability"
	"desktop-assistant/internal/llm"
	"desktop-assistant/internal/model"
	"desktop-assistant/internal/permission"
	"desktop-assistant/internal/safety"
	"desktop-assistant/pkg/log"
)

// Capabilities bundles the external abilities handlers drive.
type Capabilities struct {
	App     capability.AppController
	Browser capability.BrowserController
	Input   capability.InputController
	Shell   capability.ShellExecutor
	System  capability.SystemController
	Files   capability.FileManager
}

type handlerFunc func(ctx context.Context, intent *model.Intent) model.ExecutionResult

type implDispatcher struct {
	l           log.Logger
	caps        Capabilities
	permissions permission.Manager
	safety      safety.Checker
	router      llm.Router

	handlers map[model.IntentKind]handlerFunc
}

var _ Dispatcher = &implDispatcher{}

// New creates a Dispatcher wired to the given capabilities and gates.
func New(l log.Logger, caps Capabilities, permissions permission.Manager, safetyChecker safety.Checker, router llm.Router) Dispatcher {
	d := &implDispatcher{
		l:           l,
		caps:        caps,
		permissions: permissions,
		safety:      safetyChecker,
		router:      router,
	}

	d.handlers = map[model.IntentKind]handlerFunc{
		model.IntentOpenApp:         d.handleOpenApp,
		model.IntentCloseApp:        d.handleCloseApp,
		model.IntentSearchWeb:       d.handleSearchWeb,
		model.IntentOpenURL:         d.handleOpenURL,
		model.IntentNavigateYoutube: d.handleNavigateYoutube,
		model.IntentTypeText:        d.handleTypeText,
		model.IntentClick:           d.handleClick,
		model.IntentRunCommand:      d.handleRunCommand,
		model.IntentGenerateCode:    d.handleGenerateCode,
		model.IntentGetTime:         d.handleGetTime,
		model.IntentGeneralQuery:    d.handleGeneralQuery,
		model.IntentSystemShutdown:  d.handleSystemShutdown,
		model.IntentSystemRestart:   d.handleSystemRestart,
		model.IntentSystemSleep:     d.handleSystemSleep,
		model.IntentSystemLock:      d.handleSystemLock,
		model.IntentSystemLogout:    d.handleSystemLogout,
		model.IntentSetVolume:       d.handleSetVolume,
		model.IntentMuteVolume:      d.handleMuteVolume,
		model.IntentUnmuteVolume:    d.handleUnmuteVolume,
		model.IntentSetBrightness:   d.handleSetBrightness,
		model.IntentMinimizeWindow:  d.handleMinimizeWindow,
		model.IntentMaximizeWindow:  d.handleMaximizeWindow,
		model.IntentCloseWindow:     d.handleCloseWindow,
		model.IntentGetClipboard:    d.handleGetClipboard,
		model.IntentSetClipboard:    d.handleSetClipboard,
		model.IntentCreateFile:      d.handleCreateFile,
		model.IntentDeleteFile:      d.handleDeleteFile,
		model.IntentListDirectory:   d.handleListDirectory,
		model.IntentGetSystemInfo:   d.handleGetSystemInfo,
	}

	return d
}
