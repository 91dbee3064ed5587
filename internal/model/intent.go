package model

// IntentKind is the closed taxonomy of actionable intents.
type IntentKind string

const (
	IntentOpenApp         IntentKind = "open_app"
	IntentCloseApp        IntentKind = "close_app"
	IntentSearchWeb       IntentKind = "search_web"
	IntentOpenURL         IntentKind = "open_url"
	IntentNavigateYoutube IntentKind = "navigate_youtube"
	IntentTypeText        IntentKind = "type_text"
	IntentClick           IntentKind = "click"
	IntentRunCommand      IntentKind = "run_command"
	IntentGenerateCode    IntentKind = "generate_code"
	IntentGetTime         IntentKind = "get_time"
	IntentGeneralQuery    IntentKind = "general_query"
	IntentSystemShutdown  IntentKind = "system_shutdown"
	IntentSystemRestart   IntentKind = "system_restart"
	IntentSystemSleep     IntentKind = "system_sleep"
	IntentSystemLock      IntentKind = "system_lock"
	IntentSystemLogout    IntentKind = "system_logout"
	IntentSetVolume       IntentKind = "set_volume"
	IntentMuteVolume      IntentKind = "mute_volume"
	IntentUnmuteVolume    IntentKind = "unmute_volume"
	IntentSetBrightness   IntentKind = "set_brightness"
	IntentMinimizeWindow  IntentKind = "minimize_window"
	IntentMaximizeWindow  IntentKind = "maximize_window"
	IntentCloseWindow     IntentKind = "close_window"
	IntentGetClipboard    IntentKind = "get_clipboard"
	IntentSetClipboard    IntentKind = "set_clipboard"
	IntentCreateFile      IntentKind = "create_file"
	IntentDeleteFile      IntentKind = "delete_file"
	IntentListDirectory   IntentKind = "list_directory"
	IntentGetSystemInfo   IntentKind = "get_system_info"
	IntentUnknown         IntentKind = "unknown"
)

// KnownIntents lists every kind the dispatcher must handle (unknown excluded).
var KnownIntents = []IntentKind{
	IntentOpenApp, IntentCloseApp, IntentSearchWeb, IntentOpenURL,
	IntentNavigateYoutube, IntentTypeText, IntentClick, IntentRunCommand,
	IntentGenerateCode, IntentGetTime, IntentGeneralQuery,
	IntentSystemShutdown, IntentSystemRestart, IntentSystemSleep,
	IntentSystemLock, IntentSystemLogout, IntentSetVolume, IntentMuteVolume,
	IntentUnmuteVolume, IntentSetBrightness, IntentMinimizeWindow,
	IntentMaximizeWindow, IntentCloseWindow, IntentGetClipboard,
	IntentSetClipboard, IntentCreateFile, IntentDeleteFile,
	IntentListDirectory, IntentGetSystemInfo,
}

// IsKnownIntent reports whether kind is part of the closed taxonomy.
func IsKnownIntent(kind IntentKind) bool {
	for _, k := range KnownIntents {
		if k == kind {
			return true
		}
	}
	return false
}

// IntentOrigin records which resolution path produced an intent.
type IntentOrigin string

const (
	OriginModel        IntentOrigin = "model"
	OriginRuleFallback IntentOrigin = "rule_fallback"
)

// Intent is the structured classification of a command.
type Intent struct {
	Kind       IntentKind
	Entities   map[string]any
	Confidence float64
	Origin     IntentOrigin
}

// Entity returns the string value of a named entity, "" if absent.
func (i Intent) Entity(key string) string {
	v, ok := i.Entities[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
