package llm

import "time"

// Routing modes.
const (
	ModeAuto   = "auto"
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// Task types the router recognizes for tier selection.
const (
	TaskIntentParsing = "intent_parsing"
	TaskQuickCommand  = "quick_command"
	TaskSimpleCode    = "simple_code"
	TaskComplexCode   = "complex_code"
	TaskLongDocument  = "long_document"
	TaskGeneral       = "general"
)

const (
	defaultLongPromptThreshold = 2000
	defaultProbeURL            = "https://www.google.com"
	defaultProbeTimeout        = 3 * time.Second
	defaultLocalTimeout        = 60 * time.Second
	defaultRemoteTimeout       = 30 * time.Second

	// Prompts longer than this are treated as complex code tasks.
	codeComplexityThreshold = 500
)
