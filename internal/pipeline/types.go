package pipeline

import "desktop-assistant/internal/llm"

// User-facing boundary messages. MsgBusyDropped is also what the transport
// returns for a command dropped by admission control.
const (
	msgNotUnderstood = "Sorry, I didn't understand that command."
	MsgBusyDropped   = "I'm still working on the previous command."
)

// Status is the pipeline snapshot exposed on the status endpoint.
type Status struct {
	Busy          bool       `json:"busy"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	Processed     uint64     `json:"processed"`
	Dropped       uint64     `json:"dropped"`
	LLM           llm.Status `json:"llm"`
}
