package model

// CommandSource identifies where a command entered the system.
type CommandSource string

const (
	SourceLocalDevice CommandSource = "local_device"
	SourceRemoteAPI   CommandSource = "remote_api"
	SourceSocket      CommandSource = "socket"
)

// Command is a single natural-language request.
// Created at the system boundary, immutable, consumed once.
type Command struct {
	ID     string
	Text   string
	Source CommandSource
}
