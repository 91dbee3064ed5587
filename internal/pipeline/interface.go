package pipeline

import (
	"context"

	"desktop-assistant/internal/model"
)

// Pipeline sequences resolution, dispatch, and response emission for a
// single command, and owns the user-visible error boundary.
type Pipeline interface {
	// Process runs one command to completion. It never returns an error:
	// every failure mode is folded into the ExecutionResult, and the
	// result message is always emitted (spoken for local-device commands).
	Process(ctx context.Context, cmd model.Command) model.ExecutionResult

	// Submit runs Process synchronously if the pipeline is idle. A
	// command arriving while one is in flight is dropped, not queued;
	// accepted=false reports the drop and the result is unset.
	Submit(ctx context.Context, cmd model.Command) (result model.ExecutionResult, accepted bool)

	// TrySubmit runs Process on its own goroutine if the pipeline is
	// idle, with the same admission rule as Submit.
	TrySubmit(cmd model.Command) bool

	// Busy reports whether a command is currently in flight.
	Busy() bool

	// Status returns a point-in-time snapshot for the status endpoint.
	Status(ctx context.Context) Status
}
