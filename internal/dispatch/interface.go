package dispatch

import (
	"context"

	"desktop-assistant/internal/model"
)

// Dispatcher routes a resolved intent to exactly one capability handler
// and normalizes its outcome. No handler panic escapes Dispatch.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent *model.Intent) model.ExecutionResult
}
