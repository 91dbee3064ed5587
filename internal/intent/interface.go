package intent

import (
	"context"

	"desktop-assistant/internal/model"
)

// Resolver turns a command string into a structured intent. Resolution
// never fails: when the model path breaks down the resolver degrades to
// ordered rule matching, so the caller always gets an intent back.
type Resolver interface {
	Resolve(ctx context.Context, commandText string) *model.Intent
}
