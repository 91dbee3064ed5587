package dispatch

import (
	"context"
	"fmt"
	"strconv"

	"desktop-assistant/internal/model"
)

// Dispatch looks up the handler for the intent kind and invokes it behind
// a recover boundary. An unmapped kind and a panicking handler both come
// back as failure results, never as errors or panics.
func (d *implDispatcher) Dispatch(ctx context.Context, intent *model.Intent) (result model.ExecutionResult) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "handler panic for intent %s: %v", intent.Kind, r)
			result = model.Failure(fmt.Sprintf("Execution failed: %v", r))
		}
	}()

	handler, ok := d.handlers[intent.Kind]
	if !ok {
		return model.Failure(fmt.Sprintf("Unknown intent: %s", intent.Kind))
	}

	d.l.Debugf(ctx, "dispatching intent: kind=%s origin=%s confidence=%.2f",
		intent.Kind, intent.Origin, intent.Confidence)
	return handler(ctx, intent)
}

// requireEntity extracts a non-empty string entity; the failure result
// names the missing key.
func requireEntity(intent *model.Intent, key string) (string, *model.ExecutionResult) {
	value := intent.Entity(key)
	if value == "" {
		failure := model.Failure(fmt.Sprintf("Missing required entity: %s", key))
		return "", &failure
	}
	return value, nil
}

// intEntity coerces an entity to int; models emit numbers as JSON numbers
// or quoted strings depending on the day.
func intEntity(intent *model.Intent, key string) (int, bool) {
	v, ok := intent.Entities[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
