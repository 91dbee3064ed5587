package local

import (
	"context"
	"fmt"
	"strconv"

	"desktop-assistant/pkg/log"
)

// InputController injects keyboard and mouse events via xdotool.
type InputController struct {
	l log.Logger
}

func (i *InputController) Type(ctx context.Context, text string) error {
	if err := run(ctx, "xdotool", "type", "--delay", "50", text); err != nil {
		return fmt.Errorf("failed to type text: %w", err)
	}
	return nil
}

func (i *InputController) Click(ctx context.Context, x, y int) error {
	if err := run(ctx, "xdotool", "mousemove", strconv.Itoa(x), strconv.Itoa(y), "click", "1"); err != nil {
		return fmt.Errorf("failed to click at (%d,%d): %w", x, y, err)
	}
	return nil
}
