package local

import (
	"context"
	"fmt"
	"os/exec"

	"desktop-assistant/pkg/log"
)

const defaultSpeechCommand = "espeak"

// Speaker synthesizes speech through an external TTS command.
type Speaker struct {
	l       log.Logger
	command string
}

func (s *Speaker) Speak(ctx context.Context, text string, wait bool) error {
	command := s.command
	if command == "" {
		command = defaultSpeechCommand
	}

	cmd := exec.CommandContext(ctx, command, text)
	if wait {
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("speech synthesis failed: %w", err)
		}
		return nil
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			s.l.Warnf(context.Background(), "speech playback error: %v", err)
		}
	}()
	return nil
}
