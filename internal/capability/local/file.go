package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"desktop-assistant/pkg/log"
)

// FileManager performs basic filesystem operations.
type FileManager struct {
	l log.Logger
}

func (f *FileManager) CreateFile(ctx context.Context, path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	f.l.Infof(ctx, "created file: %s (%d bytes)", path, len(content))
	return nil
}

func (f *FileManager) ListDirectory(ctx context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	return names, nil
}

func (f *FileManager) DeleteFile(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	f.l.Infof(ctx, "deleted file: %s", path)
	return nil
}
