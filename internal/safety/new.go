package safety

import (
	"path/filepath"

	"desktop-assistant/config"
	"desktop-assistant/pkg/log"
)

type implChecker struct {
	l                log.Logger
	safeFolders      []string
	forbiddenFolders []string
}

var _ Checker = &implChecker{}

// New creates a Checker from the configured folder lists. Folder entries
// are normalized to absolute form once at construction.
func New(l log.Logger, cfg config.SafetyConfig) Checker {
	return &implChecker{
		l:                l,
		safeFolders:      normalizeFolders(cfg.SafeFolders),
		forbiddenFolders: normalizeFolders(cfg.ForbiddenFolders),
	}
}

func normalizeFolders(folders []string) []string {
	out := make([]string, 0, len(folders))
	for _, f := range folders {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		out = append(out, filepath.Clean(abs))
	}
	return out
}
