package safety

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// canonicalize resolves a path to its absolute, symlink-free form. When the
// path does not exist yet, symlink resolution is skipped and the cleaned
// absolute path is used.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	abs = filepath.Clean(abs)

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return abs, nil
		}
		return "", fmt.Errorf("invalid path: %w", err)
	}
	return resolved, nil
}

// contains reports whether path sits inside root, using path components
// rather than string prefixes.
func contains(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (c *implChecker) IsPathSafe(path string) Verdict {
	resolved, err := canonicalize(path)
	if err != nil {
		return deny(err.Error())
	}

	for _, forbidden := range c.forbiddenFolders {
		if contains(forbidden, resolved) {
			return deny(fmt.Sprintf("path is in forbidden system folder: %s", forbidden))
		}
	}
	return allow("path is safe")
}

func (c *implChecker) CanDelete(path string) Verdict {
	if v := c.IsPathSafe(path); !v.Allowed {
		return v
	}

	resolved, err := canonicalize(path)
	if err != nil {
		return deny(err.Error())
	}

	for _, safe := range c.safeFolders {
		if contains(safe, resolved) {
			return allow("file can be deleted")
		}
	}
	return deny("file deletion only allowed in safe folders")
}

func (c *implChecker) CanModify(path string) Verdict {
	return c.IsPathSafe(path)
}

func (c *implChecker) CanExecuteCommand(commandText string) Verdict {
	lowered := strings.ToLower(commandText)

	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowered, pattern) {
			return deny(fmt.Sprintf("command contains dangerous pattern: %s", pattern))
		}
	}

	for _, forbidden := range c.forbiddenFolders {
		if strings.Contains(lowered, strings.ToLower(forbidden)) {
			return deny(fmt.Sprintf("command targets forbidden folder: %s", forbidden))
		}
	}

	return allow("command appears safe (confirmation still required)")
}
