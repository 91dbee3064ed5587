package permission

import (
	"strings"
	"sync"

	"desktop-assistant/config"
	"desktop-assistant/pkg/log"
)

type implManager struct {
	l         log.Logger
	consenter Consenter
	file      string

	autoApproved map[string]bool
	blocked      map[string]bool

	mu      sync.Mutex
	records map[string]Decision
}

var _ Manager = &implManager{}

// New creates a Manager persisting decisions at cfg.File. A missing or
// unreadable store starts empty; the file is created on first write.
func New(l log.Logger, cfg config.PermissionsConfig, consenter Consenter) Manager {
	m := &implManager{
		l:            l,
		consenter:    consenter,
		file:         cfg.File,
		autoApproved: foldSet(cfg.AutoApproved),
		blocked:      foldSet(cfg.Blocked),
		records:      map[string]Decision{},
	}
	m.load()
	return m
}

func foldSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[foldKey(n)] = true
	}
	return set
}

func foldKey(target string) string {
	return strings.ToLower(strings.TrimSpace(target))
}
