package http

import (
	"github.com/gin-gonic/gin"

	"desktop-assistant/internal/permission"
	"desktop-assistant/internal/pipeline"
	"desktop-assistant/pkg/log"
)

// Handler is the public interface for the command HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	Status(c *gin.Context)
	ListPermissions(c *gin.Context)
	GrantPermission(c *gin.Context)
	DenyPermission(c *gin.Context)
	RevokePermission(c *gin.Context)
}

type handler struct {
	l           log.Logger
	pipeline    pipeline.Pipeline
	permissions permission.Manager
}

// New creates a new HTTP handler for the command domain.
func New(l log.Logger, p pipeline.Pipeline, permissions permission.Manager) Handler {
	return &handler{
		l:           l,
		pipeline:    p,
		permissions: permissions,
	}
}
