package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The caller
// supplies the group (typically /api/v1) already wrapped in auth and
// rate-limit middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/command", h.Process)
	rg.GET("/status", h.Status)

	permissions := rg.Group("/permissions")
	{
		permissions.GET("", h.ListPermissions)
		permissions.POST("/:app/grant", h.GrantPermission)
		permissions.POST("/:app/deny", h.DenyPermission)
		permissions.DELETE("/:app", h.RevokePermission)
	}
}
