package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processProcessReq binds and validates the process command request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processTargetParam extracts the permission target path parameter.
func (h *handler) processTargetParam(c *gin.Context) (string, error) {
	target := normalizeTarget(c.Param("app"))
	if target == "" {
		return "", fmt.Errorf("app name is required")
	}
	return target, nil
}
