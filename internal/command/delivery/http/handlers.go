package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/pipeline"
	"desktop-assistant/pkg/response"
)

// Process godoc
// @Summary     Process a natural language command
// @Description Resolves the command to an intent and executes it. A command
// @Description arriving while another is in flight is dropped with success=false.
// @Tags        Command
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Command data"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/command [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cmd := model.Command{
		ID:     uuid.NewString(),
		Text:   req.Command,
		Source: req.source(),
	}

	result, accepted := h.pipeline.Submit(ctx, cmd)
	if !accepted {
		// Admission-control drop, not a transport error.
		response.OK(c, newProcessResp(cmd.ID, model.Failure(pipeline.MsgBusyDropped)))
		return
	}

	response.OK(c, newProcessResp(cmd.ID, result))
}

// Status godoc
// @Summary     Assistant status
// @Description Returns busy state, uptime, counters, and provider availability.
// @Tags        Command
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newStatusResp(h.pipeline.Status(ctx)))
}

// ListPermissions godoc
// @Summary     List permission records
// @Description Returns every persisted app permission decision.
// @Tags        Permission
// @Produce     json
// @Success     200 {object} listPermissionsResp
// @Router      /api/v1/permissions [GET]
func (h *handler) ListPermissions(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newListPermissionsResp(h.permissions.List(ctx)))
}

// GrantPermission godoc
// @Summary     Grant an app permission
// @Tags        Permission
// @Produce     json
// @Param       app path string true "App name"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/permissions/{app}/grant [POST]
func (h *handler) GrantPermission(c *gin.Context) {
	ctx := c.Request.Context()

	target, err := h.processTargetParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.permissions.Grant(ctx, target); err != nil {
		h.l.Errorf(ctx, "permissions.Grant: %v", err)
		response.Error(c, err, nil)
		return
	}
	response.OK(c, nil)
}

// DenyPermission godoc
// @Summary     Deny an app permission
// @Tags        Permission
// @Produce     json
// @Param       app path string true "App name"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/permissions/{app}/deny [POST]
func (h *handler) DenyPermission(c *gin.Context) {
	ctx := c.Request.Context()

	target, err := h.processTargetParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.permissions.Deny(ctx, target); err != nil {
		h.l.Errorf(ctx, "permissions.Deny: %v", err)
		response.Error(c, err, nil)
		return
	}
	response.OK(c, nil)
}

// RevokePermission godoc
// @Summary     Revoke an app permission record
// @Description Removes the persisted decision, returning the app to undecided.
// @Tags        Permission
// @Produce     json
// @Param       app path string true "App name"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/permissions/{app} [DELETE]
func (h *handler) RevokePermission(c *gin.Context) {
	ctx := c.Request.Context()

	target, err := h.processTargetParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.permissions.Revoke(ctx, target); err != nil {
		response.Error(c, err, nil)
		return
	}
	response.OK(c, nil)
}
