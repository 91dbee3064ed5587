package http

import (
	"fmt"
	"strings"

	"desktop-assistant/internal/model"
	"desktop-assistant/internal/permission"
	"desktop-assistant/internal/pipeline"
)

// --- Request DTOs ---

type processReq struct {
	Command string `json:"command" binding:"required,min=1,max=2000"`
	Source  string `json:"source"`
}

func (r processReq) validate() error {
	switch model.CommandSource(r.Source) {
	case "", model.SourceLocalDevice, model.SourceRemoteAPI, model.SourceSocket:
		return nil
	}
	return fmt.Errorf("invalid source: %s", r.Source)
}

func (r processReq) source() model.CommandSource {
	if r.Source == "" {
		return model.SourceRemoteAPI
	}
	return model.CommandSource(r.Source)
}

// --- Response DTOs ---

type processResp struct {
	CommandID string         `json:"command_id"`
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
}

func newProcessResp(id string, result model.ExecutionResult) processResp {
	return processResp{
		CommandID: id,
		Success:   result.Success,
		Message:   result.Message,
		Data:      result.Data,
	}
}

type statusResp struct {
	Busy          bool     `json:"busy"`
	UptimeSeconds int64    `json:"uptime_seconds"`
	Processed     uint64   `json:"processed"`
	Dropped       uint64   `json:"dropped"`
	LLMMode       string   `json:"llm_mode"`
	Online        bool     `json:"online"`
	LocalModel    string   `json:"local_model,omitempty"`
	LocalUp       bool     `json:"local_up"`
	RemoteUp      bool     `json:"remote_up"`
	Remotes       []string `json:"remotes,omitempty"`
}

func newStatusResp(st pipeline.Status) statusResp {
	return statusResp{
		Busy:          st.Busy,
		UptimeSeconds: st.UptimeSeconds,
		Processed:     st.Processed,
		Dropped:       st.Dropped,
		LLMMode:       st.LLM.Mode,
		Online:        st.LLM.Online,
		LocalModel:    st.LLM.Local.Model,
		LocalUp:       st.LLM.Local.Available,
		RemoteUp:      st.LLM.Remote.Available,
		Remotes:       st.LLM.Remote.Providers,
	}
}

type permissionItem struct {
	Target   string `json:"target"`
	Decision string `json:"decision"`
}

type listPermissionsResp struct {
	Permissions []permissionItem `json:"permissions"`
}

func newListPermissionsResp(records []permission.Record) listPermissionsResp {
	items := make([]permissionItem, 0, len(records))
	for _, r := range records {
		items = append(items, permissionItem{
			Target:   r.Target,
			Decision: string(r.Decision),
		})
	}
	return listPermissionsResp{Permissions: items}
}

func normalizeTarget(raw string) string {
	return strings.TrimSpace(raw)
}
