package llm

import (
	"context"
	"fmt"
	"slices"

	"desktop-assistant/pkg/llmprovider"
)

// Decide picks the tier for the input without calling any provider.
//
// Precedence: force flags, global mode, task-type lists, prompt length.
// A remote decision still requires internet reachability and at least one
// configured remote provider; a local decision requires the local server
// to be up unless the request is pinned local.
func (r *implRouter) Decide(ctx context.Context, input *GenerateInput) RoutingDecision {
	if input.ForceLocal {
		if input.ForceRemote {
			r.l.Warnf(ctx, "both force_local and force_remote set, honoring force_local")
		}
		return RoutingDecision{UseRemote: false, Reason: "forced local"}
	}

	want := r.preferredTier(input)

	if want.UseRemote {
		if len(r.remotes) == 0 {
			return RoutingDecision{UseRemote: false, Reason: want.Reason + ", but no remote providers configured"}
		}
		if r.prober != nil && !r.prober.Online(ctx) {
			return RoutingDecision{UseRemote: false, Reason: want.Reason + ", but offline"}
		}
		return want
	}

	if r.local == nil || !r.local.Available(ctx) {
		if len(r.remotes) > 0 && (r.prober == nil || r.prober.Online(ctx)) {
			return RoutingDecision{UseRemote: true, Reason: want.Reason + ", but local model server unavailable"}
		}
	}
	return want
}

func (r *implRouter) preferredTier(input *GenerateInput) RoutingDecision {
	if input.ForceRemote {
		return RoutingDecision{UseRemote: true, Reason: "forced remote"}
	}

	switch r.opts.Mode {
	case ModeLocal:
		return RoutingDecision{UseRemote: false, Reason: "mode is local"}
	case ModeRemote:
		return RoutingDecision{UseRemote: true, Reason: "mode is remote"}
	}

	if slices.Contains(r.opts.RemoteTasks, input.TaskType) {
		return RoutingDecision{UseRemote: true, Reason: fmt.Sprintf("task %s routes remote", input.TaskType)}
	}
	if slices.Contains(r.opts.LocalTasks, input.TaskType) {
		return RoutingDecision{UseRemote: false, Reason: fmt.Sprintf("task %s routes local", input.TaskType)}
	}

	if len(input.Prompt) > r.opts.LongPromptThreshold {
		return RoutingDecision{UseRemote: true, Reason: "long prompt"}
	}

	return RoutingDecision{UseRemote: false, Reason: "default local"}
}

// Generate routes the request, then falls back once to the other tier when
// the primary one fails. Pinned-local requests never reach the remote tier.
func (r *implRouter) Generate(ctx context.Context, input *GenerateInput) (*GenerateResult, error) {
	decision := r.Decide(ctx, input)
	r.l.Debugf(ctx, "routing decision: remote=%v reason=%q task=%s prompt_chars=%d",
		decision.UseRemote, decision.Reason, input.TaskType, len(input.Prompt))

	var primaryErr error
	if decision.UseRemote {
		resp, err := r.generateRemote(ctx, input)
		if err == nil {
			return resultFrom(resp, false, ""), nil
		}
		primaryErr = err

		resp, err = r.generateLocal(ctx, input)
		if err == nil {
			reason := fmt.Sprintf("remote tier failed: %v", primaryErr)
			r.l.Warnf(ctx, "falling back to local tier: %v", primaryErr)
			return resultFrom(resp, true, reason), nil
		}
		return nil, fmt.Errorf("%w: remote: %v; local: %v", ErrAllTiersFailed, primaryErr, err)
	}

	resp, err := r.generateLocal(ctx, input)
	if err == nil {
		return resultFrom(resp, false, ""), nil
	}
	primaryErr = err

	if input.ForceLocal {
		return nil, fmt.Errorf("local generation failed (pinned local): %w", primaryErr)
	}

	resp, err = r.generateRemote(ctx, input)
	if err == nil {
		reason := fmt.Sprintf("local tier failed: %v", primaryErr)
		r.l.Warnf(ctx, "falling back to remote tier: %v", primaryErr)
		return resultFrom(resp, true, reason), nil
	}
	return nil, fmt.Errorf("%w: local: %v; remote: %v", ErrAllTiersFailed, primaryErr, err)
}

// GenerateCode dispatches to the code-tuned local model for short prompts
// and to the remote tier for larger ones.
func (r *implRouter) GenerateCode(ctx context.Context, prompt, language string, maxTokens int) (*GenerateResult, error) {
	taskType := TaskSimpleCode
	if len(prompt) > codeComplexityThreshold {
		taskType = TaskComplexCode
	}

	system := "You are a coding assistant. Reply with code only, no commentary."
	if language != "" {
		system = fmt.Sprintf("You are a coding assistant. Reply with %s code only, no commentary.", language)
	}

	return r.Generate(ctx, &GenerateInput{
		Prompt:    prompt,
		TaskType:  taskType,
		System:    system,
		MaxTokens: maxTokens,
	})
}

func (r *implRouter) generateLocal(ctx context.Context, input *GenerateInput) (*llmprovider.Response, error) {
	if r.local == nil {
		return nil, ErrNoLocalProvider
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.LocalTimeout)
	defer cancel()

	req := &llmprovider.Request{
		Prompt:      input.Prompt,
		System:      input.System,
		MaxTokens:   input.MaxTokens,
		Temperature: input.Temperature,
		JSONFormat:  input.TaskType == TaskIntentParsing,
		CodeTask:    input.TaskType == TaskSimpleCode || input.TaskType == TaskComplexCode,
	}

	resp, err := r.local.GenerateText(ctx, req)
	if err != nil {
		r.l.Warnf(ctx, "local generation failed: provider=%s model=%s err=%v",
			r.local.Name(), r.local.Model(), err)
		return nil, err
	}

	r.l.Infof(ctx, "generation ok: provider=%s model=%s output_chars=%d",
		resp.ProviderName, resp.ModelName, len(resp.Text))
	return resp, nil
}

func (r *implRouter) generateRemote(ctx context.Context, input *GenerateInput) (*llmprovider.Response, error) {
	if len(r.remotes) == 0 {
		return nil, ErrNoRemoteProviders
	}

	req := &llmprovider.Request{
		Prompt:      input.Prompt,
		System:      input.System,
		MaxTokens:   input.MaxTokens,
		Temperature: input.Temperature,
	}

	var lastErr error
	for _, provider := range r.remotes {
		callCtx, cancel := context.WithTimeout(ctx, r.opts.RemoteTimeout)
		resp, err := provider.GenerateText(callCtx, req)
		cancel()
		if err == nil {
			r.l.Infof(ctx, "generation ok: provider=%s model=%s output_chars=%d",
				resp.ProviderName, resp.ModelName, len(resp.Text))
			return resp, nil
		}

		r.l.Warnf(ctx, "remote generation failed: provider=%s model=%s err=%v",
			provider.Name(), provider.Model(), err)
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("%w: %v", llmprovider.ErrAllProvidersFailed, lastErr)
}

// VerifyAvailability reports an error only when neither tier can serve.
func (r *implRouter) VerifyAvailability(ctx context.Context) error {
	localUp := r.local != nil && r.local.Available(ctx)
	remoteUp := len(r.remotes) > 0 && (r.prober == nil || r.prober.Online(ctx))

	if localUp || remoteUp {
		return nil
	}
	return ErrAllTiersFailed
}

func (r *implRouter) Status(ctx context.Context) Status {
	st := Status{Mode: r.opts.Mode}
	st.Online = r.prober == nil || r.prober.Online(ctx)

	if r.local != nil {
		st.Local.Available = r.local.Available(ctx)
		st.Local.Model = r.local.Model()
	}

	st.Remote.Available = st.Online && len(r.remotes) > 0
	for _, p := range r.remotes {
		st.Remote.Providers = append(st.Remote.Providers, p.Name())
	}
	return st
}

func resultFrom(resp *llmprovider.Response, fallback bool, reason string) *GenerateResult {
	return &GenerateResult{
		Success:        true,
		Text:           resp.Text,
		Provider:       resp.ProviderName,
		Model:          resp.ModelName,
		FallbackUsed:   fallback,
		FallbackReason: reason,
	}
}
