package pipeline

import (
	"context"
	"fmt"
	"time"

	"desktop-assistant/internal/model"
)

// Process resolves, dispatches, and responds. The recover boundary here is
// the last line of defense: anything a lower layer lets escape becomes a
// spoken/returned failure, never a silent one.
func (p *implPipeline) Process(ctx context.Context, cmd model.Command) (result model.ExecutionResult) {
	defer func() {
		if r := recover(); r != nil {
			p.l.Errorf(ctx, "pipeline panic for command %s: %v", cmd.ID, r)
			result = model.Failure(fmt.Sprintf("Sorry, an error occurred: %v", r))
			p.respond(ctx, cmd, result)
		}
	}()

	p.processed.Add(1)
	start := time.Now()
	p.l.Infof(ctx, "processing command: id=%s source=%s text=%q", cmd.ID, cmd.Source, cmd.Text)

	resolved := p.resolver.Resolve(ctx, cmd.Text)
	p.l.Infof(ctx, "resolved intent: id=%s kind=%s origin=%s confidence=%.2f",
		cmd.ID, resolved.Kind, resolved.Origin, resolved.Confidence)

	if resolved.Kind == model.IntentUnknown {
		result = model.Failure(msgNotUnderstood)
		p.respond(ctx, cmd, result)
		return result
	}

	result = p.dispatcher.Dispatch(ctx, resolved)
	p.l.Infof(ctx, "command done: id=%s success=%v elapsed=%s", cmd.ID, result.Success, time.Since(start))

	p.respond(ctx, cmd, result)
	return result
}

// respond emits the result message. Speech applies only to commands that
// entered from the local device, and never blocks the pipeline: the busy
// flag must be releasable while the answer is still being spoken.
func (p *implPipeline) respond(ctx context.Context, cmd model.Command, result model.ExecutionResult) {
	if cmd.Source != model.SourceLocalDevice || p.speaker == nil {
		return
	}
	if err := p.speaker.Speak(ctx, result.Message, false); err != nil {
		p.l.Warnf(ctx, "speech emission failed: %v", err)
	}
}

// Submit is the synchronous admission gate used by the HTTP surface.
func (p *implPipeline) Submit(ctx context.Context, cmd model.Command) (model.ExecutionResult, bool) {
	if !p.busy.CompareAndSwap(false, true) {
		p.dropped.Add(1)
		p.l.Infof(ctx, "command dropped, pipeline busy: id=%s text=%q", cmd.ID, cmd.Text)
		return model.ExecutionResult{}, false
	}
	defer p.busy.Store(false)

	return p.Process(ctx, cmd), true
}

// TrySubmit is the admission gate: one command in flight, no queue. The
// flag flips before any blocking work starts and is cleared in a defer so
// a failing command can never wedge the pipeline.
func (p *implPipeline) TrySubmit(cmd model.Command) bool {
	if !p.busy.CompareAndSwap(false, true) {
		p.dropped.Add(1)
		p.l.Infof(context.Background(), "command dropped, pipeline busy: id=%s text=%q", cmd.ID, cmd.Text)
		return false
	}

	go func() {
		defer p.busy.Store(false)
		p.Process(context.Background(), cmd)
	}()
	return true
}

func (p *implPipeline) Busy() bool {
	return p.busy.Load()
}

func (p *implPipeline) Status(ctx context.Context) Status {
	return Status{
		Busy:          p.busy.Load(),
		UptimeSeconds: int64(time.Since(p.startedAt).Seconds()),
		Processed:     p.processed.Load(),
		Dropped:       p.dropped.Load(),
		LLM:           p.router.Status(ctx),
	}
}
