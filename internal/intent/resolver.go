package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"desktop-assistant/internal/llm"
	"desktop-assistant/internal/model"
)

// intentPayload is the JSON shape the model is asked to emit.
type intentPayload struct {
	Intent     string         `json:"intent"`
	Entities   map[string]any `json:"entities"`
	Confidence float64        `json:"confidence"`
}

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// Resolve classifies the command via the local model and degrades to
// ordered rule matching when the model path fails in any way. Canonical
// phrasings ("what time is it") resolve before any model round trip.
func (r *implResolver) Resolve(ctx context.Context, commandText string) *model.Intent {
	if intent, ok := r.matchCanonical(commandText); ok {
		return intent
	}

	result, err := r.router.Generate(ctx, &llm.GenerateInput{
		Prompt:      fmt.Sprintf("User: %s\nJSON:", commandText),
		System:      systemPrompt,
		TaskType:    llm.TaskIntentParsing,
		MaxTokens:   parseMaxTokens,
		Temperature: parseTemperature,
		ForceLocal:  true,
	})
	if err != nil {
		r.l.Warnf(ctx, "model intent parse failed, using rules: %v", err)
		return r.ruleParse(commandText)
	}

	parsed, err := r.parsePayload(result.Text)
	if err != nil {
		r.l.Warnf(ctx, "model output unparseable, using rules: %v", err)
		return r.ruleParse(commandText)
	}

	kind := model.IntentKind(parsed.Intent)
	if kind != model.IntentUnknown && !model.IsKnownIntent(kind) {
		r.l.Warnf(ctx, "model returned unrecognized intent %q, using rules", parsed.Intent)
		return r.ruleParse(commandText)
	}

	entities := parsed.Entities
	if entities == nil {
		entities = map[string]any{}
	}

	return &model.Intent{
		Kind:       kind,
		Entities:   entities,
		Confidence: clampConfidence(parsed.Confidence),
		Origin:     model.OriginModel,
	}
}

// parsePayload pulls an intent JSON object out of raw model output, which
// may be wrapped in prose or markdown code fences.
func (r *implResolver) parsePayload(text string) (*intentPayload, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var payload intentPayload
	if err := json.Unmarshal([]byte(text), &payload); err == nil && payload.Intent != "" {
		return &payload, nil
	}

	match := jsonObjectRe.FindString(text)
	if match == "" {
		return nil, fmt.Errorf("no JSON object in model output")
	}
	if err := json.Unmarshal([]byte(match), &payload); err != nil {
		return nil, fmt.Errorf("invalid intent JSON: %w", err)
	}
	if payload.Intent == "" {
		return nil, fmt.Errorf("intent JSON missing intent field")
	}
	return &payload, nil
}

// matchCanonical tries only the fixed-phrase rules, so unambiguous
// commands skip the model call entirely.
func (r *implResolver) matchCanonical(commandText string) (*model.Intent, bool) {
	original := strings.TrimSpace(commandText)
	lowered := strings.ToLower(original)

	for _, rl := range r.rules {
		if !rl.canonical {
			continue
		}
		if intent, ok := rl.apply(original, lowered); ok {
			return intent, true
		}
	}
	return nil, false
}

func (r *implResolver) ruleParse(commandText string) *model.Intent {
	original := strings.TrimSpace(commandText)
	lowered := strings.ToLower(original)

	for _, rl := range r.rules {
		if intent, ok := rl.apply(original, lowered); ok {
			return intent
		}
	}

	// Unreachable as long as the last rule is the catch-all.
	return &model.Intent{
		Kind:       model.IntentGeneralQuery,
		Entities:   map[string]any{"query": commandText},
		Confidence: 0.5,
		Origin:     model.OriginRuleFallback,
	}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
