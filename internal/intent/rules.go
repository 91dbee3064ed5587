package intent

import (
	"strings"

	"desktop-assistant/internal/model"
)

// rule is one ordered fallback matcher. apply receives the trimmed command
// text and its lower-cased form; the first rule that fires wins. Canonical
// rules match fixed phrasings and are also consulted before the model call.
type rule struct {
	canonical bool
	apply     func(original, lowered string) (*model.Intent, bool)
}

func prefixRule(kind model.IntentKind, entityKey string, confidence float64, prefixes ...string) rule {
	return rule{apply: func(original, lowered string) (*model.Intent, bool) {
		for _, p := range prefixes {
			if strings.HasPrefix(lowered, p+" ") {
				remainder := strings.TrimSpace(strings.TrimPrefix(lowered, p+" "))
				return &model.Intent{
					Kind:       kind,
					Entities:   map[string]any{entityKey: remainder},
					Confidence: confidence,
					Origin:     model.OriginRuleFallback,
				}, true
			}
		}
		return nil, false
	}}
}

func exactRule(kind model.IntentKind, confidence float64, phrases ...string) rule {
	return rule{canonical: true, apply: func(original, lowered string) (*model.Intent, bool) {
		for _, p := range phrases {
			if lowered == p {
				return &model.Intent{
					Kind:       kind,
					Entities:   map[string]any{},
					Confidence: confidence,
					Origin:     model.OriginRuleFallback,
				}, true
			}
		}
		return nil, false
	}}
}

// defaultRules returns the ordered matcher list. Order matters: an
// ambiguous command resolves to whichever rule is listed first, and the
// catch-all must stay last.
func defaultRules() []rule {
	return []rule{
		exactRule(model.IntentGetTime, 0.95, "what time is it", "time", "what's the time"),
		prefixRule(model.IntentOpenApp, "app_name", 0.85, "open", "launch", "start"),
		prefixRule(model.IntentCloseApp, "app_name", 0.85, "close", "quit", "exit"),
		prefixRule(model.IntentSearchWeb, "query", 0.85, "search for", "search", "google", "look up"),
		{apply: func(original, lowered string) (*model.Intent, bool) {
			// File paths keep their original casing.
			for _, p := range []string{"delete ", "remove "} {
				if strings.HasPrefix(lowered, p) {
					return &model.Intent{
						Kind:       model.IntentDeleteFile,
						Entities:   map[string]any{"filepath": strings.TrimSpace(original[len(p):])},
						Confidence: 0.85,
						Origin:     model.OriginRuleFallback,
					}, true
				}
			}
			return nil, false
		}},
		{apply: func(original, lowered string) (*model.Intent, bool) {
			if strings.Contains(lowered, "youtube") {
				return &model.Intent{
					Kind:       model.IntentNavigateYoutube,
					Entities:   map[string]any{},
					Confidence: 0.6,
					Origin:     model.OriginRuleFallback,
				}, true
			}
			return nil, false
		}},
		{apply: func(original, lowered string) (*model.Intent, bool) {
			return &model.Intent{
				Kind:       model.IntentGeneralQuery,
				Entities:   map[string]any{"query": original},
				Confidence: 0.5,
				Origin:     model.OriginRuleFallback,
			}, true
		}},
	}
}
