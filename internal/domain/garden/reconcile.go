package garden

import (
	"encoding/json"
	"errors"
	"strings"
)

// Reconciled is the structured view recovered from the raw model output.
// Raw is non-empty only when recovery failed; the request still succeeds at
// the transport boundary with this degraded content.
type Reconciled struct {
	Sow   []string
	Plant []string
	Avoid []string
	Lune  LunarAdvice
	Raw   string
}

type modelCalendar struct {
	Semer   []string     `json:"semer"`
	Planter []string     `json:"planter"`
	AEviter []string     `json:"a_eviter"`
	Lune    *LunarAdvice `json:"lune"`
}

// Reconcile extracts the JSON object embedded in the model output, caps each
// list at maxItems (no dedup: the prompt contract makes the model
// responsible for uniqueness) and forces the caller supplied phase over
// whatever the model reported. On any extraction or parse failure it returns
// the degraded shape with up to snippet characters of the original text.
func Reconcile(raw string, phase Phase, maxItems, snippet int) Reconciled {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return degraded(raw, snippet)
	}

	var obj modelCalendar
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		return degraded(raw, snippet)
	}

	lune := LunarAdvice{Phase: lunePhaseMissing}
	if obj.Lune != nil {
		lune = *obj.Lune
	}
	if phase != PhaseUnspecified {
		lune.Phase = string(phase)
	}

	return Reconciled{
		Sow:   capList(obj.Semer, maxItems),
		Plant: capList(obj.Planter, maxItems),
		Avoid: capList(obj.AEviter, maxItems),
		Lune:  lune,
	}
}

// extractJSONObject returns the substring spanning the first '{' through the
// last '}'. Greedy on purpose: prose around the object is discarded, and two
// concatenated objects misparse as the span of their outer braces. Preserved
// as-is for wire compatibility with existing clients.
func extractJSONObject(text string) (string, error) {
	first := strings.IndexByte(text, '{')
	last := strings.LastIndexByte(text, '}')
	if first < 0 || last < first {
		return "", errors.New("no json object found")
	}
	return text[first : last+1], nil
}

func degraded(raw string, snippet int) Reconciled {
	return Reconciled{
		Sow:   []string{},
		Plant: []string{},
		Avoid: []string{},
		Lune:  LunarAdvice{Phase: lunePhaseError},
		Raw:   truncateRunes(raw, snippet),
	}
}

func capList(items []string, max int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > max {
		return items[:max]
	}
	return items
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
