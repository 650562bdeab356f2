package garden

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	defaultRegion = "France"
	defaultMonth  = "Décembre"
)

// Accepted field name aliases for the moon phase, probed in order.
var phaseAliasKeys = []string{"phase_lune", "phaseLune", "lune", "phase"}

var waxingAliases = map[string]struct{}{
	"croissante":  {},
	"croissant":   {},
	"waxing":      {},
	"waxing_moon": {},
}

var waningAliases = map[string]struct{}{
	"décroissante": {},
	"decroissante": {},
	"décroissant":  {},
	"waning":       {},
	"waning_moon":  {},
}

// Normalize extracts and canonicalizes the caller supplied fields from a
// loosely structured payload. Garbage input never fails: an unparsable body
// behaves like an empty object and every field takes its default.
func Normalize(body []byte) Request {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		data = map[string]any{}
	}

	region := stringField(data, "region")
	if region == "" {
		region = defaultRegion
	}

	// Month is passed through verbatim, never validated or reinterpreted.
	month := stringField(data, "mois")
	if month == "" {
		month = stringField(data, "month")
	}
	if month == "" {
		month = defaultMonth
	}

	raw := phaseRaw(data)
	return Request{
		Region:   region,
		Month:    month,
		PhaseRaw: raw,
		Phase:    canonicalPhase(raw),
	}
}

// canonicalPhase collapses a raw phase value onto the canonical enumeration.
// Anything unrecognized maps to unspecified, never guessed.
func canonicalPhase(raw string) Phase {
	if _, ok := waxingAliases[raw]; ok {
		return PhaseWaxing
	}
	if _, ok := waningAliases[raw]; ok {
		return PhaseWaning
	}
	return PhaseUnspecified
}

func phaseRaw(data map[string]any) string {
	for _, key := range phaseAliasKeys {
		if v, ok := data[key]; ok {
			if s := stringify(v); s != "" {
				return strings.ToLower(strings.TrimSpace(s))
			}
		}
	}
	return ""
}

func stringField(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// stringify coerces scalar JSON values; objects and arrays are ignored.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
