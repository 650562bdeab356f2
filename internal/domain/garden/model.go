package garden

import "github.com/jardinvision/jardin-proxy/internal/domain/forecast"

// Phase is the canonical moon phase: one of the two French strings below, or
// empty for unspecified. Only these values ever reach the prompt, and only
// these are accepted back from the model.
type Phase string

const (
	PhaseWaxing      Phase = "croissante"
	PhaseWaning      Phase = "décroissante"
	PhaseUnspecified Phase = ""
)

// Wire sentinels for the lune object.
const (
	lunePhaseMissing = "phase_non_fournie"
	lunePhaseError   = "erreur"
)

// Request is the normalized caller input. Region and Month are never empty
// (defaults substituted). PhaseRaw keeps the caller's original value so the
// orchestrator can tell "omitted" from "present but unrecognized".
type Request struct {
	Region   string
	Month    string
	PhaseRaw string
	Phase    Phase
}

// LunarAdvice is the nested lunar block of the calendar result.
type LunarAdvice struct {
	Phase string `json:"phase"`
	Tip   string `json:"conseil"`
}

// CalendarResult is serialized back to API consumers. Raw is populated only
// when reconciliation of the model output failed.
type CalendarResult struct {
	Region        string           `json:"region"`
	Month         string           `json:"mois"`
	PhaseReceived Phase            `json:"phase_lune_recue"`
	Sow           []string         `json:"semer"`
	Plant         []string         `json:"planter"`
	Avoid         []string         `json:"a_eviter"`
	Lune          LunarAdvice      `json:"lune"`
	Meteo         forecast.Summary `json:"meteo"`
	Raw           string           `json:"raw,omitempty"`
}

// Config wires runtime settings for the garden calendar domain.
type Config struct {
	Model        string
	Temperature  float32
	SystemPrompt string
	MaxListItems int
	RawSnippet   int
}
