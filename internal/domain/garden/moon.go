package garden

import (
	"math"
	"time"
)

// Mean synodic month in days, and a reference new moon instant.
const synodicDays = 29.53058867

var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// PhaseAt estimates the moon phase at the given instant: waxing from new
// moon to full (roughly the first 14.77 days of the cycle), waning after.
// An approximation good enough for gardening advice. Called only when the
// caller supplied no phase at all.
func PhaseAt(t time.Time) Phase {
	days := t.Sub(referenceNewMoon).Hours() / 24.0
	age := math.Mod(days, synodicDays)
	if age < 0 {
		age += synodicDays
	}
	if age < synodicDays/2.0 {
		return PhaseWaxing
	}
	return PhaseWaning
}
