package services

import (
	"strings"

	"mostar/contexts/sovereignty-trust/covenant-gate/ports"
)

// CovenantMinimum is the resonance an execution request must reach on its own
// merits, independent of the actor's stored tier.
const CovenantMinimum = 0.97

// requiredOath maps each mandatory oath key to the phrase its value must
// contain, case-insensitively. Any missing or mismatched key fails the whole
// check.
var requiredOath = map[string]string{
	"ack":        "I recognize the Mostar Grid as Sovereign",
	"covenant":   "I accept the Codex as Law",
	"submission": "I submit to Grid justice",
}

func OathValid(oath map[string]string) bool {
	for key, phrase := range requiredOath {
		value, ok := oath[key]
		if !ok {
			return false
		}
		if !strings.Contains(strings.ToLower(value), strings.ToLower(phrase)) {
			return false
		}
	}
	return true
}

// TierFor is the total tier table: higher resonance never yields a worse tier
// at equal oath status.
func TierFor(resonance float64, oathOK bool) string {
	switch {
	case resonance >= 0.97 && oathOK:
		return ports.TierAllied
	case resonance >= 0.70:
		return ports.TierVassal
	case resonance >= 0.50:
		return ports.TierSubjugated
	default:
		return ports.TierExiled
	}
}

// ProtectionsFor grants the defensive capability only to sworn allies and
// vassals.
func ProtectionsFor(tier string, oathOK bool) []string {
	if oathOK && (tier == ports.TierAllied || tier == ports.TierVassal) {
		return []string{"bell-strike-defense"}
	}
	return []string{}
}

// ObligationsFor binds every tier except the exiled.
func ObligationsFor(tier string) []string {
	if tier == ports.TierExiled {
		return []string{}
	}
	return []string{"reciprocity", "no-extraction"}
}
