package starsystem

import (
	"testing"

	"starsystem-server/internal/random"
)

func TestAssignFaction(t *testing.T) {
	tests := []struct {
		name  string
		rolls []float64
		want  Faction
	}{
		{"unclaimed", []float64{0.3}, FactionUnclaimed},
		{"first faction", []float64{0.1, 0}, FactionFederation},
		{"last faction", []float64{0.29, 0.999}, FactionIndie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignFaction(random.NewSequence(tt.rolls...))
			if got != tt.want {
				t.Errorf("AssignFaction = %q, want %q", got, tt.want)
			}
			if got.Claimed() != (tt.want != FactionUnclaimed) {
				t.Errorf("Claimed() = %v for %q", got.Claimed(), got)
			}
		})
	}
}

func TestAssessThreat(t *testing.T) {
	tests := []struct {
		roll float64
		want ThreatLevel
	}{
		{0, ThreatSafe},
		{0.399, ThreatSafe},
		{0.4, ThreatLow},
		{0.7, ThreatModerate},
		{0.9, ThreatHigh},
		{0.979, ThreatHigh},
		{0.98, ThreatExtreme},
		{0.999, ThreatExtreme},
	}

	for _, tt := range tests {
		if got := AssessThreat(random.NewSequence(tt.roll)); got != tt.want {
			t.Errorf("AssessThreat(%v) = %s, want %s", tt.roll, got, tt.want)
		}
	}
}
