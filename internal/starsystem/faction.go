package starsystem

import (
	"starsystem-server/internal/random"
)

// FactionChance is the probability that a faction claims a system.
const FactionChance = 0.3

var threatThresholds = []struct {
	below float64
	level ThreatLevel
}{
	{0.4, ThreatSafe},
	{0.7, ThreatLow},
	{0.9, ThreatModerate},
	{0.98, ThreatHigh},
}

// AssignFaction returns the controlling faction, or FactionUnclaimed.
func AssignFaction(src random.Source) Faction {
	if random.Chance(src, FactionChance) {
		return random.Pick(src, Factions)
	}
	return FactionUnclaimed
}

// AssessThreat rolls the system's hazard rating.
func AssessThreat(src random.Source) ThreatLevel {
	roll := src.Float64()
	for _, t := range threatThresholds {
		if roll < t.below {
			return t.level
		}
	}
	return ThreatExtreme
}
