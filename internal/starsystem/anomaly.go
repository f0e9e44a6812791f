package starsystem

import (
	"starsystem-server/internal/random"
)

// AnomalyChance is the probability that a system contains an anomaly.
const AnomalyChance = 0.15

type anomalyTemplate struct {
	description string
	effects     []string
}

var anomalyTemplates = map[AnomalyType]anomalyTemplate{
	AnomalyWormhole: {
		description: "A stable wormhole leading to unknown regions of space",
		effects:     []string{"Instant travel", "Navigation hazard", "Temporal effects"},
	},
	AnomalySpatialRift: {
		description: "A tear in the fabric of space-time",
		effects:     []string{"Sensor interference", "Hull stress", "Dimensional intrusion"},
	},
	AnomalySubspaceDistortion: {
		description: "Distorted subspace field affecting warp travel",
		effects:     []string{"Warp drive malfunction", "Communication disruption"},
	},
	AnomalyQuantumSingularity: {
		description: "A microscopic black hole with unique properties",
		effects:     []string{"Gravitational lensing", "Time dilation", "Energy discharge"},
	},
	AnomalyTimeDistortion: {
		description: "Temporal anomaly causing time flow irregularities",
		effects:     []string{"Temporal displacement", "Causality loops", "Chronometer malfunction"},
	},
}

// GenerateAnomaly picks an anomaly type and an independent stability.
func GenerateAnomaly(src random.Source, systemID string) SpaceAnomaly {
	anomalyType := random.Pick(src, AnomalyTypes)
	template := anomalyTemplates[anomalyType]

	return SpaceAnomaly{
		ID:          systemID + "-anomaly",
		Name:        string(anomalyType) + " Anomaly",
		Type:        anomalyType,
		Description: template.description,
		Effects:     copyStrings(template.effects),
		Stability:   random.Pick(src, Stabilities),
	}
}
