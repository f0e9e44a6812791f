package starsystem

import (
	"math"

	"starsystem-server/internal/random"
)

// MaxPlanets is the largest planet count any star class can produce.
const MaxPlanets = 8

// basePlanets is the upper bound of the planet count per main-sequence
// class. Massive stars burn out before forming large systems.
func basePlanets(class StarClass) int {
	switch class {
	case StarClassO, StarClassB:
		return 2
	case StarClassA:
		return 4
	case StarClassF, StarClassG:
		return 6
	default:
		return 8
	}
}

// PlanetCount decides how many planets orbit a star of the given class.
// Remnants are usually barren: 70% have none, the rest have 0-2 survivors.
func PlanetCount(src random.Source, class StarClass) int {
	if class.IsRemnant() {
		if random.Chance(src, 0.3) {
			return random.Intn(src, 3)
		}
		return 0
	}
	return random.Intn(src, basePlanets(class)) + 1
}

// OrbitDistance places planet index with a Titius-Bode-like law scaled by
// sqrt(starMass). Base terms grow by at least 0.3 per index while the
// jitter spans 0.2, so distances increase with index.
func OrbitDistance(src random.Source, index int, starMass float64) float64 {
	base := 0.4 + 0.3*math.Pow(2, float64(index))
	jitter := random.Between(src, -0.1, 0.1)
	return (base + jitter) * math.Sqrt(starMass)
}
