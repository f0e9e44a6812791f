package starsystem

import (
	"sort"

	"starsystem-server/internal/random"
)

const (
	// BeltChance is the probability that a system holds an asteroid belt.
	BeltChance = 0.4
	// beltMargin is the clearance kept between a belt and a bounding orbit.
	beltMargin = 0.5
)

// GenerateAsteroidBelt places a belt either in a random gap between two
// planets or just beyond the outermost one. Inner radius is always strictly
// below outer radius.
func GenerateAsteroidBelt(src random.Source, system *StarSystem) *AsteroidBelt {
	distances := make([]float64, 0, len(system.Planets))
	for _, p := range system.Planets {
		distances = append(distances, p.Distance)
	}
	sort.Float64s(distances)

	var inner, outer float64
	placed := false

	if len(distances) >= 2 {
		gap := random.Intn(src, len(distances)-1)
		lo, hi := distances[gap], distances[gap+1]
		width := hi - lo

		if width > 0 {
			// Narrow gaps shrink the clearance so the belt still fits.
			margin := beltMargin
			if width <= 2*beltMargin {
				margin = width / 4
			}
			inner, outer = lo+margin, hi-margin
			placed = true
		}
	}

	if !placed {
		edge := 1.0
		if len(distances) > 0 {
			edge = distances[len(distances)-1]
		}
		inner = edge + 1
		outer = inner + 2
	}

	belt := &AsteroidBelt{
		ID:          system.ID + "-belt",
		Name:        system.Name + " Asteroid Belt",
		InnerRadius: inner,
		OuterRadius: outer,
		Density:     random.Pick(src, BeltDensities),
		Resources:   copyStrings(Resources[:random.Intn(src, 3)+1]),
	}
	if random.Chance(src, 0.3) {
		belt.MiningStations = random.Intn(src, 5)
	}

	return belt
}
