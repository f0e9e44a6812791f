package starsystem

import (
	"fmt"
	"math"

	"starsystem-server/internal/random"
)

var moonColors = []string{"#CCCCCC", "#E0FFFF", "#8B4513"}

// GenerateMoons attaches satellites to a planet. Gas Giants always hold
// 2-9 moons; solid planets larger than 0.8 Earth radii capture a single
// moon 40% of the time. The result is never nil.
func GenerateMoons(src random.Source, planetID, planetName string, t PlanetType, size float64) []Moon {
	if t == PlanetTypeGasGiant {
		count := random.Intn(src, 8) + 2
		moons := make([]Moon, 0, count)

		for i := 0; i < count; i++ {
			distance := float64(i+1) * 2
			moon := Moon{
				ID:         fmt.Sprintf("%s-moon-%d", planetID, i),
				Name:       fmt.Sprintf("%s %d", planetName, i+1),
				Color:      random.Pick(src, moonColors),
				Size:       random.Between(src, 0.1, 0.4),
				Distance:   distance,
				OrbitSpeed: math.Sqrt(1/math.Pow(distance, 3)) * 0.5,
				Type:       MoonTypeRocky,
			}
			if random.Chance(src, 0.6) {
				moon.Type = MoonTypeIce
			}
			moon.TidallyLocked = random.Chance(src, 0.8)
			moons = append(moons, moon)
		}
		return moons
	}

	// any large non-gas-giant qualifies, ice and ocean worlds included
	if size > 0.8 && random.Chance(src, 0.4) {
		return []Moon{{
			ID:            planetID + "-moon-0",
			Name:          planetName + " Moon",
			Color:         "#CCCCCC",
			Size:          random.Between(src, 0.05, 0.25),
			Distance:      3,
			OrbitSpeed:    0.1,
			Type:          MoonTypeRocky,
			TidallyLocked: random.Chance(src, 0.5),
		}}
	}

	return []Moon{}
}
