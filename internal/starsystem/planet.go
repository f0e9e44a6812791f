package starsystem

import (
	"fmt"
	"math"

	"starsystem-server/internal/random"
)

const (
	// CosmicBackground is the temperature floor in Kelvin.
	CosmicBackground = 2.7
	// RingChance is the probability that a Gas Giant carries rings.
	RingChance = 0.6
	// RetrogradeChance is the probability that a planet spins backwards.
	RetrogradeChance = 0.1
)

// Resources is the shared vocabulary of mineable commodities. Asteroid belts
// draw from it; planets use the per-type pools below.
var Resources = []string{
	"Dilithium", "Tritanium", "Duranium", "Latinum", "Quadrotriticale",
	"Pergium", "Topaline", "Zenite", "Corbomite", "Trellium-D",
}

var TradeGoods = []string{
	"Medical Supplies", "Scientific Data", "Artwork", "Luxury Items",
	"Industrial Equipment", "Agricultural Products", "Textiles", "Spices",
	"Technology Components", "Biological Samples",
}

var resourcePools = map[PlanetType][]string{
	PlanetTypeRocky:    {"Tritanium", "Duranium", "Pergium"},
	PlanetTypeGasGiant: {"Deuterium", "Helium-3"},
	PlanetTypeIceWorld: {"Water", "Deuterium"},
	PlanetTypeDesert:   {"Rare minerals", "Crystals"},
	PlanetTypeOcean:    {"Biological compounds"},
	PlanetTypeVolcanic: {"Dilithium", "Rare earth elements"},
	PlanetTypeDead:     {"Metal ores", "Radioactive materials"},
}

var atmospheres = []string{
	"Breathable", "Toxic", "Thin", "Dense", "Corrosive",
	"High CO2", "Methane", "Ammonia-based",
}

var oceanLife = []string{
	"Advanced aquatic civilization",
	"Primitive aquatic life",
	"Complex marine ecosystem",
	"Microscopic life",
	"Silicon-based organisms",
}

var gasGiantColors = []string{"#4169E1", "#87CEEB", "#DDA0DD", "#F0E68C"}

// PlanetSeed is everything the synthesizer needs to know about an orbital
// slot and its star.
type PlanetSeed struct {
	SystemID        string
	SystemName      string
	Index           int
	Distance        float64
	HabitableZone   HabitableZone
	StarTemperature float64
}

// SynthesizePlanet derives a complete planet for one orbital slot. Draw
// order is fixed so identical streams always produce identical planets.
func SynthesizePlanet(src random.Source, seed PlanetSeed) Planet {
	name := PlanetName(src, seed.SystemName, seed.Index)
	inHZ := seed.HabitableZone.Contains(seed.Distance)
	temp := EquilibriumTemperature(seed.Distance, seed.StarTemperature)

	planetType := SelectPlanetType(src, seed.Distance, seed.HabitableZone, temp)
	size := PlanetSize(src, planetType)
	gravity := Gravity(size, planetType)

	id := fmt.Sprintf("%s-planet-%d", seed.SystemID, seed.Index)

	planet := Planet{
		ID:          id,
		Name:        name,
		Type:        planetType,
		Size:        size,
		Distance:    seed.Distance,
		Temperature: temp,
		Gravity:     gravity,
	}

	planet.Atmosphere = Atmosphere(src, planetType, temp, gravity)
	planet.Life = Biosignature(src, planetType, temp, inHZ)
	planet.Color = PlanetColor(src, planetType, temp)
	planet.OrbitSpeed = math.Sqrt(1/math.Pow(seed.Distance, 3)) * 0.1
	planet.RotationSpeed = RotationSpeed(src)
	planet.Population = Population(src, planetType, temp, inHZ)
	planet.Resources = PlanetResources(src, planetType)
	planet.TradeGoods = PlanetTradeGoods(src, planetType)
	planet.Rings = planetType == PlanetTypeGasGiant && random.Chance(src, RingChance)
	planet.Moons = GenerateMoons(src, id, name, planetType, size)
	planet.MagneticField = MagneticField(src, size, planetType)
	planet.TectonicActivity = Tectonics(src, planetType, temp, size)
	planet.WeatherPatterns = WeatherPatterns(planetType, temp, gravity)

	return planet
}

// EquilibriumTemperature approximates surface temperature from stellar
// heating, floored at the cosmic background.
func EquilibriumTemperature(distance, starTemp float64) float64 {
	flux := math.Pow(starTemp/5778, 4) / (distance * distance)
	temp := math.Pow(flux*0.25, 0.25) * 278
	return math.Max(temp, CosmicBackground)
}

// SelectPlanetType picks a type from the slot's position relative to the
// habitable zone. Close-in slots are decided by temperature alone.
func SelectPlanetType(src random.Source, distance float64, hz HabitableZone, temp float64) PlanetType {
	switch {
	case distance < hz.Inner*0.7:
		if temp > 800 {
			return PlanetTypeVolcanic
		}
		return PlanetTypeRocky
	case hz.Contains(distance):
		roll := src.Float64()
		if roll < 0.4 {
			return PlanetTypeRocky
		}
		if roll < 0.7 {
			return PlanetTypeOcean
		}
		return PlanetTypeDesert
	case distance < hz.Outer*3:
		if random.Chance(src, 0.7) {
			return PlanetTypeGasGiant
		}
		return PlanetTypeIceWorld
	default:
		if random.Chance(src, 0.8) {
			return PlanetTypeIceWorld
		}
		return PlanetTypeGasGiant
	}
}

// PlanetSize returns a radius in Earth radii.
func PlanetSize(src random.Source, t PlanetType) float64 {
	switch t {
	case PlanetTypeGasGiant:
		return random.Between(src, 4, 12)
	case PlanetTypeRocky, PlanetTypeDesert, PlanetTypeOcean, PlanetTypeVolcanic:
		return random.Between(src, 0.5, 2)
	case PlanetTypeIceWorld:
		return random.Between(src, 0.3, 1.5)
	case PlanetTypeDead:
		return random.Between(src, 0.2, 1)
	}
	logger().Warn("Unknown planet type, using unit size", "type", t)
	return 1
}

// Gravity scales volume by a bulk density factor per type.
func Gravity(size float64, t PlanetType) float64 {
	density := 1.0
	switch t {
	case PlanetTypeGasGiant:
		density = 0.3
	case PlanetTypeIceWorld:
		density = 0.6
	}
	return math.Pow(size, 3) * density
}

func Atmosphere(src random.Source, t PlanetType, temp, gravity float64) string {
	switch {
	case t == PlanetTypeGasGiant:
		return "Dense hydrogen/helium"
	case gravity < 0.3:
		return "None"
	case temp < 150:
		return "Frozen"
	case temp > 800:
		return "Toxic volcanic"
	case t == PlanetTypeOcean && temp > 273 && temp < 373:
		if random.Chance(src, 0.7) {
			return "Breathable"
		}
		return "High humidity"
	}
	return random.Pick(src, atmospheres)
}

// Biosignature describes the most advanced life on the planet, tiered by
// how habitable it is.
func Biosignature(src random.Source, t PlanetType, temp float64, inHZ bool) string {
	switch {
	case t == PlanetTypeGasGiant:
		if random.Chance(src, 0.1) {
			return "Aerial microbes"
		}
		return "None"
	case t == PlanetTypeDead:
		return "None"
	case !inHZ && temp < 200:
		if random.Chance(src, 0.2) {
			return "Extremophile bacteria"
		}
		return "None"
	case temp > 500:
		if random.Chance(src, 0.1) {
			return "Thermophiles"
		}
		return "None"
	case inHZ && t == PlanetTypeOcean:
		return random.Pick(src, oceanLife)
	case inHZ && (t == PlanetTypeRocky || t == PlanetTypeDesert):
		roll := src.Float64()
		switch {
		case roll < 0.1:
			return "Advanced civilization"
		case roll < 0.3:
			return "Primitive civilization"
		case roll < 0.6:
			return "Complex life forms"
		case roll < 0.8:
			return "Simple life forms"
		}
		return "Microbial life"
	}

	if random.Chance(src, 0.3) {
		return "Microbial life"
	}
	return "None"
}

// PlanetColor returns the display color used by map and scene renderers.
func PlanetColor(src random.Source, t PlanetType, temp float64) string {
	switch t {
	case PlanetTypeRocky:
		if temp > 400 {
			return "#8B4513"
		}
		return "#A0522D"
	case PlanetTypeGasGiant:
		return random.Pick(src, gasGiantColors)
	case PlanetTypeIceWorld:
		return "#E0FFFF"
	case PlanetTypeDesert:
		return "#F4A460"
	case PlanetTypeOcean:
		return "#006994"
	case PlanetTypeVolcanic:
		return "#FF4500"
	case PlanetTypeDead:
		return "#696969"
	}
	logger().Warn("Unknown planet type, using placeholder color", "type", t)
	return "#CCCCCC"
}

// RotationSpeed is a spin rate in [0.01, 0.11), negated for the 10% of
// planets that rotate retrograde.
func RotationSpeed(src random.Source) float64 {
	speed := random.Between(src, 0.01, 0.11)
	if random.Chance(src, RetrogradeChance) {
		return -speed
	}
	return speed
}

// Population is non-zero only for temperate, solid planets inside the
// habitable zone, and even then 70% of them are empty.
func Population(src random.Source, t PlanetType, temp float64, inHZ bool) uint64 {
	if !inHZ || t == PlanetTypeGasGiant || t == PlanetTypeDead {
		return 0
	}
	if temp < 200 || temp > 400 {
		return 0
	}

	roll := src.Float64()
	switch {
	case roll < 0.7:
		return 0
	case roll < 0.85:
		return uint64(random.Intn(src, 100_000))
	case roll < 0.95:
		return uint64(random.Intn(src, 1_000_000))
	}
	return uint64(random.Intn(src, 1_000_000_000))
}

// PlanetResources draws up to two distinct resources from the type's pool.
func PlanetResources(src random.Source, t PlanetType) []string {
	pool, ok := resourcePools[t]
	if !ok {
		logger().Warn("No resource pool for planet type, using shared vocabulary", "type", t)
		pool = Resources
	}

	count := random.Intn(src, 3)
	return drawUnique(src, pool, count)
}

// PlanetTradeGoods returns the goods the planet exports, if any. Ocean and
// Rocky worlds trade more often.
func PlanetTradeGoods(src random.Source, t PlanetType) []string {
	chance := 0.3
	if t == PlanetTypeOcean || t == PlanetTypeRocky {
		chance = 0.5
	}
	if src.Float64() > chance {
		return []string{}
	}

	count := random.Intn(src, 2) + 1
	return drawUnique(src, TradeGoods, count)
}

// drawUnique makes count draws from pool and drops repeats, so the result
// may hold fewer than count items.
func drawUnique(src random.Source, pool []string, count int) []string {
	selected := make([]string, 0, count)
	for i := 0; i < count; i++ {
		item := random.Pick(src, pool)
		if !contains(selected, item) {
			selected = append(selected, item)
		}
	}
	return selected
}

func contains(items []string, item string) bool {
	for _, v := range items {
		if v == item {
			return true
		}
	}
	return false
}

// MagneticField is relative to Earth.
func MagneticField(src random.Source, size float64, t PlanetType) float64 {
	switch t {
	case PlanetTypeGasGiant:
		return size * 10
	case PlanetTypeDead, PlanetTypeIceWorld:
		return 0.1
	}
	return size * random.Between(src, 0, 2)
}

// Tectonics buckets a size/heat activity score. Gas Giants and dead worlds
// have no crust to move; volcanic worlds are always extreme.
func Tectonics(src random.Source, t PlanetType, temp, size float64) TectonicActivity {
	switch t {
	case PlanetTypeGasGiant, PlanetTypeDead:
		return TectonicNone
	case PlanetTypeVolcanic:
		return TectonicExtreme
	}
	if size < 0.5 {
		return TectonicNone
	}

	activity := size * (temp / 300) * src.Float64()
	switch {
	case activity < 0.2:
		return TectonicNone
	case activity < 0.5:
		return TectonicLow
	case activity < 1.0:
		return TectonicModerate
	case activity < 1.5:
		return TectonicHigh
	}
	return TectonicExtreme
}

func WeatherPatterns(t PlanetType, temp, gravity float64) []string {
	if t == PlanetTypeDead || gravity < 0.1 {
		return []string{"None"}
	}
	if t == PlanetTypeGasGiant {
		return []string{"Massive storms", "Atmospheric bands", "Lightning"}
	}

	var patterns []string
	if temp > 273 {
		patterns = append(patterns, "Rain")
	}
	if temp < 273 {
		patterns = append(patterns, "Snow")
	}
	switch t {
	case PlanetTypeDesert:
		patterns = append(patterns, "Dust storms")
	case PlanetTypeOcean:
		patterns = append(patterns, "Hurricanes", "Tidal patterns")
	case PlanetTypeVolcanic:
		patterns = append(patterns, "Ash clouds")
	}
	if gravity > 2 {
		patterns = append(patterns, "Extreme weather")
	}

	if len(patterns) == 0 {
		return []string{"Calm"}
	}
	return patterns
}
