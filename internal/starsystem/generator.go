// Package starsystem generates complete star systems from a coordinate and
// an explicit random stream.
//
// Generation is a fixed pipeline: name, star class and profile, habitable
// zone, faction and threat, planet slots (each with its moons), then an
// optional asteroid belt and an optional anomaly. Every stage is a pure
// function of its inputs and the stream, so the same coordinate and seed
// always yield the same record, and distinct coordinates can be generated
// concurrently as long as each owns its stream.
package starsystem

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"starsystem-server/internal/random"
)

// SystemNamespace scopes the name-based UUIDs derived from system IDs.
var SystemNamespace = uuid.MustParse("8d3f6a52-91c4-5b7e-a0d2-3c6e9f1b4a87")

func logger() *slog.Logger {
	return slog.With("component", "starsystem")
}

// SystemID is the stable identifier of the system at c.
func SystemID(c Coordinate) string {
	return fmt.Sprintf("system-%d-%d-%d", c.X, c.Y, c.Z)
}

// GenerateStarSystem is Generate for discrete x, y, z.
func GenerateStarSystem(src random.Source, x, y, z int) StarSystem {
	return Generate(src, Coordinate{X: x, Y: y, Z: z})
}

// Generate builds the full system at c. Any integer coordinate is accepted;
// bounding the grid is the caller's concern.
func Generate(src random.Source, c Coordinate) StarSystem {
	id := SystemID(c)
	name := SystemName(src)
	class := ClassifyStar(src)
	star := Profile(class)

	system := StarSystem{
		ID:            id,
		UID:           uuid.NewSHA1(SystemNamespace, []byte(id)),
		Name:          name,
		Class:         class,
		Star:          star,
		Description:   Describe(name, class),
		Coordinate:    c,
		HabitableZone: CalculateHabitableZone(star.Mass),
		Faction:       AssignFaction(src),
		ThreatLevel:   AssessThreat(src),
	}

	count := PlanetCount(src, class)
	system.Planets = make([]Planet, 0, count)
	for i := 0; i < count; i++ {
		distance := OrbitDistance(src, i, star.Mass)
		system.Planets = append(system.Planets, SynthesizePlanet(src, PlanetSeed{
			SystemID:        id,
			SystemName:      name,
			Index:           i,
			Distance:        distance,
			HabitableZone:   system.HabitableZone,
			StarTemperature: star.Temperature,
		}))
	}

	if random.Chance(src, BeltChance) {
		system.AsteroidBelt = GenerateAsteroidBelt(src, &system)
	}

	if random.Chance(src, AnomalyChance) {
		anomaly := GenerateAnomaly(src, id)
		system.Anomaly = &anomaly
	}

	logger().Debug("Star system generated",
		"system_id", id,
		"name", name,
		"class", class,
		"planets", len(system.Planets),
		"belt", system.AsteroidBelt != nil,
		"anomaly", system.Anomaly != nil,
	)

	return system
}
