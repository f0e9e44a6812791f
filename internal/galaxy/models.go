package galaxy

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/starsystem"
)

// Config describes one galaxy build. Cells are visited x-major, then y,
// then z; each is occupied with probability Density.
type Config struct {
	Seed                int64   `json:"seed"`
	Width               int     `json:"width"`
	Height              int     `json:"height"`
	Depth               int     `json:"depth"`
	Density             float64 `json:"density"`
	InitiallyDiscovered int     `json:"initially_discovered"`
}

func (c Config) Cells() int {
	return c.Width * c.Height * c.Depth
}

// Contains reports whether coord lies inside the grid.
func (c Config) Contains(coord starsystem.Coordinate) bool {
	return coord.X >= 0 && coord.X < c.Width &&
		coord.Y >= 0 && coord.Y < c.Height &&
		coord.Z >= 0 && coord.Z < c.Depth
}

func (c Config) coordinates() []starsystem.Coordinate {
	coords := make([]starsystem.Coordinate, 0, c.Cells())
	for x := 0; x < c.Width; x++ {
		for y := 0; y < c.Height; y++ {
			for z := 0; z < c.Depth; z++ {
				coords = append(coords, starsystem.Coordinate{X: x, Y: y, Z: z})
			}
		}
	}
	return coords
}

type Stats struct {
	Systems          int                          `json:"systems"`
	Planets          int                          `json:"planets"`
	Moons            int                          `json:"moons"`
	PopulatedPlanets int                          `json:"populated_planets"`
	Population       uint64                       `json:"population"`
	AsteroidBelts    int                          `json:"asteroid_belts"`
	Anomalies        int                          `json:"anomalies"`
	ClaimedSystems   int                          `json:"claimed_systems"`
	Discovered       int                          `json:"discovered"`
	Classes          map[starsystem.StarClass]int `json:"classes"`
}

type Summary struct {
	ID        uuid.UUID `json:"id"`
	Config    Config    `json:"config"`
	CreatedAt time.Time `json:"created_at"`
	Stats     Stats     `json:"stats"`
}

// Galaxy is a built grid of star systems. The generated records are
// immutable apart from their discovery flags, and every accessor hands
// out copies.
type Galaxy struct {
	ID        uuid.UUID
	Config    Config
	CreatedAt time.Time

	mu      sync.RWMutex
	systems map[starsystem.Coordinate]*starsystem.StarSystem
	order   []starsystem.Coordinate
}

func newGalaxy(cfg Config, systems []*starsystem.StarSystem) *Galaxy {
	g := &Galaxy{
		ID:        uuid.New(),
		Config:    cfg,
		CreatedAt: time.Now().UTC(),
		systems:   make(map[starsystem.Coordinate]*starsystem.StarSystem, len(systems)),
		order:     make([]starsystem.Coordinate, 0, len(systems)),
	}
	for _, s := range systems {
		g.systems[s.Coordinate] = s
		g.order = append(g.order, s.Coordinate)
	}
	return g
}

// lookup must be called with g.mu held.
func (g *Galaxy) lookup(c starsystem.Coordinate) (*starsystem.StarSystem, error) {
	if !g.Config.Contains(c) {
		return nil, errors.Validationf("coordinate (%d, %d, %d) is outside the %dx%dx%d galaxy",
			c.X, c.Y, c.Z, g.Config.Width, g.Config.Height, g.Config.Depth)
	}
	system, ok := g.systems[c]
	if !ok {
		return nil, errors.NotFoundf("no star system at (%d, %d, %d)", c.X, c.Y, c.Z)
	}
	return system, nil
}

func (g *Galaxy) System(c starsystem.Coordinate) (starsystem.StarSystem, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	system, err := g.lookup(c)
	if err != nil {
		return starsystem.StarSystem{}, err
	}
	return system.Clone(), nil
}

// Systems returns every system in cell order.
func (g *Galaxy) Systems() []starsystem.StarSystem {
	g.mu.RLock()
	defer g.mu.RUnlock()

	systems := make([]starsystem.StarSystem, 0, len(g.order))
	for _, c := range g.order {
		systems = append(systems, g.systems[c].Clone())
	}
	return systems
}

func (g *Galaxy) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

// Discover marks the system at c as discovered and returns it.
func (g *Galaxy) Discover(c starsystem.Coordinate) (starsystem.StarSystem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	system, err := g.lookup(c)
	if err != nil {
		return starsystem.StarSystem{}, err
	}
	system.Discovered = true
	return system.Clone(), nil
}

// DiscoverPlanet marks one planet of the system at c as discovered.
// Scanning a planet also reveals its system.
func (g *Galaxy) DiscoverPlanet(c starsystem.Coordinate, planetID string) (starsystem.Planet, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	system, err := g.lookup(c)
	if err != nil {
		return starsystem.Planet{}, err
	}
	planet, ok := system.Planet(planetID)
	if !ok {
		return starsystem.Planet{}, errors.NotFoundf("planet %s not found in %s", planetID, system.ID)
	}
	planet.Discovered = true
	system.Discovered = true

	return planet.Clone(), nil
}

func (g *Galaxy) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := Stats{Classes: make(map[starsystem.StarClass]int)}
	for _, c := range g.order {
		system := g.systems[c]
		stats.Systems++
		stats.Classes[system.Class]++
		if system.Discovered {
			stats.Discovered++
		}
		if system.Faction.Claimed() {
			stats.ClaimedSystems++
		}
		if system.AsteroidBelt != nil {
			stats.AsteroidBelts++
		}
		if system.Anomaly != nil {
			stats.Anomalies++
		}
		for _, p := range system.Planets {
			stats.Planets++
			stats.Moons += len(p.Moons)
			if p.Population > 0 {
				stats.PopulatedPlanets++
				stats.Population += p.Population
			}
		}
	}
	return stats
}

func (g *Galaxy) Summary() Summary {
	return Summary{
		ID:        g.ID,
		Config:    g.Config,
		CreatedAt: g.CreatedAt,
		Stats:     g.Stats(),
	}
}
