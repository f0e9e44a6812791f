package starsystem

import (
	"github.com/google/uuid"
)

// StarClass is a spectral class or an exotic stellar remnant.
type StarClass string

const (
	StarClassO          StarClass = "O"
	StarClassB          StarClass = "B"
	StarClassA          StarClass = "A"
	StarClassF          StarClass = "F"
	StarClassG          StarClass = "G"
	StarClassK          StarClass = "K"
	StarClassM          StarClass = "M"
	StarClassWhiteDwarf StarClass = "WD"
	StarClassNeutron    StarClass = "NS"
	StarClassBlackHole  StarClass = "BH"
)

// StarClasses lists every star class, hottest main-sequence class first.
var StarClasses = []StarClass{
	StarClassO, StarClassB, StarClassA, StarClassF, StarClassG, StarClassK, StarClassM,
	StarClassWhiteDwarf, StarClassNeutron, StarClassBlackHole,
}

// Valid reports whether c is one of StarClasses.
func (c StarClass) Valid() bool {
	_, ok := stellarProfiles[c]
	return ok
}

// IsRemnant reports whether c is a degenerate stellar remnant.
func (c StarClass) IsRemnant() bool {
	return c == StarClassWhiteDwarf || c == StarClassNeutron || c == StarClassBlackHole
}

type PlanetType string

const (
	PlanetTypeRocky    PlanetType = "Rocky"
	PlanetTypeGasGiant PlanetType = "Gas Giant"
	PlanetTypeIceWorld PlanetType = "Ice World"
	PlanetTypeDesert   PlanetType = "Desert"
	PlanetTypeOcean    PlanetType = "Ocean"
	PlanetTypeVolcanic PlanetType = "Volcanic"
	PlanetTypeDead     PlanetType = "Dead"
)

var PlanetTypes = []PlanetType{
	PlanetTypeRocky, PlanetTypeGasGiant, PlanetTypeIceWorld, PlanetTypeDesert,
	PlanetTypeOcean, PlanetTypeVolcanic, PlanetTypeDead,
}

func (t PlanetType) Valid() bool { return oneOf(t, PlanetTypes) }

type MoonType string

const (
	MoonTypeRocky            MoonType = "Rocky"
	MoonTypeIce              MoonType = "Ice"
	MoonTypeCapturedAsteroid MoonType = "Captured Asteroid"
)

var MoonTypes = []MoonType{MoonTypeRocky, MoonTypeIce, MoonTypeCapturedAsteroid}

func (t MoonType) Valid() bool { return oneOf(t, MoonTypes) }

type TectonicActivity string

const (
	TectonicNone     TectonicActivity = "None"
	TectonicLow      TectonicActivity = "Low"
	TectonicModerate TectonicActivity = "Moderate"
	TectonicHigh     TectonicActivity = "High"
	TectonicExtreme  TectonicActivity = "Extreme"
)

var TectonicLevels = []TectonicActivity{TectonicNone, TectonicLow, TectonicModerate, TectonicHigh, TectonicExtreme}

func (a TectonicActivity) Valid() bool { return oneOf(a, TectonicLevels) }

type ThreatLevel string

const (
	ThreatSafe     ThreatLevel = "Safe"
	ThreatLow      ThreatLevel = "Low"
	ThreatModerate ThreatLevel = "Moderate"
	ThreatHigh     ThreatLevel = "High"
	ThreatExtreme  ThreatLevel = "Extreme"
)

var ThreatLevels = []ThreatLevel{ThreatSafe, ThreatLow, ThreatModerate, ThreatHigh, ThreatExtreme}

func (l ThreatLevel) Valid() bool { return oneOf(l, ThreatLevels) }

type AnomalyType string

const (
	AnomalyWormhole           AnomalyType = "Wormhole"
	AnomalySpatialRift        AnomalyType = "Spatial Rift"
	AnomalySubspaceDistortion AnomalyType = "Subspace Distortion"
	AnomalyQuantumSingularity AnomalyType = "Quantum Singularity"
	AnomalyTimeDistortion     AnomalyType = "Time Distortion"
)

var AnomalyTypes = []AnomalyType{
	AnomalyWormhole, AnomalySpatialRift, AnomalySubspaceDistortion,
	AnomalyQuantumSingularity, AnomalyTimeDistortion,
}

func (t AnomalyType) Valid() bool { return oneOf(t, AnomalyTypes) }

type Stability string

const (
	StabilityStable        Stability = "Stable"
	StabilityUnstable      Stability = "Unstable"
	StabilityDeteriorating Stability = "Deteriorating"
	StabilityDangerous     Stability = "Dangerous"
)

var Stabilities = []Stability{StabilityStable, StabilityUnstable, StabilityDeteriorating, StabilityDangerous}

func (s Stability) Valid() bool { return oneOf(s, Stabilities) }

type BeltDensity string

const (
	BeltSparse   BeltDensity = "Sparse"
	BeltModerate BeltDensity = "Moderate"
	BeltDense    BeltDensity = "Dense"
)

var BeltDensities = []BeltDensity{BeltSparse, BeltModerate, BeltDense}

func (d BeltDensity) Valid() bool { return oneOf(d, BeltDensities) }

// Faction is the power controlling a system. The zero value means the
// system is unclaimed.
type Faction string

const (
	FactionUnclaimed  Faction = ""
	FactionFederation Faction = "Federation"
	FactionKlingon    Faction = "Klingon Empire"
	FactionRomulan    Faction = "Romulan Star Empire"
	FactionCardassian Faction = "Cardassian Union"
	FactionDominion   Faction = "Dominion"
	FactionBorg       Faction = "Borg Collective"
	FactionFerengi    Faction = "Ferengi Alliance"
	FactionNeutral    Faction = "Neutral Zone"
	FactionIndie      Faction = "Independent"
)

// Factions lists the claimable factions; FactionUnclaimed is not among them.
var Factions = []Faction{
	FactionFederation, FactionKlingon, FactionRomulan,
	FactionCardassian, FactionDominion, FactionBorg,
	FactionFerengi, FactionNeutral, FactionIndie,
}

// Valid accepts the named factions and FactionUnclaimed.
func (f Faction) Valid() bool { return f == FactionUnclaimed || oneOf(f, Factions) }

// Claimed reports whether a faction controls the system.
func (f Faction) Claimed() bool {
	return f != FactionUnclaimed
}

func oneOf[T comparable](v T, values []T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Coordinate is a galaxy grid cell.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// StarProfile is the fixed physical description of a star class.
type StarProfile struct {
	Color       string  `json:"color"`
	Size        float64 `json:"size"`        // Solar radii
	Mass        float64 `json:"mass"`        // Solar masses
	Age         float64 `json:"age"`         // Billion years
	Temperature float64 `json:"temperature"` // Kelvin
}

// HabitableZone is the orbital band, in AU, where liquid water is possible.
type HabitableZone struct {
	Inner float64 `json:"inner"`
	Outer float64 `json:"outer"`
}

// Contains reports whether distance lies inside the zone, bounds included.
func (hz HabitableZone) Contains(distance float64) bool {
	return distance >= hz.Inner && distance <= hz.Outer
}

type Moon struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Color         string   `json:"color"`
	Size          float64  `json:"size"`
	Distance      float64  `json:"distance"` // from the parent planet
	OrbitSpeed    float64  `json:"orbit_speed"`
	Type          MoonType `json:"type"`
	TidallyLocked bool     `json:"tidally_locked"`
}

type Planet struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Type             PlanetType       `json:"type"`
	Atmosphere       string           `json:"atmosphere"`
	Life             string           `json:"life"`
	Color            string           `json:"color"`
	Size             float64          `json:"size"`           // Earth radii
	Distance         float64          `json:"distance"`       // AU from the star
	OrbitSpeed       float64          `json:"orbit_speed"`    // radians per second
	RotationSpeed    float64          `json:"rotation_speed"` // negative when retrograde
	Population       uint64           `json:"population"`
	Resources        []string         `json:"resources"`
	TradeGoods       []string         `json:"trade_goods"`
	Rings            bool             `json:"rings"`
	Moons            []Moon           `json:"moons"`
	Temperature      float64          `json:"temperature"`    // Kelvin
	Gravity          float64          `json:"gravity"`        // Earth = 1.0
	MagneticField    float64          `json:"magnetic_field"` // Earth = 1.0
	TectonicActivity TectonicActivity `json:"tectonic_activity"`
	WeatherPatterns  []string         `json:"weather_patterns"`
	Discovered       bool             `json:"discovered"`
}

// Retrograde reports whether the planet rotates against its orbit.
func (p Planet) Retrograde() bool {
	return p.RotationSpeed < 0
}

type AsteroidBelt struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	InnerRadius    float64     `json:"inner_radius"`
	OuterRadius    float64     `json:"outer_radius"`
	Density        BeltDensity `json:"density"`
	Resources      []string    `json:"resources"`
	MiningStations int         `json:"mining_stations"`
}

type SpaceAnomaly struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        AnomalyType `json:"type"`
	Description string      `json:"description"`
	Effects     []string    `json:"effects"`
	Stability   Stability   `json:"stability"`
}

// StarSystem is the complete generated record for one coordinate. Only the
// Discovered flags change after generation.
type StarSystem struct {
	ID            string        `json:"id"`
	UID           uuid.UUID     `json:"uid"`
	Name          string        `json:"name"`
	Class         StarClass     `json:"star_type"`
	Star          StarProfile   `json:"star"`
	Description   string        `json:"description"`
	Coordinate    Coordinate    `json:"coordinate"`
	Planets       []Planet      `json:"planets"`
	HabitableZone HabitableZone `json:"habitable_zone"`
	AsteroidBelt  *AsteroidBelt `json:"asteroid_belt,omitempty"`
	Anomaly       *SpaceAnomaly `json:"anomaly,omitempty"`
	Faction       Faction       `json:"faction,omitempty"`
	ThreatLevel   ThreatLevel   `json:"threat_level"`
	Discovered    bool          `json:"discovered"`
}

// Planet returns the planet with the given ID.
func (s *StarSystem) Planet(id string) (*Planet, bool) {
	for i := range s.Planets {
		if s.Planets[i].ID == id {
			return &s.Planets[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy so callers can flip discovery flags without
// sharing slices with the original record.
func (s StarSystem) Clone() StarSystem {
	out := s
	out.Planets = make([]Planet, len(s.Planets))
	for i, p := range s.Planets {
		out.Planets[i] = p.Clone()
	}
	if s.AsteroidBelt != nil {
		belt := *s.AsteroidBelt
		belt.Resources = copyStrings(belt.Resources)
		out.AsteroidBelt = &belt
	}
	if s.Anomaly != nil {
		anomaly := *s.Anomaly
		anomaly.Effects = copyStrings(anomaly.Effects)
		out.Anomaly = &anomaly
	}
	return out
}

// Clone returns a copy of p that shares no slices with it.
func (p Planet) Clone() Planet {
	p.Resources = copyStrings(p.Resources)
	p.TradeGoods = copyStrings(p.TradeGoods)
	p.WeatherPatterns = copyStrings(p.WeatherPatterns)
	p.Moons = append(make([]Moon, 0, len(p.Moons)), p.Moons...)
	return p
}

func copyStrings(in []string) []string {
	return append(make([]string, 0, len(in)), in...)
}
