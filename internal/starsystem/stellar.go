package starsystem

import (
	"math"

	"starsystem-server/internal/random"
)

// classThresholds is the cumulative distribution of main-sequence classes.
// Rolls at or above the last threshold become an exotic remnant.
// Distribution roughly matches a real galaxy: M (76%), K (12%), G (8%),
// F (2%), A (1.4%), B (0.4%), O (0.15%), remnants (0.05%).
var classThresholds = []struct {
	below float64
	class StarClass
}{
	{0.76, StarClassM},
	{0.88, StarClassK},
	{0.96, StarClassG},
	{0.98, StarClassF},
	{0.994, StarClassA},
	{0.998, StarClassB},
	{0.9995, StarClassO},
}

var remnantClasses = []StarClass{StarClassWhiteDwarf, StarClassNeutron, StarClassBlackHole}

var stellarProfiles = map[StarClass]StarProfile{
	StarClassO:          {Color: "#9BB0FF", Size: 15, Mass: 20, Age: 0.01, Temperature: 30000},
	StarClassB:          {Color: "#AABFFF", Size: 8, Mass: 10, Age: 0.1, Temperature: 20000},
	StarClassA:          {Color: "#CAD7FF", Size: 2.5, Mass: 2, Age: 1, Temperature: 8500},
	StarClassF:          {Color: "#F8F7FF", Size: 1.5, Mass: 1.3, Age: 3, Temperature: 6500},
	StarClassG:          {Color: "#FFF4EA", Size: 1, Mass: 1, Age: 5, Temperature: 5800},
	StarClassK:          {Color: "#FFE4B5", Size: 0.8, Mass: 0.7, Age: 8, Temperature: 4500},
	StarClassM:          {Color: "#FFCC6F", Size: 0.4, Mass: 0.3, Age: 12, Temperature: 3200},
	StarClassWhiteDwarf: {Color: "#FFFFFF", Size: 0.01, Mass: 0.6, Age: 15, Temperature: 50000},
	StarClassNeutron:    {Color: "#E6E6FA", Size: 0.001, Mass: 1.4, Age: 2, Temperature: 100000},
	StarClassBlackHole:  {Color: "#000000", Size: 0.001, Mass: 10, Age: 5, Temperature: 0},
}

var starDescriptions = map[StarClass]string{
	StarClassO:          "massive blue giant",
	StarClassB:          "hot blue-white star",
	StarClassA:          "white main sequence star",
	StarClassF:          "yellow-white star",
	StarClassG:          "yellow dwarf star",
	StarClassK:          "orange dwarf star",
	StarClassM:          "red dwarf star",
	StarClassWhiteDwarf: "white dwarf remnant",
	StarClassNeutron:    "neutron star",
	StarClassBlackHole:  "stellar black hole",
}

// ClassifyStar rolls a star class. Remnants take a second draw to pick
// among white dwarf, neutron star and black hole.
func ClassifyStar(src random.Source) StarClass {
	roll := src.Float64()
	for _, t := range classThresholds {
		if roll < t.below {
			return t.class
		}
	}
	return random.Pick(src, remnantClasses)
}

// Profile returns the fixed physical profile of a class.
func Profile(class StarClass) StarProfile {
	profile, ok := stellarProfiles[class]
	if !ok {
		logger().Warn("Unknown star class, using G profile", "class", class)
		return stellarProfiles[StarClassG]
	}
	return profile
}

// Describe returns the one-sentence system description shown in scans.
func Describe(name string, class StarClass) string {
	desc, ok := starDescriptions[class]
	if !ok {
		desc = "star"
	}
	return "The " + name + " system orbits a " + desc +
		", creating unique conditions for planetary formation and potential life."
}

// CalculateHabitableZone derives the habitable band from stellar mass using
// the simplified mass-luminosity relation L = M^4.
func CalculateHabitableZone(mass float64) HabitableZone {
	luminosity := mass * mass * mass * mass
	return HabitableZone{
		Inner: math.Sqrt(luminosity / 1.1),
		Outer: math.Sqrt(luminosity / 0.53),
	}
}
