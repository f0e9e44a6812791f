package starsystem

import (
	"fmt"

	"starsystem-server/internal/random"
)

var starPrefixes = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta", "Iota", "Kappa",
	"Lambda", "Mu", "Nu", "Xi", "Omicron", "Pi", "Rho", "Sigma", "Tau", "Upsilon",
	"Phi", "Chi", "Psi", "Omega",
}

var starSuffixes = []string{
	"Centauri", "Tauri", "Orionis", "Cygni", "Leonis", "Virginis", "Scorpii", "Aquarii",
	"Pegasi", "Andromedae", "Cassiopeiae", "Ursae", "Draconis", "Lyrae", "Aquilae",
}

// catalogPrefixes are survey designations used for catalog-style planet names.
var catalogPrefixes = []string{
	"Kepler", "Gliese", "Proxima", "Trappist", "HD", "TOI", "K2", "WASP", "HAT",
	"XO", "TrES", "CoRoT", "Qatar", "KELT", "MASCARA",
}

var properNames = []string{
	"Qo'noS", "Vulcan", "Risa", "Bajor", "Cardassia", "Ferenginar", "Romulus", "Remus",
	"Andoria", "Tellar", "Trill", "Betazed", "Rura Penthe", "Talos", "Rigel", "Deneb",
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Aldebaran", "Antares", "Pollux",
}

// SystemName returns a proper name 30% of the time, otherwise a
// Bayer-style "<Greek letter> <constellation>" designation.
func SystemName(src random.Source) string {
	if random.Chance(src, 0.3) {
		return random.Pick(src, properNames)
	}

	prefix := random.Pick(src, starPrefixes)
	suffix := random.Pick(src, starSuffixes)
	return prefix + " " + suffix
}

// PlanetName names the planet at orbital index within systemName. Planets
// are lettered from "b" as in exoplanet catalogs; 30% of them get a survey
// designation such as "Kepler-442c" instead.
func PlanetName(src random.Source, systemName string, index int) string {
	letter := planetLetter(index)
	if random.Chance(src, 0.7) {
		return systemName + " " + letter
	}

	prefix := random.Pick(src, catalogPrefixes)
	number := random.Intn(src, 999) + 1
	return fmt.Sprintf("%s-%d%s", prefix, number, letter)
}

func planetLetter(index int) string {
	return string(rune('b' + index))
}
