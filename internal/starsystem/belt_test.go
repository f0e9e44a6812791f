package starsystem

import (
	"reflect"
	"testing"

	"starsystem-server/internal/random"
)

func systemWithOrbits(distances ...float64) *StarSystem {
	system := &StarSystem{ID: "system-1-1-0", Name: "Vega"}
	for _, d := range distances {
		system.Planets = append(system.Planets, Planet{Distance: d})
	}
	return system
}

func TestGenerateAsteroidBelt_Placement(t *testing.T) {
	tests := []struct {
		name      string
		distances []float64
		rolls     []float64
		inner     float64
		outer     float64
	}{
		{"no planets", nil, []float64{0}, 2, 4},
		{"single planet", []float64{3}, []float64{0}, 4, 6},
		{"wide gap", []float64{1, 5}, []float64{0}, 1.5, 4.5},
		{"second gap", []float64{1, 2, 6}, []float64{0.9}, 2.5, 5.5},
		{"unsorted orbits", []float64{6, 1, 2}, []float64{0.9}, 2.5, 5.5},
		{"narrow gap", []float64{1, 1.4}, []float64{0}, 1.1, 1.3},
		{"coincident orbits", []float64{2, 2}, []float64{0}, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			belt := GenerateAsteroidBelt(random.NewSequence(tt.rolls...), systemWithOrbits(tt.distances...))

			if !approxEqual(belt.InnerRadius, tt.inner, 1e-9) || !approxEqual(belt.OuterRadius, tt.outer, 1e-9) {
				t.Errorf("belt = [%v, %v], want [%v, %v]", belt.InnerRadius, belt.OuterRadius, tt.inner, tt.outer)
			}
			if belt.InnerRadius >= belt.OuterRadius {
				t.Errorf("inner %v >= outer %v", belt.InnerRadius, belt.OuterRadius)
			}
		})
	}
}

func TestGenerateAsteroidBelt_Attributes(t *testing.T) {
	belt := GenerateAsteroidBelt(random.NewSequence(0), systemWithOrbits(1, 5))

	if belt.ID != "system-1-1-0-belt" || belt.Name != "Vega Asteroid Belt" {
		t.Errorf("unexpected identity %q / %q", belt.ID, belt.Name)
	}
	if belt.Density != BeltSparse {
		t.Errorf("density = %s, want Sparse", belt.Density)
	}
	if !reflect.DeepEqual(belt.Resources, []string{"Dilithium"}) {
		t.Errorf("resources = %v, want [Dilithium]", belt.Resources)
	}
	if belt.MiningStations != 0 {
		t.Errorf("mining stations = %d, want 0", belt.MiningStations)
	}

	// gap, density, resources, station chance, station count
	rich := GenerateAsteroidBelt(random.NewSequence(0, 0.99, 0.99, 0.1, 0.99), systemWithOrbits(1, 5))
	if rich.Density != BeltDense {
		t.Errorf("density = %s, want Dense", rich.Density)
	}
	if !reflect.DeepEqual(rich.Resources, []string{"Dilithium", "Tritanium", "Duranium"}) {
		t.Errorf("resources = %v", rich.Resources)
	}
	if rich.MiningStations != 4 {
		t.Errorf("mining stations = %d, want 4", rich.MiningStations)
	}
}

func TestGenerateAsteroidBelt_ResourcesNotShared(t *testing.T) {
	belt := GenerateAsteroidBelt(random.NewSequence(0), systemWithOrbits())
	belt.Resources[0] = "Mutated"

	if Resources[0] != "Dilithium" {
		t.Fatal("belt resources alias the shared vocabulary")
	}
}
