package starsystem

import (
	"math"
	"testing"

	"starsystem-server/internal/random"
)

func TestGenerateMoons_GasGiant(t *testing.T) {
	moons := GenerateMoons(random.NewSequence(0), "p", "Jove", PlanetTypeGasGiant, 10)

	if len(moons) != 2 {
		t.Fatalf("moon count = %d, want 2 for the lowest roll", len(moons))
	}

	for i, moon := range moons {
		wantDistance := float64(i+1) * 2
		if moon.Distance != wantDistance {
			t.Errorf("moon %d distance = %v, want %v", i, moon.Distance, wantDistance)
		}
		wantSpeed := math.Sqrt(1/math.Pow(wantDistance, 3)) * 0.5
		if !approxEqual(moon.OrbitSpeed, wantSpeed, 1e-12) {
			t.Errorf("moon %d orbit speed = %v, want %v", i, moon.OrbitSpeed, wantSpeed)
		}
		if moon.Type != MoonTypeIce {
			t.Errorf("moon %d type = %s, want Ice for roll 0", i, moon.Type)
		}
		if !moon.TidallyLocked {
			t.Errorf("moon %d should be tidally locked for roll 0", i)
		}
	}

	if moons[0].ID != "p-moon-0" || moons[1].Name != "Jove 2" {
		t.Errorf("unexpected identity: %q / %q", moons[0].ID, moons[1].Name)
	}
}

func TestGenerateMoons_GasGiantCountRange(t *testing.T) {
	rng := random.New(11)
	for i := 0; i < 1000; i++ {
		n := len(GenerateMoons(rng, "p", "P", PlanetTypeGasGiant, 8))
		if n < 2 || n > 9 {
			t.Fatalf("gas giant moon count %d outside [2,9]", n)
		}
	}
}

func TestGenerateMoons_SolidPlanets(t *testing.T) {
	tests := []struct {
		name       string
		planetType PlanetType
		size       float64
		rolls      []float64
		want       int
	}{
		{"large rocky captures a moon", PlanetTypeRocky, 1.2, []float64{0.39, 0.5, 0.2}, 1},
		{"large rocky misses", PlanetTypeRocky, 1.2, []float64{0.4}, 0},
		{"small rocky has none", PlanetTypeRocky, 0.8, []float64{0}, 0},
		{"large ocean captures a moon", PlanetTypeOcean, 1.5, []float64{0}, 1},
		{"large ice world captures a moon", PlanetTypeIceWorld, 0.9, []float64{0.1}, 1},
		{"small dead world has none", PlanetTypeDead, 0.5, []float64{0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moons := GenerateMoons(random.NewSequence(tt.rolls...), "p", "P", tt.planetType, tt.size)
			if moons == nil {
				t.Fatal("moons must never be nil")
			}
			if len(moons) != tt.want {
				t.Fatalf("moon count = %d, want %d", len(moons), tt.want)
			}
			if tt.want == 1 {
				moon := moons[0]
				if moon.Type != MoonTypeRocky || moon.Distance != 3 || moon.OrbitSpeed != 0.1 {
					t.Errorf("unexpected single moon %+v", moon)
				}
				if moon.Size < 0.05 || moon.Size >= 0.25 {
					t.Errorf("moon size %v outside [0.05,0.25)", moon.Size)
				}
			}
		})
	}
}
