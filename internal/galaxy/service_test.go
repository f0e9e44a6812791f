package galaxy

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"starsystem-server/internal/shared/config"
	apperrors "starsystem-server/internal/shared/errors"
	"starsystem-server/internal/starsystem"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDefaults() config.GalaxyConfig {
	return config.GalaxyConfig{
		Width:               10,
		Height:              10,
		Depth:               1,
		Density:             0.7,
		InitiallyDiscovered: 5,
		Workers:             4,
		MaxCells:            10000,
	}
}

func newTestService(cache Cache) *Service {
	return NewService(cache, NewRegistry(10), testDefaults(), discardLogger())
}

func testConfig(seed int64) Config {
	return Config{Seed: seed, Width: 10, Height: 10, Depth: 1, Density: 0.7, InitiallyDiscovered: 5}
}

func TestBuildGalaxy_IndependentOfWorkers(t *testing.T) {
	defaults := testDefaults()

	defaults.Workers = 1
	serial := NewService(NewMemoryCache(time.Minute, 0), NewRegistry(1), defaults, discardLogger())
	defaults.Workers = 16
	parallel := NewService(NewMemoryCache(time.Minute, 0), NewRegistry(1), defaults, discardLogger())

	a, err := serial.BuildGalaxy(context.Background(), testConfig(42))
	if err != nil {
		t.Fatalf("serial build: %v", err)
	}
	b, err := parallel.BuildGalaxy(context.Background(), testConfig(42))
	if err != nil {
		t.Fatalf("parallel build: %v", err)
	}

	if a.Len() == 0 {
		t.Fatal("expected some systems at density 0.7")
	}
	if !reflect.DeepEqual(a.Systems(), b.Systems()) {
		t.Error("galaxy content depends on worker count")
	}
	if a.ID == b.ID {
		t.Error("separate builds share a galaxy id")
	}
}

func TestBuildGalaxy_OrderAndDiscovery(t *testing.T) {
	service := newTestService(NewMemoryCache(time.Minute, 0))

	g, err := service.BuildGalaxy(context.Background(), testConfig(7))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	systems := g.Systems()
	if len(systems) < 6 {
		t.Fatalf("only %d systems generated", len(systems))
	}

	for i, s := range systems {
		if wantDiscovered := i < 5; s.Discovered != wantDiscovered {
			t.Errorf("system %d discovered = %v, want %v", i, s.Discovered, wantDiscovered)
		}
		if i == 0 {
			continue
		}
		prev := systems[i-1].Coordinate
		if s.Coordinate.X < prev.X || (s.Coordinate.X == prev.X && s.Coordinate.Y <= prev.Y) {
			t.Fatalf("system %d at %+v follows %+v out of cell order", i, s.Coordinate, prev)
		}
	}
}

func TestBuildGalaxy_Density(t *testing.T) {
	service := newTestService(NewMemoryCache(time.Minute, 0))

	cfg := testConfig(3)
	cfg.Density = 0
	empty, err := service.BuildGalaxy(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if empty.Len() != 0 {
		t.Errorf("density 0 produced %d systems", empty.Len())
	}

	cfg.Density = 1
	cfg.Depth = 2
	full, err := service.BuildGalaxy(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if full.Len() != cfg.Cells() {
		t.Errorf("density 1 produced %d systems, want %d", full.Len(), cfg.Cells())
	}
}

func TestBuildGalaxy_Validation(t *testing.T) {
	service := newTestService(NewMemoryCache(time.Minute, 0))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative depth", func(c *Config) { c.Depth = -1 }},
		{"density above one", func(c *Config) { c.Density = 1.2 }},
		{"negative density", func(c *Config) { c.Density = -0.1 }},
		{"negative discovered", func(c *Config) { c.InitiallyDiscovered = -1 }},
		{"too many cells", func(c *Config) { c.Width, c.Height, c.Depth = 100, 100, 2 }},
		{"overflowing axis", func(c *Config) { c.Width = 1 << 40 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(1)
			tt.mutate(&cfg)

			_, err := service.BuildGalaxy(context.Background(), cfg)
			if apperrors.GetType(err) != apperrors.ErrorTypeValidation {
				t.Errorf("error = %v, want validation error", err)
			}
		})
	}
}

func TestBuildGalaxy_CellLimit(t *testing.T) {
	defaults := testDefaults()
	defaults.MaxCells = 3_000_000
	service := NewService(NewMemoryCache(time.Minute, 0), NewRegistry(1), defaults, discardLogger())

	tests := []struct {
		name                 string
		width, height, depth int
	}{
		{"product wraps negative", 1 << 21, 1 << 21, 1 << 21},
		{"product wraps positive", 1 << 40, 1 << 40, 1 << 10},
		{"one over the limit", 3_000_001, 1, 1},
		{"large axes", 2000, 2000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Seed: 1, Width: tt.width, Height: tt.height, Depth: tt.depth}
			_, err := service.BuildGalaxy(context.Background(), cfg)
			if apperrors.GetType(err) != apperrors.ErrorTypeValidation {
				t.Errorf("error = %v, want validation error", err)
			}
		})
	}
}

func TestBuildGalaxy_ExactCellLimit(t *testing.T) {
	defaults := testDefaults()
	defaults.MaxCells = 24
	service := NewService(NewMemoryCache(time.Minute, 0), NewRegistry(1), defaults, discardLogger())

	g, err := service.BuildGalaxy(context.Background(), Config{Seed: 1, Width: 4, Height: 3, Depth: 2, Density: 1})
	if err != nil {
		t.Fatalf("BuildGalaxy at the limit: %v", err)
	}
	if g.Len() != 24 {
		t.Errorf("len = %d, want 24", g.Len())
	}

	if _, err := service.BuildGalaxy(context.Background(), Config{Seed: 1, Width: 5, Height: 5, Depth: 1}); apperrors.GetType(err) != apperrors.ErrorTypeValidation {
		t.Errorf("25 cells over a limit of 24: error = %v", err)
	}
}

func TestBuildGalaxy_Canceled(t *testing.T) {
	service := newTestService(NewMemoryCache(time.Minute, 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.BuildGalaxy(ctx, testConfig(1))
	if apperrors.GetType(err) != apperrors.ErrorTypeCanceled {
		t.Fatalf("error = %v, want canceled", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("context error not wrapped")
	}
	if len(service.ListGalaxies()) != 0 {
		t.Error("canceled build was registered")
	}
}

func TestGetSystem_MatchesGalaxy(t *testing.T) {
	service := newTestService(NewMemoryCache(time.Minute, 0))
	cfg := testConfig(99)
	cfg.Density = 1
	cfg.InitiallyDiscovered = 0

	g, err := service.BuildGalaxy(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, c := range []starsystem.Coordinate{{X: 0, Y: 0}, {X: 4, Y: 7}, {X: 9, Y: 9}} {
		inGalaxy, err := g.System(c)
		if err != nil {
			t.Fatalf("System(%+v): %v", c, err)
		}
		standalone, err := service.GetSystem(context.Background(), 99, c)
		if err != nil {
			t.Fatalf("GetSystem(%+v): %v", c, err)
		}
		if !reflect.DeepEqual(inGalaxy, standalone) {
			t.Errorf("system at %+v differs between galaxy and direct lookup", c)
		}
	}
}

func TestGetSystem_UsesCache(t *testing.T) {
	cache := NewMemoryCache(time.Minute, 0)
	service := newTestService(cache)
	c := starsystem.Coordinate{X: 2, Y: 3, Z: 4}

	first, err := service.GetSystem(context.Background(), 5, c)
	if err != nil {
		t.Fatalf("GetSystem: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", cache.Len())
	}

	cached, err := cache.Get(context.Background(), CacheKey(5, c))
	if err != nil {
		t.Fatalf("cache get: %v", err)
	}
	cached.Name = "Tampered"
	if err := cache.Set(context.Background(), CacheKey(5, c), *cached); err != nil {
		t.Fatalf("cache set: %v", err)
	}

	second, err := service.GetSystem(context.Background(), 5, c)
	if err != nil {
		t.Fatalf("GetSystem: %v", err)
	}
	if second.Name != "Tampered" {
		t.Error("second lookup did not come from the cache")
	}
	if first.Name == "Tampered" {
		t.Error("cache write leaked into an earlier result")
	}
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (*starsystem.StarSystem, error) {
	return nil, errors.New("cache unavailable")
}

func (failingCache) Set(context.Context, string, starsystem.StarSystem) error {
	return errors.New("cache unavailable")
}

func TestGetSystem_CacheFailureFallsBack(t *testing.T) {
	service := newTestService(failingCache{})
	c := starsystem.Coordinate{X: 1}

	system, err := service.GetSystem(context.Background(), 11, c)
	if err != nil {
		t.Fatalf("GetSystem: %v", err)
	}
	if !reflect.DeepEqual(system, GenerateSystem(11, c)) {
		t.Error("fallback did not regenerate the system")
	}
}

func TestGetSystem_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	service := newTestService(NewRedisCache(client, time.Minute))

	system, err := service.GetSystem(context.Background(), 3, starsystem.Coordinate{})
	if err != nil {
		t.Fatalf("GetSystem: %v", err)
	}
	if system.ID != "system-0-0-0" {
		t.Errorf("id = %q", system.ID)
	}
}

func TestService_Registry(t *testing.T) {
	service := newTestService(NewMemoryCache(time.Minute, 0))
	cfg := testConfig(8)
	cfg.Width, cfg.Height = 3, 3

	g, err := service.BuildGalaxy(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	found, err := service.GetGalaxy(g.ID)
	if err != nil || found != g {
		t.Fatalf("GetGalaxy = %v, %v", found, err)
	}

	_, err = service.GetGalaxy(uuid.New())
	if apperrors.GetType(err) != apperrors.ErrorTypeNotFound {
		t.Errorf("unknown galaxy error = %v, want not found", err)
	}

	summaries := service.ListGalaxies()
	if len(summaries) != 1 || summaries[0].ID != g.ID || summaries[0].Config != cfg {
		t.Errorf("summaries = %+v", summaries)
	}
}

func TestDefaultConfig(t *testing.T) {
	service := newTestService(NewMemoryCache(time.Minute, 0))

	a, err := service.DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig: %v", err)
	}
	b, err := service.DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig: %v", err)
	}

	if a.Width != 10 || a.Height != 10 || a.Depth != 1 || a.Density != 0.7 || a.InitiallyDiscovered != 5 {
		t.Errorf("defaults = %+v", a)
	}
	if a.Seed == b.Seed {
		t.Error("default seeds should be fresh per call")
	}
}
