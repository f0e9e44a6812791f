package galaxy

import (
	"context"
	stderrors "errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"starsystem-server/internal/random"
	"starsystem-server/internal/shared/config"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/starsystem"
)

const (
	systemSalt    = "system"
	occupancySalt = "occupancy"

	defaultMaxCells = 100000
)

type Service struct {
	cache    Cache
	registry *Registry
	defaults config.GalaxyConfig
	logger   *slog.Logger
}

func NewService(cache Cache, registry *Registry, defaults config.GalaxyConfig, logger *slog.Logger) *Service {
	if defaults.Workers <= 0 {
		defaults.Workers = runtime.NumCPU()
	}
	if defaults.MaxCells <= 0 {
		defaults.MaxCells = defaultMaxCells
	}

	logger.Debug("Initializing galaxy service",
		"workers", defaults.Workers,
		"max_cells", defaults.MaxCells,
	)

	return &Service{
		cache:    cache,
		registry: registry,
		defaults: defaults,
		logger:   logger,
	}
}

// DefaultConfig returns the configured build defaults with a fresh seed.
func (s *Service) DefaultConfig() (Config, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return Config{}, errors.WrapInternal("failed to draw galaxy seed", err)
	}

	return Config{
		Seed:                seed,
		Width:               s.defaults.Width,
		Height:              s.defaults.Height,
		Depth:               s.defaults.Depth,
		Density:             s.defaults.Density,
		InitiallyDiscovered: s.defaults.InitiallyDiscovered,
	}, nil
}

func (s *Service) validate(cfg Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Depth <= 0 {
		return errors.Validationf("galaxy dimensions must be positive, got %dx%dx%d", cfg.Width, cfg.Height, cfg.Depth)
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return errors.Validationf("density must be between 0 and 1, got %v", cfg.Density)
	}
	if cfg.InitiallyDiscovered < 0 {
		return errors.Validation("initially_discovered cannot be negative")
	}
	// divide instead of multiplying so oversized axes cannot overflow Cells
	limit := s.defaults.MaxCells
	if cfg.Width > limit/cfg.Height/cfg.Depth {
		return errors.Validationf("galaxy exceeds the limit of %d cells", limit)
	}
	return nil
}

// BuildGalaxy generates every occupied cell of the grid and registers the
// result. Each cell draws from its own streams derived from the galaxy
// seed, so the outcome does not depend on worker scheduling.
func (s *Service) BuildGalaxy(ctx context.Context, cfg Config) (*Galaxy, error) {
	logger := s.logger.With(
		"component", "galaxy_service",
		"operation", "build_galaxy",
		"seed", cfg.Seed,
		"width", cfg.Width,
		"height", cfg.Height,
		"depth", cfg.Depth,
	)

	if err := s.validate(cfg); err != nil {
		return nil, err
	}

	logger.Info("Building galaxy", "cells", cfg.Cells(), "density", cfg.Density)
	start := time.Now()

	coords := cfg.coordinates()
	cells := make([]*starsystem.StarSystem, len(coords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.defaults.Workers)

	for i, c := range coords {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cells[i] = generateCell(cfg, c)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Warn("Galaxy build interrupted", "error", err)
		return nil, errors.WrapCanceled("galaxy build canceled", err)
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("Galaxy build interrupted", "error", err)
		return nil, errors.WrapCanceled("galaxy build canceled", err)
	}

	systems := make([]*starsystem.StarSystem, 0, len(cells))
	for _, system := range cells {
		if system == nil {
			continue
		}
		if len(systems) < cfg.InitiallyDiscovered {
			system.Discovered = true
		}
		systems = append(systems, system)
	}

	galaxy := newGalaxy(cfg, systems)
	s.registry.Add(galaxy)

	logger.Info("Galaxy built",
		"galaxy_id", galaxy.ID,
		"systems", len(systems),
		"duration", time.Since(start),
	)

	return galaxy, nil
}

// generateCell returns nil for an empty cell.
func generateCell(cfg Config, c starsystem.Coordinate) *starsystem.StarSystem {
	occupancy := random.New(random.CellSeed(cfg.Seed, c.X, c.Y, c.Z, occupancySalt))
	if !random.Chance(occupancy, cfg.Density) {
		return nil
	}

	system := GenerateSystem(cfg.Seed, c)
	return &system
}

// GenerateSystem is the system a galaxy with this seed holds at c, ignoring
// occupancy and discovery.
func GenerateSystem(seed int64, c starsystem.Coordinate) starsystem.StarSystem {
	return starsystem.Generate(random.New(random.CellSeed(seed, c.X, c.Y, c.Z, systemSalt)), c)
}

// GetSystem returns the system for (seed, c) without building a galaxy.
// Cache failures are logged and answered by regenerating.
func (s *Service) GetSystem(ctx context.Context, seed int64, c starsystem.Coordinate) (starsystem.StarSystem, error) {
	logger := s.logger.With("component", "galaxy_service", "operation", "get_system", "seed", seed)
	key := CacheKey(seed, c)

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		logger.Debug("System served from cache", "key", key)
		return *cached, nil
	case stderrors.Is(err, ErrCacheMiss):
	default:
		logger.Warn("Cache read failed, regenerating", "key", key, "error", err)
	}

	if err := ctx.Err(); err != nil {
		return starsystem.StarSystem{}, errors.WrapCanceled("system lookup canceled", err)
	}

	system := GenerateSystem(seed, c)
	if err := s.cache.Set(ctx, key, system); err != nil {
		logger.Warn("Cache write failed", "key", key, "error", err)
	}

	return system, nil
}

func (s *Service) GetGalaxy(id uuid.UUID) (*Galaxy, error) {
	return s.registry.Get(id)
}

func (s *Service) ListGalaxies() []Summary {
	galaxies := s.registry.List()
	summaries := make([]Summary, 0, len(galaxies))
	for _, g := range galaxies {
		summaries = append(summaries, g.Summary())
	}
	return summaries
}
