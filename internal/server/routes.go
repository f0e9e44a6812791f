package server

import (
	"log/slog"
	"net/http"

	"starsystem-server/internal/galaxy"
	galaxyHandlers "starsystem-server/internal/galaxy/handlers"
	serverHandlers "starsystem-server/internal/server/handlers"
)

type Routes struct {
	galaxyService *galaxy.Service
	cacheStatus   serverHandlers.CacheStatus
	logger        *slog.Logger
}

func NewRoutes(galaxyService *galaxy.Service, cacheStatus serverHandlers.CacheStatus, logger *slog.Logger) *Routes {
	return &Routes{
		galaxyService: galaxyService,
		cacheStatus:   cacheStatus,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.cacheStatus)
	systemHandler := galaxyHandlers.NewSystemHandler(r.galaxyService)
	galaxyHandler := galaxyHandlers.NewGalaxyHandler(r.galaxyService)

	mux.Handle("/api/server/health", healthHandler)

	// Stateless generation
	mux.Handle("/api/systems/{x}/{y}/{z}", systemHandler)

	// Galaxies
	mux.HandleFunc("/api/galaxies", galaxyHandler.Galaxies)
	mux.HandleFunc("/api/galaxies/{id}", galaxyHandler.GetGalaxy)
	mux.HandleFunc("/api/galaxies/{id}/systems", galaxyHandler.GetSystems)
	mux.HandleFunc("/api/galaxies/{id}/systems/{x}/{y}/{z}", galaxyHandler.GetSystem)
	mux.HandleFunc("/api/galaxies/{id}/systems/{x}/{y}/{z}/discover", galaxyHandler.DiscoverSystem)
	mux.HandleFunc("/api/galaxies/{id}/systems/{x}/{y}/{z}/planets/{planet}/discover", galaxyHandler.DiscoverPlanet)

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/systems/{x}/{y}/{z}"},
		"galaxy_endpoints", []string{
			"/api/galaxies",
			"/api/galaxies/{id}",
			"/api/galaxies/{id}/systems",
			"/api/galaxies/{id}/systems/{x}/{y}/{z}",
			"/api/galaxies/{id}/systems/{x}/{y}/{z}/discover",
			"/api/galaxies/{id}/systems/{x}/{y}/{z}/planets/{planet}/discover",
		},
	)

	return mux
}
