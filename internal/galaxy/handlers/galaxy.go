package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"starsystem-server/internal/galaxy"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
	"starsystem-server/internal/starsystem"
)

type GalaxyHandler struct {
	service *galaxy.Service
}

func NewGalaxyHandler(service *galaxy.Service) *GalaxyHandler {
	return &GalaxyHandler{service: service}
}

// Galaxies serves the collection: GET lists summaries, POST builds a new
// galaxy from the configured defaults overlaid with the request body.
func (h *GalaxyHandler) Galaxies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		response.Success(w, http.StatusOK, h.service.ListGalaxies())
	case http.MethodPost:
		h.createGalaxy(w, r)
	default:
		logger := slog.With("handler", "galaxies")
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

func (h *GalaxyHandler) createGalaxy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "create_galaxy")

	cfg, err := h.service.DefaultConfig()
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	// an empty body builds with the defaults
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	created, err := h.service.BuildGalaxy(ctx, cfg)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, created.Summary())
}

func (h *GalaxyHandler) GetGalaxy(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_galaxy")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	g, err := h.galaxyFromPath(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, g.Summary())
}

func (h *GalaxyHandler) GetSystems(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_galaxy_systems")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	g, err := h.galaxyFromPath(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, g.Systems())
}

func (h *GalaxyHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_galaxy_system")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	g, err := h.galaxyFromPath(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	coord, err := coordinateFromPath(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	system, err := g.System(coord)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, system)
}

func (h *GalaxyHandler) DiscoverSystem(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "discover_system")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	g, err := h.galaxyFromPath(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	coord, err := coordinateFromPath(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	system, err := g.Discover(coord)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("System discovered", "galaxy_id", g.ID, "system_id", system.ID)
	response.Success(w, http.StatusOK, system)
}

func (h *GalaxyHandler) DiscoverPlanet(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "discover_planet")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	g, err := h.galaxyFromPath(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	coord, err := coordinateFromPath(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	planet, err := g.DiscoverPlanet(coord, r.PathValue("planet"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Planet discovered", "galaxy_id", g.ID, "planet_id", planet.ID)
	response.Success(w, http.StatusOK, planet)
}

func (h *GalaxyHandler) galaxyFromPath(r *http.Request) (*galaxy.Galaxy, error) {
	idStr := r.PathValue("id")
	if idStr == "" {
		return nil, errors.Validation("galaxy ID is required")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, errors.WrapValidation("invalid galaxy ID format", err)
	}

	return h.service.GetGalaxy(id)
}

func coordinateFromPath(r *http.Request) (starsystem.Coordinate, error) {
	var values [3]int
	for i, name := range []string{"x", "y", "z"} {
		v, err := strconv.Atoi(r.PathValue(name))
		if err != nil {
			return starsystem.Coordinate{}, errors.WrapValidation("invalid "+name+" coordinate", err)
		}
		values[i] = v
	}
	return starsystem.Coordinate{X: values[0], Y: values[1], Z: values[2]}, nil
}
