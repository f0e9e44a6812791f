package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"starsystem-server/internal/galaxy"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
)

// SystemHandler generates single systems on demand, without a galaxy.
type SystemHandler struct {
	service *galaxy.Service
}

func NewSystemHandler(service *galaxy.Service) *SystemHandler {
	return &SystemHandler{service: service}
}

func (h *SystemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_system")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	seedStr := r.URL.Query().Get("seed")
	if seedStr == "" {
		response.Error(w, r, logger, errors.Validation("seed query parameter is required"))
		return
	}

	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid seed format", err))
		return
	}

	coord, err := coordinateFromPath(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	system, err := h.service.GetSystem(ctx, seed, coord)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, system)
}
