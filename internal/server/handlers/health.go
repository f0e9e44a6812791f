package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"starsystem-server/internal/shared/response"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Cache     string `json:"cache"`
}

// CacheStatus reports the state of the system cache backend.
type CacheStatus interface {
	Status(ctx context.Context) string
}

type HealthHandler struct {
	cache CacheStatus
}

func NewHealthHandler(cache CacheStatus) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	cacheStatus := h.cache.Status(ctx)
	if cacheStatus == "disconnected" {
		logger.Warn("Cache backend unreachable, serving without it")
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Cache:     cacheStatus,
	}

	response.Success(w, http.StatusOK, resp)
}
