package galaxy

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"starsystem-server/internal/shared/errors"
)

// Registry keeps built galaxies in memory. Once capacity is reached the
// oldest galaxy is dropped to make room.
type Registry struct {
	mu       sync.RWMutex
	galaxies map[uuid.UUID]*Galaxy
	order    []uuid.UUID
	capacity int
}

func NewRegistry(capacity int) *Registry {
	return &Registry{
		galaxies: make(map[uuid.UUID]*Galaxy),
		capacity: capacity,
	}
}

func (r *Registry) Add(g *Galaxy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.capacity > 0 && len(r.order) >= r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.galaxies, oldest)
		slog.With("component", "galaxy_registry", "operation", "add").
			Info("Registry full, dropped oldest galaxy", "galaxy_id", oldest)
	}

	r.galaxies[g.ID] = g
	r.order = append(r.order, g.ID)
}

func (r *Registry) Get(id uuid.UUID) (*Galaxy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.galaxies[id]
	if !ok {
		return nil, errors.NotFoundf("galaxy %s not found", id)
	}
	return g, nil
}

// List returns galaxies oldest first.
func (r *Registry) List() []*Galaxy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Galaxy, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.galaxies[id])
	}
	return out
}
