package repository

import (
	"context"
	"sync"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	routeDomain "github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/google/uuid"
)

// MemoryHistoryRepository is a session-scoped, in-memory implementation of
// route.HistoryRepository. It holds the same dedup-by-hash contract as the
// database-backed store and is the default when no database is configured.
type MemoryHistoryRepository struct {
	mu     sync.Mutex
	routes []*routeDomain.SavedRoute
}

// NewMemoryHistoryRepository creates an empty in-memory history.
func NewMemoryHistoryRepository() *MemoryHistoryRepository {
	return &MemoryHistoryRepository{}
}

// Save appends a route, rejecting content-hash duplicates.
func (r *MemoryHistoryRepository) Save(_ context.Context, saved *routeDomain.SavedRoute) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.routes {
		if existing.ContentHash() == saved.ContentHash() {
			return domain.ErrDuplicateRoute
		}
	}
	r.routes = append(r.routes, saved)
	return nil
}

// FindByID retrieves a saved route by its identifier.
func (r *MemoryHistoryRepository) FindByID(_ context.Context, id uuid.UUID) (*routeDomain.SavedRoute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.routes {
		if existing.ID() == id {
			return existing, nil
		}
	}
	return nil, domain.NewNotFoundError("route", id.String())
}

// List returns saved routes newest first, with pagination.
func (r *MemoryHistoryRepository) List(_ context.Context, page, limit int) ([]*routeDomain.SavedRoute, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := int64(len(r.routes))

	// Newest first: walk the append-ordered slice backwards.
	start := (page - 1) * limit
	result := make([]*routeDomain.SavedRoute, 0, limit)
	for i := len(r.routes) - 1 - start; i >= 0 && len(result) < limit; i-- {
		result = append(result, r.routes[i])
	}
	return result, total, nil
}

// Delete removes a single saved route.
func (r *MemoryHistoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.routes {
		if existing.ID() == id {
			r.routes = append(r.routes[:i], r.routes[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("route", id.String())
}

// Clear removes the whole history.
func (r *MemoryHistoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = nil
	return nil
}
