package route

import (
	"context"

	"github.com/google/uuid"
)

// HistoryRepository defines the persistence contract for the route history.
// Save must reject an insert whose content hash already exists with
// domain.ErrDuplicateRoute; callers report this as an informational outcome,
// never as a failure.
type HistoryRepository interface {
	// Save persists a new route, deduplicating by content hash.
	Save(ctx context.Context, route *SavedRoute) error

	// FindByID retrieves a saved route by its identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*SavedRoute, error)

	// List retrieves saved routes with pagination, newest first.
	List(ctx context.Context, page, limit int) ([]*SavedRoute, int64, error)

	// Delete removes a single saved route.
	Delete(ctx context.Context, id uuid.UUID) error

	// Clear removes the whole history.
	Clear(ctx context.Context) error
}
