package route

import (
	"time"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	"github.com/google/uuid"
)

// SavedRoute is the aggregate root for the route history: an OptimizedRoute
// plus a snapshot of the visited places and the metadata needed to display
// and deduplicate it. Instances are immutable after creation; removal is the
// only mutation the history allows.
type SavedRoute struct {
	id               uuid.UUID
	places           []place.Place
	optimized        *OptimizedRoute
	profile          TransportProfile
	originLabel      string
	destinationLabel string
	savedAt          time.Time
	contentHash      string
}

// NewSavedRoute assembles a SavedRoute from pipeline output. The content
// hash is computed here so every construction path produces the same key
// for the same places and visiting order.
func NewSavedRoute(
	places []place.Place,
	optimized *OptimizedRoute,
	profile TransportProfile,
	originLabel string,
	destinationLabel string,
) *SavedRoute {
	return &SavedRoute{
		id:               uuid.New(),
		places:           places,
		optimized:        optimized,
		profile:          profile,
		originLabel:      labelOrDefault(originLabel),
		destinationLabel: labelOrDefault(destinationLabel),
		savedAt:          time.Now().UTC(),
		contentHash:      ContentHash(places, optimized.VisitOrder()),
	}
}

// ReconstructSavedRoute rebuilds a SavedRoute from persistence data. The
// stored hash is trusted; it is not recomputed.
func ReconstructSavedRoute(
	id uuid.UUID,
	places []place.Place,
	optimized *OptimizedRoute,
	profile TransportProfile,
	originLabel string,
	destinationLabel string,
	savedAt time.Time,
	contentHash string,
) *SavedRoute {
	return &SavedRoute{
		id:               id,
		places:           places,
		optimized:        optimized,
		profile:          profile,
		originLabel:      originLabel,
		destinationLabel: destinationLabel,
		savedAt:          savedAt,
		contentHash:      contentHash,
	}
}

// ID returns the saved route's unique identifier.
func (s *SavedRoute) ID() uuid.UUID { return s.id }

// Places returns the snapshot of visited places.
func (s *SavedRoute) Places() []place.Place { return s.places }

// Optimized returns the underlying optimized route.
func (s *SavedRoute) Optimized() *OptimizedRoute { return s.optimized }

// Profile returns the transport profile the route was planned with.
func (s *SavedRoute) Profile() TransportProfile { return s.profile }

// OriginLabel returns the free-text origin the user entered.
func (s *SavedRoute) OriginLabel() string { return s.originLabel }

// DestinationLabel returns the free-text destination the user entered.
func (s *SavedRoute) DestinationLabel() string { return s.destinationLabel }

// SavedAt returns the save timestamp.
func (s *SavedRoute) SavedAt() time.Time { return s.savedAt }

// ContentHash returns the deduplication key.
func (s *SavedRoute) ContentHash() string { return s.contentHash }

func labelOrDefault(label string) string {
	if label == "" {
		return "not specified"
	}
	return label
}
