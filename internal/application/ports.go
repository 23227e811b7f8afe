package application

import (
	"context"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/kafka"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/ors"
)

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (route.Coordinate, error)
}

// Optimizer computes the cost-minimizing visiting order for a set of stops.
type Optimizer interface {
	Optimize(ctx context.Context, stops []route.Coordinate, start route.Coordinate, end *route.Coordinate, profile route.TransportProfile) ([]int, error)
}

// PathRenderer renders the detailed path through an already-ordered
// coordinate sequence.
type PathRenderer interface {
	Directions(ctx context.Context, coords []route.Coordinate, profile route.TransportProfile) (*ors.PathResult, error)
}

// PlaceSearcher returns candidate places for a category query around a
// center coordinate.
type PlaceSearcher interface {
	Search(ctx context.Context, query string, radiusMeters int, center route.Coordinate) ([]place.Place, error)
}

// RelevancePredicate judges whether a candidate place matches the query.
type RelevancePredicate interface {
	Matches(ctx context.Context, name, category, query string) (bool, error)
}

// EventPublisher publishes CloudEvents. Publishing is fire-and-forget
// everywhere in this service; failures are logged, never surfaced.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// Assistant answers free-text questions given a system context and prior
// conversation turns.
type Assistant interface {
	Answer(ctx context.Context, system string, messages []ChatMessage) (string, error)
}

// ChatMessage is one turn of the route chat. Role is "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}
