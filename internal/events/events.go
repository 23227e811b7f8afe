// Package events defines the route lifecycle events published to Kafka.
package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicRouteEvents carries all route lifecycle events.
const TopicRouteEvents = "route.events"

// Event type identifiers.
const (
	RouteComputed = "route.computed"
	RouteSaved    = "route.saved"
	RouteDeleted  = "route.deleted"
)

// RouteComputedEvent is published after a successful optimizer+renderer run.
type RouteComputedEvent struct {
	Profile         string    `json:"profile"`
	StopCount       int       `json:"stop_count"`
	DistanceMeters  float64   `json:"distance_meters"`
	DurationSeconds float64   `json:"duration_seconds"`
	RoundTrip       bool      `json:"round_trip"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// RouteSavedEvent is published when a route is stored in the history.
type RouteSavedEvent struct {
	RouteID     uuid.UUID `json:"route_id"`
	ContentHash string    `json:"content_hash"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	PlaceCount  int       `json:"place_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RouteDeletedEvent is published when a route is removed from the history.
type RouteDeletedEvent struct {
	RouteID    uuid.UUID `json:"route_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
