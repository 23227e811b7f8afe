//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaveRoute_PersistsAndPublishes verifies that saving a route stores it
// in PostgreSQL, that saving the same content again is reported as a
// duplicate without growing the history, and that a route.saved CloudEvent
// lands on route.events.
func TestSaveRoute_PersistsAndPublishes(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	svc, closeProducer := setupHistoryService(t, infra.DB, infra.KafkaBrokers)
	defer closeProducer()

	ctx := context.Background()

	// First save lands in the history.
	first, err := svc.SaveRoute(ctx, sampleSaveRequest("Ramen House"))
	require.NoError(t, err)
	require.False(t, first.Duplicate)
	require.NotNil(t, first.Route)

	// Second save of the same content is a duplicate, not an error.
	second, err := svc.SaveRoute(ctx, sampleSaveRequest("Ramen House"))
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Nil(t, second.Route)

	listed, err := svc.ListRoutes(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), listed.Total)

	// The stored route round-trips through the jsonb columns.
	fetched, err := svc.GetRoute(ctx, first.Route.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Route.Hash, fetched.Hash)
	assert.Equal(t, "Ramen House", fetched.Places[0].Name)
	assert.Len(t, fetched.Coords, 2)
	assert.Equal(t, "car", fetched.ProfileLabel)

	// Exactly one route.saved event went out.
	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicRouteEvents,
		events.RouteSaved, 15*time.Second)

	var saved events.RouteSavedEvent
	require.NoError(t, ce.ParseData(&saved))
	assert.Equal(t, first.Route.ID, saved.RouteID)
	assert.Equal(t, first.Route.Hash, saved.ContentHash)
	assert.Equal(t, 1, saved.PlaceCount)
}

// TestDeleteRoute_RemovesAndPublishes verifies deletion and the
// route.deleted event.
func TestDeleteRoute_RemovesAndPublishes(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	svc, closeProducer := setupHistoryService(t, infra.DB, infra.KafkaBrokers)
	defer closeProducer()

	ctx := context.Background()

	saved, err := svc.SaveRoute(ctx, sampleSaveRequest("Museum"))
	require.NoError(t, err)
	require.NotNil(t, saved.Route)

	require.NoError(t, svc.DeleteRoute(ctx, saved.Route.ID))

	listed, err := svc.ListRoutes(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), listed.Total)

	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicRouteEvents,
		events.RouteDeleted, 15*time.Second)

	var deleted events.RouteDeletedEvent
	require.NoError(t, ce.ParseData(&deleted))
	assert.Equal(t, saved.Route.ID, deleted.RouteID)
}
