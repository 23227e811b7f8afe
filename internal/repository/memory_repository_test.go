package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	routeDomain "github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSavedRoute(t *testing.T, name string) *routeDomain.SavedRoute {
	t.Helper()
	places := []place.Place{{ID: "p-" + name, Name: name, Lat: 52.2, Lng: 21.0}}
	order := []routeDomain.Coordinate{{Lng: 21.0, Lat: 52.0}, {Lng: 21.0, Lat: 52.2}}
	optimized, err := routeDomain.NewOptimizedRoute(order, nil, nil, 1000, 600)
	require.NoError(t, err)
	return routeDomain.NewSavedRoute(places, optimized, routeDomain.ProfileCar, "Warsaw", "")
}

func TestMemoryRepository_SaveAndFind(t *testing.T) {
	repo := NewMemoryHistoryRepository()
	ctx := context.Background()

	saved := newSavedRoute(t, "Cafe")
	require.NoError(t, repo.Save(ctx, saved))

	found, err := repo.FindByID(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, saved.ContentHash(), found.ContentHash())

	_, err = repo.FindByID(ctx, uuid.New())
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestMemoryRepository_RejectsDuplicateHash(t *testing.T) {
	repo := NewMemoryHistoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newSavedRoute(t, "Cafe")))

	// Same content under a fresh id still collides.
	err := repo.Save(ctx, newSavedRoute(t, "Cafe"))
	assert.ErrorIs(t, err, domain.ErrDuplicateRoute)

	_, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestMemoryRepository_ListNewestFirst(t *testing.T) {
	repo := NewMemoryHistoryRepository()
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		saved := newSavedRoute(t, fmt.Sprintf("Stop %d", i))
		require.NoError(t, repo.Save(ctx, saved))
		ids = append(ids, saved.ID())
	}

	first, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, first, 2)
	assert.Equal(t, ids[4], first[0].ID())
	assert.Equal(t, ids[3], first[1].ID())

	second, _, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, ids[2], second[0].ID())
	assert.Equal(t, ids[1], second[1].ID())

	last, _, err := repo.List(ctx, 3, 2)
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, ids[0], last[0].ID())
}

func TestMemoryRepository_DeleteAndClear(t *testing.T) {
	repo := NewMemoryHistoryRepository()
	ctx := context.Background()

	saved := newSavedRoute(t, "Cafe")
	require.NoError(t, repo.Save(ctx, saved))

	require.NoError(t, repo.Delete(ctx, saved.ID()))
	err := repo.Delete(ctx, saved.ID())
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	require.NoError(t, repo.Save(ctx, newSavedRoute(t, "Museum")))
	require.NoError(t, repo.Clear(ctx))

	_, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
