package application

import (
	"context"
	"testing"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearchPlaces_FiltersThroughPredicate(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]route.Coordinate{
		"Warsaw": {Lng: 21.0, Lat: 52.2},
	}}
	searcher := &fakeSearcher{results: []place.Place{
		{ID: "a", Name: "Ramen House", Category: "Ramen Restaurant"},
		{ID: "b", Name: "Pizza Corner", Category: "Pizzeria"},
		{ID: "c", Name: "Noodle Bar", Category: "Asian Restaurant"},
	}}
	predicate := &fakePredicate{
		verdicts: map[string]bool{"Ramen House": true, "Pizza Corner": false, "Noodle Bar": true},
		// An unavailable judgement drops only that candidate.
		failFor: map[string]bool{"Noodle Bar": true},
	}

	svc := NewDiscoveryService(geocoder, searcher, predicate, zap.NewNop())

	results, err := svc.SearchPlaces(context.Background(), SearchPlacesRequest{
		Query:    "ramen",
		Address:  "Warsaw",
		RadiusKm: 3,
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Ramen House", results[0].Name)

	assert.Equal(t, "ramen", searcher.gotQuery)
	assert.Equal(t, 3000, searcher.gotRadius)
}

func TestSearchPlaces_Validation(t *testing.T) {
	svc := NewDiscoveryService(&fakeGeocoder{}, &fakeSearcher{}, &fakePredicate{}, zap.NewNop())

	_, err := svc.SearchPlaces(context.Background(), SearchPlacesRequest{Query: " ", Address: "Warsaw", RadiusKm: 3})
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))

	_, err = svc.SearchPlaces(context.Background(), SearchPlacesRequest{Query: "ramen", Address: "Warsaw", RadiusKm: 0})
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
}

func TestAddManualPlace(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string]route.Coordinate{
		"Main St 1, Warsaw": {Lng: 21.02, Lat: 52.24},
	}}
	svc := NewDiscoveryService(geocoder, &fakeSearcher{}, &fakePredicate{}, zap.NewNop())

	created, err := svc.AddManualPlace(context.Background(), AddManualPlaceRequest{
		Name:     "Blue Note",
		Address:  "Main St 1, Warsaw",
		Category: "jazz club",
	})
	require.NoError(t, err)

	assert.Equal(t, place.SynthesizeID("Blue Note"), created.ID)
	assert.Equal(t, 52.24, created.Lat)
	assert.Equal(t, 21.02, created.Lng)
	assert.Equal(t, place.NotAvailable, created.Phone)
}
