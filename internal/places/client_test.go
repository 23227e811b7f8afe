package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/places/search", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "2025-06-17", r.Header.Get("X-Places-Api-Version"))
		assert.Equal(t, "ramen", r.URL.Query().Get("query"))
		assert.Equal(t, "3000", r.URL.Query().Get("radius"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		// ll is latitude,longitude.
		assert.Equal(t, "52.237000,21.017500", r.URL.Query().Get("ll"))

		_, _ = w.Write([]byte(`{"results":[
			{
				"fsq_place_id":"abc123",
				"name":"Ramen House",
				"location":{"formatted_address":"Main St 1, Warsaw"},
				"categories":[{"name":""},{"name":"Ramen Restaurant"}],
				"latitude":52.24,
				"longitude":21.02,
				"tel":"+48 123 456 789",
				"website":""
			},
			{
				"fsq_place_id":"def456",
				"name":"Noodle Bar",
				"location":{},
				"categories":[],
				"latitude":52.25,
				"longitude":21.03
			}
		]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "test-key", "2025-06-17", 50, zap.NewNop())
	results, err := client.Search(context.Background(), "ramen", 3000, route.Coordinate{Lng: 21.0175, Lat: 52.237})
	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "abc123", first.ID)
	assert.Equal(t, "Ramen House", first.Name)
	assert.Equal(t, "Main St 1, Warsaw", first.Address)
	// The first non-empty category wins.
	assert.Equal(t, "Ramen Restaurant", first.Category)
	assert.Equal(t, 52.24, first.Lat)
	assert.Equal(t, 21.02, first.Lng)
	assert.Equal(t, "+48 123 456 789", first.Phone)
	assert.Equal(t, place.NotAvailable, first.Website)

	second := results[1]
	assert.Equal(t, place.NotAvailable, second.Address)
	assert.Equal(t, place.NotAvailable, second.Category)
	assert.Equal(t, place.NotAvailable, second.Phone)
}

func TestSearch_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid key"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, "bad-key", "2025-06-17", 50, zap.NewNop())
	_, err := client.Search(context.Background(), "ramen", 3000, route.Coordinate{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
