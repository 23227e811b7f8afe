// Package places discovers points of interest through the Foursquare Places
// API and validates their relevance with an LLM-backed predicate.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"go.uber.org/zap"
)

// Client is a Foursquare place-search client.
type Client struct {
	baseURL    string
	apiKey     string
	apiVersion string
	limit      int
	http       *http.Client
	logger     *zap.Logger
}

// NewClient creates a place discovery client.
func NewClient(baseURL, apiKey, apiVersion string, limit int, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiVersion: apiVersion,
		limit:      limit,
		http:       &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

type searchCategory struct {
	Name string `json:"name"`
}

type searchLocation struct {
	FormattedAddress string `json:"formatted_address"`
}

type searchResult struct {
	FsqPlaceID string           `json:"fsq_place_id"`
	Name       string           `json:"name"`
	Location   searchLocation   `json:"location"`
	Categories []searchCategory `json:"categories"`
	Latitude   float64          `json:"latitude"`
	Longitude  float64          `json:"longitude"`
	Tel        string           `json:"tel"`
	Website    string           `json:"website"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// Search returns candidate places matching the query within radiusMeters of
// the center. Results are unvalidated; relevance filtering happens upstream.
func (c *Client) Search(ctx context.Context, query string, radiusMeters int, center route.Coordinate) ([]place.Place, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("ll", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("limit", strconv.Itoa(c.limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build place search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Places-Api-Version", c.apiVersion)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("place search returned status %d: %s", resp.StatusCode, string(detail))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode place search response: %w", err)
	}

	results := make([]place.Place, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		category := place.NotAvailable
		for _, cat := range r.Categories {
			if cat.Name != "" {
				category = cat.Name
				break
			}
		}
		results = append(results, place.Place{
			ID:       place.Normalize(r.FsqPlaceID),
			Name:     place.Normalize(r.Name),
			Address:  place.Normalize(r.Location.FormattedAddress),
			Category: category,
			Lat:      r.Latitude,
			Lng:      r.Longitude,
			Phone:    place.Normalize(r.Tel),
			Website:  place.Normalize(r.Website),
		})
	}

	c.logger.Debug("place search completed",
		zap.String("query", query),
		zap.Int("candidates", len(results)),
	)
	return results, nil
}
