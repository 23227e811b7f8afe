// Package geocode resolves free-text addresses to coordinates using the
// Nominatim (OpenStreetMap) search API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"go.uber.org/zap"
)

// Client is a Nominatim geocoding client. It returns the single best match
// for an address; a miss is a normal outcome, not a failure.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    *zap.Logger
}

// NewClient creates a geocoding client. Nominatim's usage policy requires an
// identifying User-Agent.
func NewClient(baseURL, userAgent string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      &http.Client{Timeout: 15 * time.Second},
		logger:    logger,
	}
}

// nominatimResult is one entry of the Nominatim search response. Coordinates
// arrive as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Resolve returns the best-match coordinate for the given address text.
// Empty input is a validation error; no match or a transport failure is a
// not-found outcome the caller should surface as a correctable condition.
func (c *Client) Resolve(ctx context.Context, address string) (route.Coordinate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return route.Coordinate{}, domain.NewValidationError("address must not be empty")
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return route.Coordinate{}, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("geocoding request failed", zap.String("address", address), zap.Error(err))
		return route.Coordinate{}, domain.NewNotFoundError("coordinates", address)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("geocoding returned non-200 status",
			zap.String("address", address),
			zap.Int("status", resp.StatusCode),
		)
		return route.Coordinate{}, domain.NewNotFoundError("coordinates", address)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Warn("failed to decode geocoding response", zap.String("address", address), zap.Error(err))
		return route.Coordinate{}, domain.NewNotFoundError("coordinates", address)
	}
	if len(results) == 0 {
		return route.Coordinate{}, domain.NewNotFoundError("coordinates", address)
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		c.logger.Warn("geocoding returned unparsable coordinates",
			zap.String("address", address),
			zap.String("lat", results[0].Lat),
			zap.String("lon", results[0].Lon),
		)
		return route.Coordinate{}, domain.NewNotFoundError("coordinates", address)
	}

	return route.Coordinate{Lng: lng, Lat: lat}, nil
}
