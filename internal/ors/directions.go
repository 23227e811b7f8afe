package ors

import (
	"context"
	"encoding/json"
	"math"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"go.uber.org/zap"
)

// PathResult is the rendered path for an already-fixed visiting order: the
// raw GeoJSON document, the flattened instructions, and the summary totals.
type PathResult struct {
	Geometry        json.RawMessage
	Instructions    []route.Instruction
	DistanceMeters  float64
	DurationSeconds float64
}

type directionsRequest struct {
	Coordinates  [][2]float64 `json:"coordinates"`
	Instructions bool         `json:"instructions"`
}

type directionsStep struct {
	Distance    float64 `json:"distance"`
	Instruction string  `json:"instruction"`
}

type directionsSegment struct {
	Distance float64          `json:"distance"`
	Duration float64          `json:"duration"`
	Steps    []directionsStep `json:"steps"`
}

type directionsSummary struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

type directionsProperties struct {
	Segments []directionsSegment `json:"segments"`
	Summary  directionsSummary   `json:"summary"`
}

type directionsFeature struct {
	Properties directionsProperties `json:"properties"`
}

type directionsResponse struct {
	Features []directionsFeature `json:"features"`
}

// Directions renders the path through the ordered coordinates for the given
// profile. It never re-orders points. Instructions are flattened across all
// legs in traversal order, 1-indexed, with distances rounded to whole
// meters. Backend failures are render-stage failures, distinct from
// optimization failures so the caller can tell which stage broke.
func (c *Client) Directions(
	ctx context.Context,
	coords []route.Coordinate,
	profile route.TransportProfile,
) (*PathResult, error) {
	if len(coords) < 2 {
		return nil, route.ErrInsufficientPoints
	}

	pairs := make([][2]float64, len(coords))
	for i, coord := range coords {
		pairs[i] = [2]float64{coord.Lng, coord.Lat}
	}

	var raw json.RawMessage
	err := c.postJSON(ctx, "/v2/directions/"+profile.String()+"/geojson", directionsRequest{
		Coordinates:  pairs,
		Instructions: true,
	}, &raw)
	if err != nil {
		c.logger.Error("directions request failed", zap.Error(err))
		return nil, domain.NewRenderError("directions backend request failed", err)
	}

	var parsed directionsResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, domain.NewRenderError("directions backend returned malformed geometry", err)
	}
	if len(parsed.Features) == 0 {
		return nil, domain.NewRenderError("directions backend returned no route features", nil)
	}

	result := &PathResult{Geometry: raw}
	position := 0
	for _, feature := range parsed.Features {
		for _, segment := range feature.Properties.Segments {
			for _, step := range segment.Steps {
				position++
				result.Instructions = append(result.Instructions, route.Instruction{
					Position:       position,
					Text:           step.Instruction,
					DistanceMeters: int(math.Round(step.Distance)),
				})
			}
		}
		result.DistanceMeters += feature.Properties.Summary.Distance
		result.DurationSeconds += feature.Properties.Summary.Duration
	}

	return result, nil
}
