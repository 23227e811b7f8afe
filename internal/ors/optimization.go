package ors

import (
	"context"
	"fmt"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"go.uber.org/zap"
)

// optimizationJob is one stop submitted to the Vroom solver. Job ids are
// 1-based; Optimize keeps the id-to-index mapping so the solver's answer can
// be translated back to the caller's stop slice.
type optimizationJob struct {
	ID       int        `json:"id"`
	Location [2]float64 `json:"location"` // [lng, lat]
}

// optimizationVehicle is the single vehicle of the assignment problem. It
// originates at Start and, when End is set, must terminate there.
type optimizationVehicle struct {
	ID      int         `json:"id"`
	Profile string      `json:"profile"`
	Start   [2]float64  `json:"start"`
	End     *[2]float64 `json:"end,omitempty"`
}

type optimizationRequest struct {
	Jobs     []optimizationJob     `json:"jobs"`
	Vehicles []optimizationVehicle `json:"vehicles"`
}

// optimizationStep is one step of the solver's route. Synthetic "start" and
// "end" steps carry no job reference; only "job" steps name a stop.
type optimizationStep struct {
	Type string `json:"type"`
	Job  int    `json:"job,omitempty"`
}

type optimizationRoute struct {
	Steps []optimizationStep `json:"steps"`
}

type optimizationResponse struct {
	Code   int                 `json:"code"`
	Routes []optimizationRoute `json:"routes"`
}

// Optimize computes the visiting order that minimizes total travel cost for
// the given profile. It returns 0-based indices into stops, in visit order.
// Every backend inconsistency (no route, no job steps, a job id outside the
// submitted task list) is reported as an optimization-stage failure.
func (c *Client) Optimize(
	ctx context.Context,
	stops []route.Coordinate,
	start route.Coordinate,
	end *route.Coordinate,
	profile route.TransportProfile,
) ([]int, error) {
	if len(stops) < 1 {
		return nil, route.ErrInsufficientStops
	}

	jobs := make([]optimizationJob, len(stops))
	for i, stop := range stops {
		jobs[i] = optimizationJob{
			ID:       i + 1,
			Location: [2]float64{stop.Lng, stop.Lat},
		}
	}

	vehicle := optimizationVehicle{
		ID:      1,
		Profile: profile.String(),
		Start:   [2]float64{start.Lng, start.Lat},
	}
	if end != nil {
		vehicle.End = &[2]float64{end.Lng, end.Lat}
	}

	var result optimizationResponse
	err := c.postJSON(ctx, "/optimization", optimizationRequest{
		Jobs:     jobs,
		Vehicles: []optimizationVehicle{vehicle},
	}, &result)
	if err != nil {
		c.logger.Error("optimization request failed", zap.Error(err))
		return nil, domain.NewOptimizationError("optimization backend request failed", err)
	}

	if len(result.Routes) == 0 {
		return nil, domain.NewOptimizationError("optimization backend returned no routes", nil)
	}

	order := make([]int, 0, len(stops))
	visited := make(map[int]bool, len(stops))
	for _, step := range result.Routes[0].Steps {
		if step.Type != "job" {
			continue
		}
		if step.Job < 1 || step.Job > len(stops) {
			return nil, domain.NewOptimizationError(
				fmt.Sprintf("optimization backend referenced unknown job %d", step.Job), nil)
		}
		if visited[step.Job] {
			return nil, domain.NewOptimizationError(
				fmt.Sprintf("optimization backend repeated job %d", step.Job), nil)
		}
		visited[step.Job] = true
		order = append(order, step.Job-1)
	}

	// The solver reports unreachable stops as unassigned with code 0 and a
	// partial route; a route that skips a requested stop is not an answer.
	if len(order) != len(stops) {
		return nil, domain.NewOptimizationError(
			fmt.Sprintf("optimization backend assigned %d of %d stops", len(order), len(stops)), nil)
	}

	return order, nil
}
