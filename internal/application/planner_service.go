package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	routeDomain "github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/events"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/kafka"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/mapview"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const eventSource = "service-routes"

// PlanRouteRequest holds the data needed to plan an optimized route.
type PlanRouteRequest struct {
	Places      []place.Place `json:"places" binding:"required"`
	Origin      string        `json:"origin" binding:"required"`
	Destination string        `json:"destination"`
	Profile     string        `json:"profile" binding:"required"`
}

// PlannedRouteDTO is the response representation of a planned route. It
// carries everything a later save needs, so planning and saving stay
// separate steps.
type PlannedRouteDTO struct {
	Places       []place.Place             `json:"places"`
	Coords       []routeDomain.Coordinate  `json:"coords"`
	Instructions []routeDomain.Instruction `json:"instructions"`
	PathGeometry json.RawMessage           `json:"path_geometry"`
	Origin       string                    `json:"origin"`
	Destination  string                    `json:"destination"`
	Profile      string                    `json:"profile"`
	ProfileLabel string                    `json:"profile_label"`
	DistanceKm   float64                   `json:"distance_km"`
	DurationMin  float64                   `json:"duration_min"`
	RoundTrip    bool                      `json:"round_trip"`
	Hash         string                    `json:"hash"`
	Map          *mapview.MapDocument      `json:"map"`
}

// PlannerService orchestrates the route construction pipeline: resolve the
// terminals, optimize the visiting order, render the path, then compose the
// map and assemble the record.
type PlannerService struct {
	geocoder  Geocoder
	optimizer Optimizer
	renderer  PathRenderer
	producer  EventPublisher
	logger    *zap.Logger
}

// NewPlannerService creates a new PlannerService. producer may be nil when
// event publishing is disabled.
func NewPlannerService(
	geocoder Geocoder,
	optimizer Optimizer,
	renderer PathRenderer,
	producer EventPublisher,
	logger *zap.Logger,
) *PlannerService {
	return &PlannerService{
		geocoder:  geocoder,
		optimizer: optimizer,
		renderer:  renderer,
		producer:  producer,
		logger:    logger,
	}
}

// PlanRoute runs the full pipeline for the given request. Each stage failure
// carries its own kind so the caller can tell the user which stage broke;
// no partial route is ever returned.
func (s *PlannerService) PlanRoute(ctx context.Context, req PlanRouteRequest) (*PlannedRouteDTO, error) {
	profile, err := routeDomain.ParseTransportProfile(req.Profile)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	start, err := s.geocoder.Resolve(ctx, req.Origin)
	if err != nil {
		return nil, err
	}

	var end *routeDomain.Coordinate
	if req.Destination != "" {
		resolved, err := s.geocoder.Resolve(ctx, req.Destination)
		if err != nil {
			return nil, err
		}
		end = &resolved
	}

	request, err := routeDomain.NewRouteRequest(req.Places, start, end, profile)
	if err != nil {
		return nil, err
	}

	optimized, err := s.buildOptimizedRoute(ctx, request)
	if err != nil {
		return nil, err
	}

	// Map composition and record assembly are independent consumers of the
	// rendered path; run them together.
	var (
		doc  *mapview.MapDocument
		hash string
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var composeErr error
		doc, composeErr = mapview.Compose(optimized.VisitOrder(), optimized.PathGeometry(), request.Stops())
		return composeErr
	})
	g.Go(func() error {
		hash = routeDomain.ContentHash(request.Stops(), optimized.VisitOrder())
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.publishRouteComputed(ctx, request, optimized)

	return &PlannedRouteDTO{
		Places:       request.Stops(),
		Coords:       optimized.VisitOrder(),
		Instructions: optimized.Instructions(),
		PathGeometry: optimized.PathGeometry(),
		Origin:       req.Origin,
		Destination:  req.Destination,
		Profile:      profile.String(),
		ProfileLabel: profile.Label(),
		DistanceKm:   optimized.DistanceKm(),
		DurationMin:  optimized.DurationMin(),
		RoundTrip:    request.IsRoundTrip(),
		Hash:         hash,
		Map:          doc,
	}, nil
}

// buildOptimizedRoute runs the two backend stages: visit-order optimization
// and path rendering.
func (s *PlannerService) buildOptimizedRoute(ctx context.Context, request *routeDomain.RouteRequest) (*routeDomain.OptimizedRoute, error) {
	stops := request.StopCoordinates()

	order, err := s.optimizer.Optimize(ctx, stops, request.Start(), request.End(), request.Profile())
	if err != nil {
		return nil, err
	}

	// Rebuild the full sequence: start, stops in solver order, fixed end.
	ordered := make([]routeDomain.Coordinate, 0, len(order)+2)
	ordered = append(ordered, request.Start())
	for _, idx := range order {
		ordered = append(ordered, stops[idx])
	}
	if request.End() != nil {
		ordered = append(ordered, *request.End())
	}

	path, err := s.renderer.Directions(ctx, ordered, request.Profile())
	if err != nil {
		return nil, err
	}

	return routeDomain.NewOptimizedRoute(
		ordered,
		path.Geometry,
		path.Instructions,
		path.DistanceMeters,
		path.DurationSeconds,
	)
}

func (s *PlannerService) publishRouteComputed(ctx context.Context, request *routeDomain.RouteRequest, optimized *routeDomain.OptimizedRoute) {
	if s.producer == nil {
		return
	}
	evt := events.RouteComputedEvent{
		Profile:         request.Profile().String(),
		StopCount:       len(request.Stops()),
		DistanceMeters:  optimized.TotalDistanceMeters(),
		DurationSeconds: optimized.TotalDurationSeconds(),
		RoundTrip:       request.IsRoundTrip(),
		OccurredAt:      time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicRouteEvents, events.RouteComputed, evt)
}

func (s *PlannerService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := s.producer.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
