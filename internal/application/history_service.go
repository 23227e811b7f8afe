package application

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	routeDomain "github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/events"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaveRouteRequest carries a previously planned route back for storage. The
// fields mirror PlannedRouteDTO so a client can post the plan response
// unchanged.
type SaveRouteRequest struct {
	Places       []place.Place             `json:"places" binding:"required"`
	Coords       []routeDomain.Coordinate  `json:"coords" binding:"required"`
	Instructions []routeDomain.Instruction `json:"instructions"`
	PathGeometry json.RawMessage           `json:"path_geometry"`
	Origin       string                    `json:"origin"`
	Destination  string                    `json:"destination"`
	Profile      string                    `json:"profile" binding:"required"`
	DistanceKm   float64                   `json:"distance_km"`
	DurationMin  float64                   `json:"duration_min"`
}

// SavedRouteDTO is the wire representation of a saved route.
type SavedRouteDTO struct {
	ID           uuid.UUID                 `json:"id"`
	Places       []place.Place             `json:"places"`
	Coords       []routeDomain.Coordinate  `json:"coords"`
	Instructions []routeDomain.Instruction `json:"instructions"`
	PathGeometry json.RawMessage           `json:"path_geometry"`
	SavedAt      time.Time                 `json:"saved_at"`
	Origin       string                    `json:"origin"`
	Destination  string                    `json:"destination"`
	Profile      string                    `json:"profile"`
	ProfileLabel string                    `json:"profile_label"`
	DistanceKm   float64                   `json:"distance_km"`
	DurationMin  float64                   `json:"duration_min"`
	Hash         string                    `json:"hash"`
}

// SaveRouteResult is the outcome of a save: the stored (or already stored)
// route and whether it was a duplicate. A duplicate is informational, not an
// error.
type SaveRouteResult struct {
	Route     *SavedRouteDTO `json:"route,omitempty"`
	Duplicate bool           `json:"duplicate"`
}

// HistoryService manages the saved-route history.
type HistoryService struct {
	repo     routeDomain.HistoryRepository
	producer EventPublisher
	logger   *zap.Logger
}

// NewHistoryService creates a new HistoryService. producer may be nil when
// event publishing is disabled.
func NewHistoryService(repo routeDomain.HistoryRepository, producer EventPublisher, logger *zap.Logger) *HistoryService {
	return &HistoryService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// SaveRoute stores a planned route in the history. Saving the same route
// twice yields a duplicate outcome and leaves the history unchanged.
func (s *HistoryService) SaveRoute(ctx context.Context, req SaveRouteRequest) (*SaveRouteResult, error) {
	profile, err := routeDomain.ParseTransportProfile(req.Profile)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	optimized, err := routeDomain.NewOptimizedRoute(
		req.Coords,
		req.PathGeometry,
		req.Instructions,
		req.DistanceKm*1000,
		req.DurationMin*60,
	)
	if err != nil {
		return nil, err
	}

	saved := routeDomain.NewSavedRoute(req.Places, optimized, profile, req.Origin, req.Destination)

	if err := s.repo.Save(ctx, saved); err != nil {
		if errors.Is(err, domain.ErrDuplicateRoute) {
			s.logger.Info("route already in history", zap.String("hash", saved.ContentHash()))
			return &SaveRouteResult{Duplicate: true}, nil
		}
		return nil, err
	}

	s.publishRouteSaved(ctx, saved)

	dto := toSavedRouteDTO(saved)
	return &SaveRouteResult{Route: &dto}, nil
}

// GetRoute retrieves a single saved route.
func (s *HistoryService) GetRoute(ctx context.Context, id uuid.UUID) (*SavedRouteDTO, error) {
	saved, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toSavedRouteDTO(saved)
	return &dto, nil
}

// ListRoutes retrieves the history newest first, with pagination.
func (s *HistoryService) ListRoutes(ctx context.Context, page, limit int) (*domain.PaginatedResult[SavedRouteDTO], error) {
	routes, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]SavedRouteDTO, len(routes))
	for i, saved := range routes {
		dtos[i] = toSavedRouteDTO(saved)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

// DeleteRoute removes a single saved route.
func (s *HistoryService) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvent(ctx, events.RouteDeleted, events.RouteDeletedEvent{
		RouteID:    id,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// ClearHistory removes all saved routes.
func (s *HistoryService) ClearHistory(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// --- Helpers ---

func toSavedRouteDTO(saved *routeDomain.SavedRoute) SavedRouteDTO {
	optimized := saved.Optimized()
	return SavedRouteDTO{
		ID:           saved.ID(),
		Places:       saved.Places(),
		Coords:       optimized.VisitOrder(),
		Instructions: optimized.Instructions(),
		PathGeometry: optimized.PathGeometry(),
		SavedAt:      saved.SavedAt(),
		Origin:       saved.OriginLabel(),
		Destination:  saved.DestinationLabel(),
		Profile:      saved.Profile().String(),
		ProfileLabel: saved.Profile().Label(),
		DistanceKm:   optimized.DistanceKm(),
		DurationMin:  optimized.DurationMin(),
		Hash:         saved.ContentHash(),
	}
}

func (s *HistoryService) publishRouteSaved(ctx context.Context, saved *routeDomain.SavedRoute) {
	s.publishEvent(ctx, events.RouteSaved, events.RouteSavedEvent{
		RouteID:     saved.ID(),
		ContentHash: saved.ContentHash(),
		Origin:      saved.OriginLabel(),
		Destination: saved.DestinationLabel(),
		PlaceCount:  len(saved.Places()),
		OccurredAt:  time.Now().UTC(),
	})
}

func (s *HistoryService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.producer == nil {
		return
	}
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := s.producer.PublishEvent(ctx, events.TopicRouteEvents, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
