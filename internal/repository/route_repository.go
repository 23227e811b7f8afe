package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	routeDomain "github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteModel is the GORM model for the saved_routes table. The unique index
// on content_hash is what enforces deduplication.
type RouteModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ContentHash      string          `gorm:"uniqueIndex;not null;size:64"`
	Profile          string          `gorm:"not null;size:30"`
	OriginLabel      string          `gorm:"size:500"`
	DestinationLabel string          `gorm:"size:500"`
	Places           json.RawMessage `gorm:"type:jsonb;not null"`
	VisitOrder       json.RawMessage `gorm:"type:jsonb;not null"`
	Instructions     json.RawMessage `gorm:"type:jsonb;not null"`
	PathGeometry     json.RawMessage `gorm:"type:jsonb"`
	DistanceMeters   float64         `gorm:"not null"`
	DurationSeconds  float64         `gorm:"not null"`
	SavedAt          time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (RouteModel) TableName() string {
	return "saved_routes"
}

// GormHistoryRepository is the GORM-based implementation of
// route.HistoryRepository.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GormHistoryRepository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Save persists a route, rejecting it with domain.ErrDuplicateRoute when a
// route with the same content hash already exists.
func (r *GormHistoryRepository) Save(ctx context.Context, saved *routeDomain.SavedRoute) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RouteModel{}).
		Where("content_hash = ?", saved.ContentHash()).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for duplicate route: %w", err)
	}
	if count > 0 {
		return domain.ErrDuplicateRoute
	}

	model, err := toRouteModel(saved)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// The unique index catches the race between check and insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateRoute
		}
		return fmt.Errorf("failed to save route: %w", err)
	}
	return nil
}

// FindByID retrieves a saved route by its identifier.
func (r *GormHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*routeDomain.SavedRoute, error) {
	var model RouteModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("route", id.String())
		}
		return nil, fmt.Errorf("failed to find route by ID: %w", err)
	}
	return toDomainRoute(&model)
}

// List retrieves saved routes newest first, with pagination.
func (r *GormHistoryRepository) List(ctx context.Context, page, limit int) ([]*routeDomain.SavedRoute, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RouteModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count routes: %w", err)
	}

	var models []RouteModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("saved_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list routes: %w", err)
	}

	routes := make([]*routeDomain.SavedRoute, len(models))
	for i, m := range models {
		saved, err := toDomainRoute(&m)
		if err != nil {
			return nil, 0, err
		}
		routes[i] = saved
	}
	return routes, total, nil
}

// Delete removes a single saved route.
func (r *GormHistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&RouteModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete route: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("route", id.String())
	}
	return nil
}

// Clear removes the whole history.
func (r *GormHistoryRepository) Clear(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&RouteModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear route history: %w", err)
	}
	return nil
}

// --- Mapping ---

func toRouteModel(saved *routeDomain.SavedRoute) (*RouteModel, error) {
	placesJSON, err := json.Marshal(saved.Places())
	if err != nil {
		return nil, fmt.Errorf("failed to encode places: %w", err)
	}
	orderJSON, err := json.Marshal(saved.Optimized().VisitOrder())
	if err != nil {
		return nil, fmt.Errorf("failed to encode visit order: %w", err)
	}
	instructionsJSON, err := json.Marshal(saved.Optimized().Instructions())
	if err != nil {
		return nil, fmt.Errorf("failed to encode instructions: %w", err)
	}

	return &RouteModel{
		ID:               saved.ID(),
		ContentHash:      saved.ContentHash(),
		Profile:          saved.Profile().String(),
		OriginLabel:      saved.OriginLabel(),
		DestinationLabel: saved.DestinationLabel(),
		Places:           placesJSON,
		VisitOrder:       orderJSON,
		Instructions:     instructionsJSON,
		PathGeometry:     saved.Optimized().PathGeometry(),
		DistanceMeters:   saved.Optimized().TotalDistanceMeters(),
		DurationSeconds:  saved.Optimized().TotalDurationSeconds(),
		SavedAt:          saved.SavedAt(),
	}, nil
}

func toDomainRoute(model *RouteModel) (*routeDomain.SavedRoute, error) {
	var places []place.Place
	if err := json.Unmarshal(model.Places, &places); err != nil {
		return nil, fmt.Errorf("failed to decode places for route %s: %w", model.ID, err)
	}
	var visitOrder []routeDomain.Coordinate
	if err := json.Unmarshal(model.VisitOrder, &visitOrder); err != nil {
		return nil, fmt.Errorf("failed to decode visit order for route %s: %w", model.ID, err)
	}
	var instructions []routeDomain.Instruction
	if err := json.Unmarshal(model.Instructions, &instructions); err != nil {
		return nil, fmt.Errorf("failed to decode instructions for route %s: %w", model.ID, err)
	}

	optimized, err := routeDomain.NewOptimizedRoute(
		visitOrder,
		model.PathGeometry,
		instructions,
		model.DistanceMeters,
		model.DurationSeconds,
	)
	if err != nil {
		return nil, fmt.Errorf("stored route %s is inconsistent: %w", model.ID, err)
	}

	profile, err := routeDomain.ParseTransportProfile(model.Profile)
	if err != nil {
		return nil, fmt.Errorf("stored route %s has unknown profile: %w", model.ID, err)
	}

	return routeDomain.ReconstructSavedRoute(
		model.ID,
		places,
		optimized,
		profile,
		model.OriginLabel,
		model.DestinationLabel,
		model.SavedAt,
		model.ContentHash,
	), nil
}
