package application

import (
	"context"
	"strings"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	"go.uber.org/zap"
)

// SearchPlacesRequest holds the discovery parameters.
type SearchPlacesRequest struct {
	Query    string `json:"query" binding:"required"`
	Address  string `json:"address" binding:"required"`
	RadiusKm int    `json:"radius_km" binding:"required"`
}

// AddManualPlaceRequest holds the data for a manually entered place.
type AddManualPlaceRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Category string `json:"category" binding:"required"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
}

// DiscoveryService finds candidate places around an address and filters them
// through the relevance predicate.
type DiscoveryService struct {
	geocoder  Geocoder
	searcher  PlaceSearcher
	predicate RelevancePredicate
	logger    *zap.Logger
}

// NewDiscoveryService creates a new DiscoveryService.
func NewDiscoveryService(
	geocoder Geocoder,
	searcher PlaceSearcher,
	predicate RelevancePredicate,
	logger *zap.Logger,
) *DiscoveryService {
	return &DiscoveryService{
		geocoder:  geocoder,
		searcher:  searcher,
		predicate: predicate,
		logger:    logger,
	}
}

// SearchPlaces geocodes the search address and returns the candidates that
// pass the relevance check. A failed judgement rejects only that candidate;
// the rest of the batch is still validated.
func (s *DiscoveryService) SearchPlaces(ctx context.Context, req SearchPlacesRequest) ([]place.Place, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, domain.NewValidationError("search query must not be empty")
	}
	if req.RadiusKm <= 0 {
		return nil, domain.NewValidationError("search radius must be positive")
	}

	center, err := s.geocoder.Resolve(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	candidates, err := s.searcher.Search(ctx, req.Query, req.RadiusKm*1000, center)
	if err != nil {
		return nil, err
	}

	confirmed := make([]place.Place, 0, len(candidates))
	for _, candidate := range candidates {
		relevant, err := s.predicate.Matches(ctx, candidate.Name, candidate.Category, req.Query)
		if err != nil {
			s.logger.Warn("relevance check failed, excluding candidate",
				zap.String("place", candidate.Name),
				zap.Error(err),
			)
			continue
		}
		if relevant {
			confirmed = append(confirmed, candidate)
		}
	}

	s.logger.Info("place discovery completed",
		zap.String("query", req.Query),
		zap.Int("candidates", len(candidates)),
		zap.Int("confirmed", len(confirmed)),
	)
	return confirmed, nil
}

// AddManualPlace geocodes the address of a hand-entered place and builds the
// place record with a synthesized id.
func (s *DiscoveryService) AddManualPlace(ctx context.Context, req AddManualPlaceRequest) (*place.Place, error) {
	coord, err := s.geocoder.Resolve(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	p, err := place.NewManualPlace(req.Name, req.Address, req.Category, coord.Lat, coord.Lng, req.Phone, req.Website)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
