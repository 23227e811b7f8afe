package route

import (
	"fmt"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
)

// ErrInsufficientStops is returned when a route is requested without any
// stops to visit.
var ErrInsufficientStops = domain.NewValidationError("at least one stop is required to plan a route")

// ErrInsufficientPoints is returned when path rendering is attempted with
// fewer than two points.
var ErrInsufficientPoints = domain.NewValidationError("at least two points are required to render a path")

// RouteRequest is the validated input to the planning pipeline. Stops are
// unique by coordinate and name; Start is mandatory, End is optional. A
// request whose start and end resolve to the same location is a round trip,
// not an error.
type RouteRequest struct {
	stops   []place.Place
	start   Coordinate
	end     *Coordinate
	profile TransportProfile
}

// NewRouteRequest validates and builds a RouteRequest. Duplicate stops
// (same name at the same location) are dropped, keeping the first.
func NewRouteRequest(stops []place.Place, start Coordinate, end *Coordinate, profile TransportProfile) (*RouteRequest, error) {
	if !profile.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid transport profile: %s", profile))
	}

	unique := make([]place.Place, 0, len(stops))
	seen := make(map[string]bool, len(stops))
	for _, p := range stops {
		key := fmt.Sprintf("%s|%.6f|%.6f", p.Name, p.Lat, p.Lng)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, p)
	}

	if len(unique) == 0 {
		return nil, ErrInsufficientStops
	}

	return &RouteRequest{
		stops:   unique,
		start:   start,
		end:     end,
		profile: profile,
	}, nil
}

// Stops returns the unique stops to visit.
func (r *RouteRequest) Stops() []place.Place { return r.stops }

// Start returns the mandatory start coordinate.
func (r *RouteRequest) Start() Coordinate { return r.start }

// End returns the optional end coordinate, or nil when the optimizer may
// finish anywhere.
func (r *RouteRequest) End() *Coordinate { return r.end }

// Profile returns the transport profile.
func (r *RouteRequest) Profile() TransportProfile { return r.profile }

// IsRoundTrip reports whether start and end are the same location after
// rounding. Origin and destination are geocoded independently, so the
// comparison tolerates float noise past the sixth decimal.
func (r *RouteRequest) IsRoundTrip() bool {
	return r.end != nil && r.start.SameLocation(*r.end)
}

// StopCoordinates returns the stop locations in request order, in
// (longitude, latitude) order for the optimizer boundary.
func (r *RouteRequest) StopCoordinates() []Coordinate {
	coords := make([]Coordinate, len(r.stops))
	for i, p := range r.stops {
		coords[i] = Coordinate{Lng: p.Lng, Lat: p.Lat}
	}
	return coords
}
