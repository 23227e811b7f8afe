package route

import (
	"encoding/json"
)

// Instruction is one turn-by-turn step of a rendered path. Position is
// 1-based across all legs in traversal order; distance is rounded to the
// nearest whole meter for display.
type Instruction struct {
	Position       int    `json:"position"`
	Text           string `json:"text"`
	DistanceMeters int    `json:"distance_m"`
}

// OptimizedRoute is the immutable result of one optimizer+renderer run: the
// full visiting order (start, stops in optimized order and, if fixed, end),
// the path geometry covering that order, and the flattened instructions.
type OptimizedRoute struct {
	visitOrder           []Coordinate
	pathGeometry         json.RawMessage
	instructions         []Instruction
	totalDistanceMeters  float64
	totalDurationSeconds float64
}

// NewOptimizedRoute builds an OptimizedRoute from renderer output. Totals
// come from the path's summary data, not from re-summing instructions.
func NewOptimizedRoute(
	visitOrder []Coordinate,
	pathGeometry json.RawMessage,
	instructions []Instruction,
	totalDistanceMeters float64,
	totalDurationSeconds float64,
) (*OptimizedRoute, error) {
	if len(visitOrder) < 2 {
		return nil, ErrInsufficientPoints
	}
	return &OptimizedRoute{
		visitOrder:           visitOrder,
		pathGeometry:         pathGeometry,
		instructions:         instructions,
		totalDistanceMeters:  totalDistanceMeters,
		totalDurationSeconds: totalDurationSeconds,
	}, nil
}

// VisitOrder returns the ordered coordinate sequence including start and,
// if present, end.
func (o *OptimizedRoute) VisitOrder() []Coordinate { return o.visitOrder }

// PathGeometry returns the opaque GeoJSON line geometry of the path.
func (o *OptimizedRoute) PathGeometry() json.RawMessage { return o.pathGeometry }

// Instructions returns the 1-indexed turn-by-turn instructions.
func (o *OptimizedRoute) Instructions() []Instruction { return o.instructions }

// TotalDistanceMeters returns the summed leg distance in meters.
func (o *OptimizedRoute) TotalDistanceMeters() float64 { return o.totalDistanceMeters }

// TotalDurationSeconds returns the summed leg duration in seconds.
func (o *OptimizedRoute) TotalDurationSeconds() float64 { return o.totalDurationSeconds }

// DistanceKm returns the total distance in kilometers.
func (o *OptimizedRoute) DistanceKm() float64 { return o.totalDistanceMeters / 1000 }

// DurationMin returns the total duration in minutes.
func (o *OptimizedRoute) DurationMin() float64 { return o.totalDurationSeconds / 60 }
