package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/kafka"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/ors"
)

// fakeGeocoder resolves addresses from a fixed table.
type fakeGeocoder struct {
	coords map[string]route.Coordinate
}

func (f *fakeGeocoder) Resolve(_ context.Context, address string) (route.Coordinate, error) {
	coord, ok := f.coords[address]
	if !ok {
		return route.Coordinate{}, fmt.Errorf("no fixture for address %q", address)
	}
	return coord, nil
}

// fakeOptimizer returns a fixed visiting order and records its input.
type fakeOptimizer struct {
	order []int
	err   error

	gotStops []route.Coordinate
	gotStart route.Coordinate
	gotEnd   *route.Coordinate
}

func (f *fakeOptimizer) Optimize(_ context.Context, stops []route.Coordinate, start route.Coordinate, end *route.Coordinate, _ route.TransportProfile) ([]int, error) {
	f.gotStops = stops
	f.gotStart = start
	f.gotEnd = end
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

// fakeRenderer returns a canned path and records the ordered coordinates it
// was asked to render.
type fakeRenderer struct {
	result *ors.PathResult
	err    error

	gotCoords []route.Coordinate
}

func (f *fakeRenderer) Directions(_ context.Context, coords []route.Coordinate, _ route.TransportProfile) (*ors.PathResult, error) {
	f.gotCoords = coords
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeSearcher returns canned candidates.
type fakeSearcher struct {
	results []place.Place
	err     error

	gotQuery  string
	gotRadius int
}

func (f *fakeSearcher) Search(_ context.Context, query string, radiusMeters int, _ route.Coordinate) ([]place.Place, error) {
	f.gotQuery = query
	f.gotRadius = radiusMeters
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

// fakePredicate answers per place name, with optional per-name errors.
type fakePredicate struct {
	verdicts map[string]bool
	failFor  map[string]bool
}

func (f *fakePredicate) Matches(_ context.Context, name, _, _ string) (bool, error) {
	if f.failFor[name] {
		return false, fmt.Errorf("judgement unavailable for %q", name)
	}
	return f.verdicts[name], nil
}

// fakePublisher records published events.
type fakePublisher struct {
	events []kafka.CloudEvent
	topics []string
}

func (f *fakePublisher) PublishEvent(_ context.Context, topic string, event kafka.CloudEvent) error {
	f.topics = append(f.topics, topic)
	f.events = append(f.events, event)
	return nil
}

// fakeAssistant echoes the system prompt and last message.
type fakeAssistant struct {
	answer string
	err    error

	gotSystem   string
	gotMessages []ChatMessage
}

func (f *fakeAssistant) Answer(_ context.Context, system string, messages []ChatMessage) (string, error) {
	f.gotSystem = system
	f.gotMessages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func testPathResult() *ors.PathResult {
	return &ors.PathResult{
		Geometry: json.RawMessage(`{"type":"FeatureCollection","features":[]}`),
		Instructions: []route.Instruction{
			{Position: 1, Text: "Head north", DistanceMeters: 500},
			{Position: 2, Text: "Arrive at destination", DistanceMeters: 300},
		},
		DistanceMeters:  800,
		DurationSeconds: 240,
	}
}
