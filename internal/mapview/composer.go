// Package mapview composes the interactive map for a rendered route: a
// layered document with the path overlay and semantically colored, numbered
// markers, plus its HTML rendering.
package mapview

import (
	"encoding/json"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
)

// MarkerRole classifies a marker by its position in the visiting order.
type MarkerRole string

const (
	RoleStartAndEnd  MarkerRole = "start_and_end"
	RoleStart        MarkerRole = "start"
	RoleEnd          MarkerRole = "end"
	RoleIntermediate MarkerRole = "intermediate"
)

// Marker colors, one per role.
const (
	colorStartAndEnd  = "#FF69B4"
	colorStart        = "#28a745"
	colorEnd          = "#dc3545"
	colorIntermediate = "#007BFF"
)

// Generic labels for markers that do not correspond to a known place.
const (
	labelStartAndEnd  = "Start and end of route"
	labelStart        = "Start of route"
	labelEnd          = "End of route"
	labelUnrecognized = "Unrecognized point"
)

// clusterThreshold is the number of ordered points above which marker
// rendering switches to clustering. Presentation only; all markers remain
// present in both modes.
const clusterThreshold = 30

// defaultZoom matches a city-scale view around the start point.
const defaultZoom = 13

// Marker is one numbered map marker. Position is the 1-based index in the
// ordered sequence; Lat/Lng are in map axis order.
type Marker struct {
	Position int        `json:"position"`
	Lat      float64    `json:"lat"`
	Lng      float64    `json:"lng"`
	Role     MarkerRole `json:"role"`
	Color    string     `json:"color"`
	Label    string     `json:"label"`
	Detail   string     `json:"detail,omitempty"`
	Known    bool       `json:"known"`
}

// MapDocument is the composed map: center, the path geometry layer, and the
// marker layer. The two layers are independent so either can be toggled
// without affecting the other.
type MapDocument struct {
	CenterLat float64         `json:"center_lat"`
	CenterLng float64         `json:"center_lng"`
	Zoom      int             `json:"zoom"`
	Geometry  json.RawMessage `json:"geometry"`
	Markers   []Marker        `json:"markers"`
	Clustered bool            `json:"clustered"`
}

// Compose builds the map document for an ordered coordinate sequence and its
// path geometry. The map centers on the first coordinate. When start and end
// are the same location (round trip), a single start-and-end marker is
// placed at position 1 and the duplicate terminal coordinate is suppressed.
// A coordinate matching a known place (both axes equal after independent
// rounding to six decimals) takes the place's name and address; unmatched
// intermediate coordinates get a neutral label rather than failing, since
// the routing backend may introduce points that were never requested.
func Compose(coords []route.Coordinate, geometry json.RawMessage, knownPlaces []place.Place) (*MapDocument, error) {
	if len(coords) == 0 {
		return nil, domain.NewValidationError("cannot compose a map without coordinates")
	}

	first := coords[0]
	last := coords[len(coords)-1]
	roundTrip := len(coords) > 1 && first.SameLocation(last)

	doc := &MapDocument{
		CenterLat: first.Lat,
		CenterLng: first.Lng,
		Zoom:      defaultZoom,
		Geometry:  geometry,
		Clustered: len(coords) > clusterThreshold,
	}

	for i, coord := range coords {
		isStart := i == 0
		isEnd := i == len(coords)-1

		// The terminal coordinate of a round trip duplicates position 1.
		if roundTrip && isEnd && !isStart {
			continue
		}

		marker := Marker{
			Position: i + 1,
			Lat:      coord.Lat,
			Lng:      coord.Lng,
		}

		switch {
		case roundTrip && isStart:
			marker.Role = RoleStartAndEnd
			marker.Color = colorStartAndEnd
			marker.Label = labelStartAndEnd
		case isStart:
			marker.Role = RoleStart
			marker.Color = colorStart
			marker.Label = labelStart
		case isEnd:
			marker.Role = RoleEnd
			marker.Color = colorEnd
			marker.Label = labelEnd
		default:
			marker.Role = RoleIntermediate
			marker.Color = colorIntermediate
			marker.Label = labelUnrecognized
		}

		if known, ok := matchKnownPlace(coord, knownPlaces); ok {
			marker.Label = known.Name
			marker.Detail = known.Address
			marker.Known = true
		}

		doc.Markers = append(doc.Markers, marker)
	}

	return doc, nil
}

// matchKnownPlace finds the first known place whose coordinates agree with
// coord on both axes after independent rounding to six decimal places.
func matchKnownPlace(coord route.Coordinate, knownPlaces []place.Place) (place.Place, bool) {
	for _, p := range knownPlaces {
		if coord.SameLocation(route.Coordinate{Lng: p.Lng, Lat: p.Lat}) {
			return p, true
		}
	}
	return place.Place{}, false
}
