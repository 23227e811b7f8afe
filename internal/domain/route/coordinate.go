package route

import (
	"encoding/json"
	"fmt"
	"math"
)

// Coordinate is a geographic point in (longitude, latitude) axis order.
// This is the order used at the optimizer and renderer boundaries; map
// rendering flips to (latitude, longitude). On the wire a Coordinate is the
// two-element array [lng, lat].
type Coordinate struct {
	Lng float64
	Lat float64
}

// matchPrecision is the number of decimal places two coordinates must share
// to be considered the same location (~11 cm).
const matchPrecision = 6

// MarshalJSON encodes the coordinate as [lng, lat].
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lng, c.Lat})
}

// UnmarshalJSON decodes a [lng, lat] array.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate must be a [lng, lat] pair: %w", err)
	}
	c.Lng = pair[0]
	c.Lat = pair[1]
	return nil
}

// SameLocation reports whether both axes agree after independent rounding to
// six decimal places. Geocoding the same address twice can return
// bit-different floats, so exact equality is deliberately not used.
func (c Coordinate) SameLocation(other Coordinate) bool {
	return round6(c.Lat) == round6(other.Lat) && round6(c.Lng) == round6(other.Lng)
}

// String formats the coordinate for logs.
func (c Coordinate) String() string {
	return fmt.Sprintf("[%f, %f]", c.Lng, c.Lat)
}

func round6(v float64) float64 {
	pow := math.Pow(10, matchPrecision)
	return math.Round(v*pow) / pow
}
