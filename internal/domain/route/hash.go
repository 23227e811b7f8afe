package route

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/place"
)

// ContentHash computes the deduplication key for a route: a SHA-256 digest
// over a canonical serialization of the places and the ordered coordinates.
// The serialization fixes field order and float formatting so that two
// semantically identical routes always collide, regardless of how they were
// constructed or re-decoded.
func ContentHash(places []place.Place, visitOrder []Coordinate) string {
	var b strings.Builder
	for _, p := range places {
		fmt.Fprintf(&b, "%s|%s|%s|%s|%.6f|%.6f|%s|%s;",
			p.ID, p.Name, p.Address, p.Category, p.Lat, p.Lng, p.Phone, p.Website)
	}
	b.WriteByte('#')
	for _, c := range visitOrder {
		fmt.Fprintf(&b, "%.6f,%.6f;", c.Lng, c.Lat)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
