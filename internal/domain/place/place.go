package place

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain"
)

// NotAvailable is the placeholder for optional fields the discovery
// backend did not provide.
const NotAvailable = "not available"

// Place is a point of interest that can be included in a route. Instances
// come from the discovery backend or from manual entry; once a place is part
// of a computed route it is treated as immutable.
type Place struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Category string  `json:"category"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Phone    string  `json:"phone,omitempty"`
	Website  string  `json:"website,omitempty"`
}

// NewManualPlace creates a place entered by hand. The id is synthesized from
// the name so that re-adding the same place yields the same id.
func NewManualPlace(name, address, category string, lat, lng float64, phone, website string) (Place, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	category = strings.TrimSpace(category)

	if name == "" {
		return Place{}, domain.NewValidationError("place name is required")
	}
	if address == "" {
		return Place{}, domain.NewValidationError("place address is required")
	}
	if category == "" {
		return Place{}, domain.NewValidationError("place category is required")
	}

	return Place{
		ID:       SynthesizeID(name),
		Name:     name,
		Address:  address,
		Category: category,
		Lat:      lat,
		Lng:      lng,
		Phone:    Normalize(phone),
		Website:  Normalize(website),
	}, nil
}

// SynthesizeID derives a stable id for a manually added place from its name.
func SynthesizeID(name string) string {
	sum := md5.Sum([]byte(name))
	return "manual_" + hex.EncodeToString(sum[:])[:6]
}

// Normalize maps blank optional fields to the NotAvailable placeholder.
func Normalize(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}
