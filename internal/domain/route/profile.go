package route

import "fmt"

// TransportProfile selects the edge-weight and restriction semantics the
// routing engine applies. Values match the OpenRouteService profile names.
type TransportProfile string

const (
	ProfileCar          TransportProfile = "driving-car"
	ProfileWalking      TransportProfile = "foot-walking"
	ProfileBicycle      TransportProfile = "cycling-regular"
	ProfileHeavyVehicle TransportProfile = "driving-hgv"
	ProfileWheelchair   TransportProfile = "wheelchair"
)

// labels maps each profile to its human-readable name.
var labels = map[TransportProfile]string{
	ProfileCar:          "car",
	ProfileWalking:      "walking",
	ProfileBicycle:      "bicycle",
	ProfileHeavyVehicle: "heavy vehicle",
	ProfileWheelchair:   "wheelchair",
}

// IsValid returns true if the profile is recognized.
func (p TransportProfile) IsValid() bool {
	_, exists := labels[p]
	return exists
}

// Label returns the human-readable name of the profile.
func (p TransportProfile) Label() string {
	return labels[p]
}

// String returns the routing-engine profile name.
func (p TransportProfile) String() string {
	return string(p)
}

// ParseTransportProfile converts a string to a TransportProfile, returning an
// error if invalid.
func ParseTransportProfile(s string) (TransportProfile, error) {
	p := TransportProfile(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid transport profile: %s", s)
	}
	return p, nil
}
