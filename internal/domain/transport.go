package domain

import "strings"

// TransportCategory is one of the closed set of travel modes a vehicle can use.
type TransportCategory string

const (
	Car   TransportCategory = "car"
	Drone TransportCategory = "drone"
)

// Average speeds in distance units (km) per hour.
var speeds = map[TransportCategory]int{
	Car:   60,
	Drone: 80,
}

// Labels accepted by ParseTransportCategory besides the canonical names.
var categoryAliases = map[string]TransportCategory{
	"자동차": Car,
	"드론":  Drone,
}

// Categories returns every known category in a stable order.
func Categories() []TransportCategory {
	return []TransportCategory{Car, Drone}
}

// Speed returns the fixed average speed of the category.
func (c TransportCategory) Speed() (int, bool) {
	s, ok := speeds[c]
	return s, ok
}

func (c TransportCategory) Valid() bool {
	_, ok := speeds[c]
	return ok
}

func (c TransportCategory) String() string { return string(c) }

// Parse a user-supplied category name, ignoring case and surrounding whitespace.
func ParseTransportCategory(s string) (TransportCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c := TransportCategory(s); c.Valid() {
		return c, nil
	}
	if c, ok := categoryAliases[s]; ok {
		return c, nil
	}

	return "", NewInputError(InvalidCategory)
}
