package kernel

import (
	"fmt"

	"deliverytrack/internal/pkg/errs"
	"deliverytrack/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax float64 = 90
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax float64 = 180
)

// ErrCoordinatesAreNotConstructed is returned when attempting to use an
// improperly initialized Coordinates value. Coordinates must be created via
// the NewCoordinates constructor.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates constructor")

// Coordinates is an immutable value object holding a geographic position in
// decimal degrees. It is produced by geocoding a street address and consumed
// by distance-matrix requests and tracking links.
//
// The zero value is invalid and fails validation; use NewCoordinates.
//
// Example:
//
//	coords, err := kernel.NewCoordinates(48.8584, 2.2945)
//	if err != nil {
//	    // out-of-range latitude or longitude
//	}
//	fmt.Println(coords) // Coordinates(48.858400, 2.294500)
type Coordinates struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinates creates validated Coordinates.
// Latitude must lie in [LatitudeMin, LatitudeMax] and longitude in
// [LongitudeMin, LongitudeMax]; otherwise a ValueIsOutOfRangeError is returned.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return Coordinates{}, errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	return Coordinates{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in decimal degrees.
func (c Coordinates) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in decimal degrees.
func (c Coordinates) Longitude() float64 {
	return c.longitude
}

// IsEqual compares two Coordinates for exact equality of both components.
func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.latitude == other.latitude && c.longitude == other.longitude
}

// Validate ensures the Coordinates value was created via NewCoordinates.
func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

// String implements fmt.Stringer.
func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%f, %f)", c.latitude, c.longitude)
}
