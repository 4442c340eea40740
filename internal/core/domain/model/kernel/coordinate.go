package kernel

import (
	"errors"
	"fmt"
	"math"

	"parcelmatch/internal/pkg/errs"
	"parcelmatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used for great-circle distances.
	earthRadiusKm = 6371.0
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an
// improperly initialized Coordinate. Coordinates must be created via
// NewCoordinate so that both latitude and longitude are validated.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate constructor")

// Coordinate represents a geographic point as a (latitude, longitude) pair
// in decimal degrees. Coordinate is an immutable value object; the zero value
// is invalid and fails validation.
//
// Example:
//
//	brussels, err := kernel.NewCoordinate(50.85, 4.35)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(brussels) // Output: Coordinate(50.850000,4.350000)
type Coordinate struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinate creates a Coordinate with the given latitude and longitude.
// Latitude must be within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]; NaN is rejected. Returns a validation error
// if either component is outside its bounds.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	c := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLat(lat), c.setLng(lng)); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate checks that the Coordinate was properly constructed.
// Returns ErrCoordinateIsNotConstructed for zero-value instances.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (c Coordinate) Lat() float64 {
	return c.lat
}

// Lng returns the longitude in decimal degrees.
func (c Coordinate) Lng() float64 {
	return c.lng
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%f,%f)", c.lat, c.lng)
}

// IsEqual compares two coordinates for exact equality.
// Both coordinates must be properly constructed.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c.lat == other.lat && c.lng == other.lng, nil
}

// DistanceKm computes the great-circle distance to another coordinate in
// kilometers using the haversine formula over the mean Earth radius.
// Both coordinates must be properly constructed; an unconstructed input
// yields a validation error rather than a bogus distance.
//
// Example:
//
//	start, _ := kernel.NewCoordinate(50.85, 4.35)
//	pickup, _ := kernel.NewCoordinate(50.90, 4.35)
//
//	km, err := start.DistanceKm(pickup)
//	// km ≈ 5.56
func (c Coordinate) DistanceKm(other Coordinate) (float64, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := toRad(other.lat - c.lat)
	dLng := toRad(other.lng - c.lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(c.lat))*math.Cos(toRad(other.lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	arc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * arc, nil
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// setLat sets the latitude with validation.
// Note: pointer receiver on a value-receiver type, used only during
// construction for self-encapsulated validation.
func (c *Coordinate) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	c.lat = lat
	return nil
}

// setLng sets the longitude with validation.
func (c *Coordinate) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}

	c.lng = lng
	return nil
}
