// Package guard implements the constructor guard pattern used by value objects,
// commands, and queries to detect zero-value instances that bypassed their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied. Validation of an unconstructed object always fails with
// a meaningful message even when no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. Embedding a ConstructorGuard in a struct
// makes a zero-value instance distinguishable from a properly constructed one:
// the internal flag is only set by NewConstructorGuard.
//
// Example:
//
//	type Coordinate struct {
//	    lat, lng float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewCoordinate(lat, lng float64) (Coordinate, error) {
//	    // ... validate bounds ...
//	    return Coordinate{lat: lat, lng: lng, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Coordinate) Validate() error {
//	    return c.guard.Validate(ErrCoordinateIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
