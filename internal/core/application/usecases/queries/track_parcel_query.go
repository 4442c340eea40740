// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain repositories and read directly from the
// database, returning lightweight response structs. The read path never
// triggers geocoding: it only reports coordinates already cached by the
// write side.
package queries

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/parcel"
	"parcelmatch/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)

	// ErrParcelNotTrackable is returned when no location can be reported for
	// the parcel, typically because the relevant address has not been
	// geocoded yet.
	ErrParcelNotTrackable = errors.New("parcel location is not available")
)

// TrackParcelQuery asks for the current best-known location of a parcel.
// The reported point depends on the parcel's lifecycle stage: the pickup
// address while it waits, the courier's live position while it moves, and
// the dropoff address once delivered.
type TrackParcelQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a query to locate the given parcel.
func NewTrackParcelQuery(parcelID kernel.UUID) (TrackParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return TrackParcelQuery{}, err
	}

	return TrackParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ParcelID returns the identifier of the parcel being tracked.
func (q TrackParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackParcelQueryResponse reports where a parcel currently is.
type TrackParcelQueryResponse struct {
	ParcelID kernel.UUID
	Status   parcel.Status
	Location kernel.Coordinate
}
