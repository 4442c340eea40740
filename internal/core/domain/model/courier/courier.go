package courier

import (
	"errors"
	"fmt"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"
)

// DefaultRadiusKm is the pickup and dropoff acceptance radius a courier
// starts with before tuning it.
const DefaultRadiusKm = 5.0

var (
	// ErrCourierIsNotConstructed is returned when a Courier instance was not
	// created through NewCourier or RestoreCourier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")

	// ErrRouteNotSet is returned when an operation requires the courier's
	// declared start and destination addresses and they are missing.
	ErrRouteNotSet = errors.New("courier has no start and destination address set")
)

// Courier represents a mobile courier: the aggregate owning the planned route
// (start and destination address references), acceptance radii, availability
// flag, and last reported live position.
//
// Invariants:
//   - Identity is 1:1 with a user; both IDs are valid UUIDs
//   - Radii are strictly positive, defaulting to DefaultRadiusKm
//   - The route is either fully set (both addresses) or fully absent
//   - The live location is absent until the first location ping
type Courier struct {
	id     kernel.UUID
	userID kernel.UUID

	startAddressID       *kernel.UUID
	destinationAddressID *kernel.UUID

	pickupRadiusKm  float64
	dropoffRadiusKm float64

	available    bool
	liveLocation *kernel.Coordinate

	isConstructed bool
}

// NewCourier creates a Courier for the given user with default radii,
// available for matching, with no route and no live position yet.
func NewCourier(id kernel.UUID, userID kernel.UUID) (*Courier, error) {
	c := &Courier{
		pickupRadiusKm:  DefaultRadiusKm,
		dropoffRadiusKm: DefaultRadiusKm,
		available:       true,
		isConstructed:   true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistence.
func RestoreCourier(
	id kernel.UUID,
	userID kernel.UUID,
	startAddressID *kernel.UUID,
	destinationAddressID *kernel.UUID,
	pickupRadiusKm float64,
	dropoffRadiusKm float64,
	available bool,
	liveLocation *kernel.Coordinate,
) (*Courier, error) {
	c, err := NewCourier(id, userID)
	if err != nil {
		return nil, err
	}

	if err = c.SetRadii(pickupRadiusKm, dropoffRadiusKm); err != nil {
		return nil, err
	}
	c.available = available

	if (startAddressID == nil) != (destinationAddressID == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("route",
			errors.New("start and destination must be set together"))
	}
	if startAddressID != nil {
		if err = c.SetRoute(*startAddressID, *destinationAddressID); err != nil {
			return nil, err
		}
	}

	if liveLocation != nil {
		if err = c.UpdateLiveLocation(*liveLocation); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// IsEqual compares two couriers by identifier.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// UserID returns the identifier of the user behind this courier.
func (c *Courier) UserID() kernel.UUID {
	return c.userID
}

// StartAddressID returns the declared start address reference, nil if unset.
func (c *Courier) StartAddressID() *kernel.UUID {
	return c.startAddressID
}

// DestinationAddressID returns the declared destination address reference,
// nil if unset.
func (c *Courier) DestinationAddressID() *kernel.UUID {
	return c.destinationAddressID
}

// PickupRadiusKm returns the acceptance radius around the start address.
func (c *Courier) PickupRadiusKm() float64 {
	return c.pickupRadiusKm
}

// DropoffRadiusKm returns the acceptance radius around the destination.
func (c *Courier) DropoffRadiusKm() float64 {
	return c.dropoffRadiusKm
}

// IsAvailable reports whether the courier accepts new assignments.
func (c *Courier) IsAvailable() bool {
	return c.available
}

// LiveLocation returns the last reported position, nil before the first ping.
func (c *Courier) LiveLocation() *kernel.Coordinate {
	if c.liveLocation == nil {
		return nil
	}
	loc := *c.liveLocation
	return &loc
}

// HasRoute reports whether the courier has declared both a start and a
// destination address. Only couriers with a route can be matched.
func (c *Courier) HasRoute() bool {
	return c.startAddressID != nil && c.destinationAddressID != nil
}

// SetRoute declares the courier's planned route. Both address references
// must be valid; the route replaces any previous one. A search for candidate
// parcels refreshes this route as a side effect, keeping it "sticky".
func (c *Courier) SetRoute(startAddressID, destinationAddressID kernel.UUID) error {
	if err := errors.Join(startAddressID.Validate(), destinationAddressID.Validate()); err != nil {
		return err
	}

	c.startAddressID = &startAddressID
	c.destinationAddressID = &destinationAddressID
	return nil
}

// SetRadii updates the pickup and dropoff acceptance radii in kilometers.
// Both must be strictly positive.
func (c *Courier) SetRadii(pickupRadiusKm, dropoffRadiusKm float64) error {
	if pickupRadiusKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pickupRadiusKm",
			fmt.Errorf("%f is not greater than 0", pickupRadiusKm))
	}
	if dropoffRadiusKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dropoffRadiusKm",
			fmt.Errorf("%f is not greater than 0", dropoffRadiusKm))
	}

	c.pickupRadiusKm = pickupRadiusKm
	c.dropoffRadiusKm = dropoffRadiusKm
	return nil
}

// SetAvailability toggles whether the courier accepts new assignments.
// It never touches parcels or deliveries.
func (c *Courier) SetAvailability(available bool) {
	c.available = available
}

// UpdateLiveLocation records the courier's most recently reported position.
// Updates are last-write-wins; only the latest position matters.
func (c *Courier) UpdateLiveLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.liveLocation = &location
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}
