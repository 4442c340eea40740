package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"
	"parcelmatch/internal/pkg/guard"
)

var ErrSearchParcelsCommandIsNotConstructed = errors.New(
	"SearchParcelsCommand must be created via NewSearchParcelsCommand constructor",
)

// SearchParcelsCommand represents a courier's request for pending parcels
// along a route. The route is optional: when omitted, the courier's last
// declared route is used ("sticky" route); when present, it replaces the
// stored one as a side effect of the search. Radii of zero keep the
// courier's current radii.
type SearchParcelsCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	start           *address.Fields
	destination     *address.Fields
	pickupRadiusKm  float64
	dropoffRadiusKm float64

	guard guard.ConstructorGuard
}

// NewSearchParcelsCommand creates a search command. Start and destination
// must be provided together or not at all; radii must not be negative.
func NewSearchParcelsCommand(
	userID kernel.UUID,
	start *address.Fields,
	destination *address.Fields,
	pickupRadiusKm float64,
	dropoffRadiusKm float64,
) (SearchParcelsCommand, error) {
	command := SearchParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setRoute(start, destination),
		command.setRadii(pickupRadiusKm, dropoffRadiusKm),
	); err != nil {
		return SearchParcelsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SearchParcelsCommand) Validate() error {
	return c.guard.Validate(ErrSearchParcelsCommandIsNotConstructed)
}

// UserID returns the identifier of the searching user.
func (c SearchParcelsCommand) UserID() kernel.UUID {
	return c.userID
}

// HasRoute reports whether the command carries a route override.
func (c SearchParcelsCommand) HasRoute() bool {
	return c.start != nil && c.destination != nil
}

// Start returns the override route start, or nil when the stored route applies.
func (c SearchParcelsCommand) Start() *address.Fields {
	return c.start
}

// Destination returns the override route destination, or nil when the stored
// route applies.
func (c SearchParcelsCommand) Destination() *address.Fields {
	return c.destination
}

// PickupRadiusKm returns the pickup radius override, zero meaning "keep".
func (c SearchParcelsCommand) PickupRadiusKm() float64 {
	return c.pickupRadiusKm
}

// DropoffRadiusKm returns the dropoff radius override, zero meaning "keep".
func (c SearchParcelsCommand) DropoffRadiusKm() float64 {
	return c.dropoffRadiusKm
}

func (c *SearchParcelsCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *SearchParcelsCommand) setRoute(start, destination *address.Fields) error {
	if (start == nil) != (destination == nil) {
		return errs.NewValueIsRequiredError("start and destination must be provided together")
	}
	if start == nil {
		return nil
	}

	if err := errors.Join(start.Validate(), destination.Validate()); err != nil {
		return err
	}

	s := *start
	d := *destination
	c.start = &s
	c.destination = &d
	return nil
}

func (c *SearchParcelsCommand) setRadii(pickupRadiusKm, dropoffRadiusKm float64) error {
	if pickupRadiusKm < 0 {
		return errs.NewValueIsInvalidError("pickupRadiusKm")
	}
	if dropoffRadiusKm < 0 {
		return errs.NewValueIsInvalidError("dropoffRadiusKm")
	}

	c.pickupRadiusKm = pickupRadiusKm
	c.dropoffRadiusKm = dropoffRadiusKm
	return nil
}
