package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrSetRouteCommandIsNotConstructed = errors.New(
	"SetRouteCommand must be created via NewSetRouteCommand constructor",
)

// SetRouteCommand represents a courier declaring or replacing their planned
// route: the start and destination addresses they will travel between.
type SetRouteCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	start       address.Fields
	destination address.Fields

	guard guard.ConstructorGuard
}

// NewSetRouteCommand creates a command to set a courier's route. Both address
// field sets must be complete.
func NewSetRouteCommand(userID kernel.UUID, start, destination address.Fields) (SetRouteCommand, error) {
	command := SetRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setStart(start),
		command.setDestination(destination),
	); err != nil {
		return SetRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRouteCommand) Validate() error {
	return c.guard.Validate(ErrSetRouteCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose courier route is set.
func (c SetRouteCommand) UserID() kernel.UUID {
	return c.userID
}

// Start returns the route start address fields.
func (c SetRouteCommand) Start() address.Fields {
	return c.start
}

// Destination returns the route destination address fields.
func (c SetRouteCommand) Destination() address.Fields {
	return c.destination
}

func (c *SetRouteCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *SetRouteCommand) setStart(start address.Fields) error {
	if err := start.Validate(); err != nil {
		return err
	}

	c.start = start
	return nil
}

func (c *SetRouteCommand) setDestination(destination address.Fields) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}
