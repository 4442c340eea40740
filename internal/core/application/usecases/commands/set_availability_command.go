package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrSetAvailabilityCommandIsNotConstructed = errors.New(
	"SetAvailabilityCommand must be created via NewSetAvailabilityCommand constructor",
)

// SetAvailabilityCommand toggles whether a courier is open to new deliveries.
// Availability has no effect on deliveries already in flight.
type SetAvailabilityCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetAvailabilityCommand creates a command to set a courier's availability.
func NewSetAvailabilityCommand(userID kernel.UUID, available bool) (SetAvailabilityCommand, error) {
	command := SetAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return SetAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAvailabilityCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose availability changes.
func (c SetAvailabilityCommand) UserID() kernel.UUID {
	return c.userID
}

// Available returns the requested availability flag.
func (c SetAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetAvailabilityCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
