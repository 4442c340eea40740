package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand reports a courier's current position. Updates are
// fire-and-forget and last-write-wins; only the latest position matters.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	location kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a command carrying a courier's reported
// position.
func NewUpdateLocationCommand(userID kernel.UUID, location kernel.Coordinate) (UpdateLocationCommand, error) {
	command := UpdateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setLocation(location),
	); err != nil {
		return UpdateLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// UserID returns the identifier of the reporting user.
func (c UpdateLocationCommand) UserID() kernel.UUID {
	return c.userID
}

// Location returns the reported coordinate.
func (c UpdateLocationCommand) Location() kernel.Coordinate {
	return c.location
}

func (c *UpdateLocationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateLocationCommand) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
