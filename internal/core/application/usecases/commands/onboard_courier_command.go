package commands

import (
	"errors"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrOnboardCourierCommandIsNotConstructed = errors.New(
	"OnboardCourierCommand must be created via NewOnboardCourierCommand constructor",
)

// OnboardCourierCommand represents a request to register a user as a courier.
// The new courier starts available, with default radii and no planned route.
type OnboardCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewOnboardCourierCommand creates a command to register a courier profile
// for a user. Both identifiers must be valid.
func NewOnboardCourierCommand(courierID, userID kernel.UUID) (OnboardCourierCommand, error) {
	command := OnboardCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setUserID(userID),
	); err != nil {
		return OnboardCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OnboardCourierCommand) Validate() error {
	return c.guard.Validate(ErrOnboardCourierCommandIsNotConstructed)
}

// CourierID returns the identifier assigned to the new courier profile.
func (c OnboardCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// UserID returns the identifier of the user becoming a courier.
func (c OnboardCourierCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *OnboardCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *OnboardCourierCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
