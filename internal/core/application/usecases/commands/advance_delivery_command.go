package commands

import (
	"errors"
	"fmt"
	"time"

	"parcelmatch/internal/core/domain/model/delivery"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"
	"parcelmatch/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand moves a delivery one step forward: to PickedUp when
// the courier collects the parcel, or to Delivered when it is handed over.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status
	at         *time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to advance a delivery.
// Only PickedUp and Delivered are valid targets. The timestamp is optional;
// when nil the handler stamps the transition with the current time.
func NewAdvanceDeliveryCommand(deliveryID kernel.UUID, target delivery.Status, at *time.Time) (AdvanceDeliveryCommand, error) {
	command := AdvanceDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setTarget(target),
		command.setAt(at),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being advanced.
func (c AdvanceDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested status.
func (c AdvanceDeliveryCommand) Target() delivery.Status {
	return c.target
}

// At returns the caller-supplied transition timestamp, or nil when the
// handler should use the current time.
func (c AdvanceDeliveryCommand) At() *time.Time {
	return c.at
}

func (c *AdvanceDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AdvanceDeliveryCommand) setAt(at *time.Time) error {
	if at != nil && at.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("at",
			errors.New("timestamp must not be the zero time"))
	}

	c.at = at
	return nil
}

func (c *AdvanceDeliveryCommand) setTarget(target delivery.Status) error {
	if target != delivery.PickedUp && target != delivery.Delivered {
		return errs.NewValueIsInvalidErrorWithCause("target",
			fmt.Errorf("%s is not an advanceable status", target))
	}

	c.target = target
	return nil
}
