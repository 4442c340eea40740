package commands

import (
	"errors"
	"strings"

	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/parcel"
	"parcelmatch/internal/pkg/errs"
	"parcelmatch/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new shipment.
// Carries the owner, the raw pickup and dropoff addresses, and the parcel
// attributes. Category and size fall back to their defaults when empty.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	ownerID     kernel.UUID
	pickup      address.Fields
	dropoff     address.Fields
	description string
	actionType  parcel.ActionType
	category    parcel.Category
	size        parcel.Size

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a parcel.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	ownerID kernel.UUID,
	pickup address.Fields,
	dropoff address.Fields,
	description string,
	actionType parcel.ActionType,
	category parcel.Category,
	size parcel.Size,
) (CreateParcelCommand, error) {
	command := CreateParcelCommand{
		actionType: actionType,
		category:   category,
		size:       size,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setParcelID(parcelID),
		command.setOwnerID(ownerID),
		command.setPickup(pickup),
		command.setDropoff(dropoff),
		command.setDescription(description),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier assigned to the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// OwnerID returns the identifier of the user registering the parcel.
func (c CreateParcelCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Pickup returns the pickup address fields.
func (c CreateParcelCommand) Pickup() address.Fields {
	return c.pickup
}

// Dropoff returns the dropoff address fields.
func (c CreateParcelCommand) Dropoff() address.Fields {
	return c.dropoff
}

// Description returns the free-form parcel description.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// ActionType returns whether the owner is sending or receiving.
func (c CreateParcelCommand) ActionType() parcel.ActionType {
	return c.actionType
}

// Category returns the parcel category, possibly empty for the default.
func (c CreateParcelCommand) Category() parcel.Category {
	return c.category
}

// Size returns the parcel size, possibly empty for the default.
func (c CreateParcelCommand) Size() parcel.Size {
	return c.size
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateParcelCommand) setPickup(pickup address.Fields) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateParcelCommand) setDropoff(dropoff address.Fields) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}

	c.dropoff = dropoff
	return nil
}

func (c *CreateParcelCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}
