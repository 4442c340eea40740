package parcel

import (
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

// Parcel is the aggregate root for a delivery request.
//
// Invariants:
//   - Owner, pickup and dropoff address references are valid UUIDs
//   - Status transitions follow the Status state machine
//   - At most one live delivery exists per parcel; the lifecycle commands
//     enforce this transactionally
type Parcel struct {
	id               kernel.UUID
	ownerID          kernel.UUID
	pickupAddressID  kernel.UUID
	dropoffAddressID kernel.UUID

	description string
	actionType  ActionType
	category    Category
	size        Size

	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewParcel creates a Parcel in Pending status.
// Category and size fall back to their defaults when empty.
func NewParcel(
	id kernel.UUID,
	ownerID kernel.UUID,
	pickupAddressID kernel.UUID,
	dropoffAddressID kernel.UUID,
	description string,
	actionType ActionType,
	category Category,
	size Size,
) (*Parcel, error) {
	if category == "" {
		category = DefaultCategory
	}
	if size == "" {
		size = DefaultSize
	}

	p := &Parcel{
		description:   description,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOwnerID(ownerID),
		p.setPickupAddressID(pickupAddressID),
		p.setDropoffAddressID(dropoffAddressID),
		p.setActionType(actionType),
		p.setCategory(category),
		p.setSize(size),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence.
func RestoreParcel(
	id kernel.UUID,
	ownerID kernel.UUID,
	pickupAddressID kernel.UUID,
	dropoffAddressID kernel.UUID,
	description string,
	actionType ActionType,
	category Category,
	size Size,
	status Status,
	createdAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, ownerID, pickupAddressID, dropoffAddressID, description, actionType, category, size)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	p.status = status
	p.createdAt = createdAt

	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by identifier.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// OwnerID returns the identifier of the user who created the parcel.
func (p *Parcel) OwnerID() kernel.UUID {
	return p.ownerID
}

// PickupAddressID returns the pickup address reference.
func (p *Parcel) PickupAddressID() kernel.UUID {
	return p.pickupAddressID
}

// DropoffAddressID returns the dropoff address reference.
func (p *Parcel) DropoffAddressID() kernel.UUID {
	return p.dropoffAddressID
}

// Description returns the free-form description supplied by the sender.
func (p *Parcel) Description() string {
	return p.description
}

// ActionType reports whether the owner is sending or receiving.
func (p *Parcel) ActionType() ActionType {
	return p.actionType
}

// Category returns the goods category.
func (p *Parcel) Category() Category {
	return p.category
}

// Size returns the size class.
func (p *Parcel) Size() Size {
	return p.size
}

// Status returns the current lifecycle state.
func (p *Parcel) Status() Status {
	return p.status
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// IsOwnedBy reports whether the given user created this parcel.
// A courier may not deliver their own shipment.
func (p *Parcel) IsOwnedBy(userID kernel.UUID) bool {
	return p.ownerID.IsEqual(userID)
}

// Assign moves the parcel from Pending to Assigned when a delivery is
// created for it. Any other current status is rejected, which is how the
// losing side of a concurrent assignment race observes the conflict.
func (p *Parcel) Assign() error {
	newStatus, err := p.status.Assign()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// MarkInTransit moves the parcel from Assigned to InTransit on pickup.
func (p *Parcel) MarkInTransit() error {
	newStatus, err := p.status.MarkInTransit()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// MarkDelivered moves the parcel from InTransit to Delivered.
func (p *Parcel) MarkDelivered() error {
	newStatus, err := p.status.MarkDelivered()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Reopen returns an Assigned or InTransit parcel to Pending after its
// delivery is cancelled, making it matchable again.
func (p *Parcel) Reopen() error {
	newStatus, err := p.status.Reopen()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	p.ownerID = ownerID
	return nil
}

func (p *Parcel) setPickupAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	p.pickupAddressID = addressID
	return nil
}

func (p *Parcel) setDropoffAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	p.dropoffAddressID = addressID
	return nil
}

func (p *Parcel) setActionType(actionType ActionType) error {
	if err := actionType.Validate(); err != nil {
		return err
	}
	p.actionType = actionType
	return nil
}

func (p *Parcel) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Parcel) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}
