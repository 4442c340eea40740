package delivery

import (
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery binds a parcel to a courier for one delivery attempt.
//
// The pickup and dropoff address references are snapshots taken from the
// parcel at assignment time; they never change afterwards, even if the parcel
// owner edits their addresses while the delivery is in flight.
type Delivery struct {
	id       kernel.UUID
	parcelID kernel.UUID
	courierID kernel.UUID

	pickupAddressID  kernel.UUID
	dropoffAddressID kernel.UUID

	pickupTime   *time.Time
	deliveryTime *time.Time

	status Status

	isConstructed bool
}

// NewDelivery creates a Delivery in Assigned status, snapshotting the
// parcel's current pickup and dropoff address references.
func NewDelivery(
	id kernel.UUID,
	parcelID kernel.UUID,
	courierID kernel.UUID,
	pickupAddressID kernel.UUID,
	dropoffAddressID kernel.UUID,
) (*Delivery, error) {
	d := &Delivery{
		status:        Assigned,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setParcelID(parcelID),
		d.setCourierID(courierID),
		d.setPickupAddressID(pickupAddressID),
		d.setDropoffAddressID(dropoffAddressID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	parcelID kernel.UUID,
	courierID kernel.UUID,
	pickupAddressID kernel.UUID,
	dropoffAddressID kernel.UUID,
	pickupTime *time.Time,
	deliveryTime *time.Time,
	status Status,
) (*Delivery, error) {
	d, err := NewDelivery(id, parcelID, courierID, pickupAddressID, dropoffAddressID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	d.status = status

	if pickupTime != nil {
		t := pickupTime.UTC()
		d.pickupTime = &t
	}
	if deliveryTime != nil {
		t := deliveryTime.UTC()
		d.deliveryTime = &t
	}

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ParcelID returns the carried parcel's identifier.
func (d *Delivery) ParcelID() kernel.UUID {
	return d.parcelID
}

// CourierID returns the assigned courier's identifier.
func (d *Delivery) CourierID() kernel.UUID {
	return d.courierID
}

// PickupAddressID returns the snapshotted pickup address reference.
func (d *Delivery) PickupAddressID() kernel.UUID {
	return d.pickupAddressID
}

// DropoffAddressID returns the snapshotted dropoff address reference.
func (d *Delivery) DropoffAddressID() kernel.UUID {
	return d.dropoffAddressID
}

// PickupTime returns when the courier collected the parcel, nil before pickup.
func (d *Delivery) PickupTime() *time.Time {
	if d.pickupTime == nil {
		return nil
	}
	t := *d.pickupTime
	return &t
}

// DeliveryTime returns when the parcel was handed over, nil before delivery.
func (d *Delivery) DeliveryTime() *time.Time {
	if d.deliveryTime == nil {
		return nil
	}
	t := *d.deliveryTime
	return &t
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// IsLive reports whether this delivery still claims its parcel:
// everything except Cancelled counts, including Delivered.
func (d *Delivery) IsLive() bool {
	return d.status != Cancelled
}

// MarkPickedUp moves the delivery from Assigned to PickedUp, recording the
// pickup time.
func (d *Delivery) MarkPickedUp(at time.Time) error {
	newStatus, err := d.status.Pickup()
	if err != nil {
		return err
	}

	t := at.UTC()
	d.status = newStatus
	d.pickupTime = &t
	return nil
}

// MarkDelivered moves the delivery from PickedUp to Delivered, recording the
// delivery time. Delivered deliveries are immutable.
func (d *Delivery) MarkDelivered(at time.Time) error {
	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	t := at.UTC()
	d.status = newStatus
	d.deliveryTime = &t
	return nil
}

// Cancel moves an in-flight delivery to Cancelled. The row is retained;
// the caller is responsible for reopening the parcel in the same transaction.
func (d *Delivery) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	d.parcelID = parcelID
	return nil
}

func (d *Delivery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	d.courierID = courierID
	return nil
}

func (d *Delivery) setPickupAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	d.pickupAddressID = addressID
	return nil
}

func (d *Delivery) setDropoffAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	d.dropoffAddressID = addressID
	return nil
}
