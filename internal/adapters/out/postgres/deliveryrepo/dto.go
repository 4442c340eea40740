// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery persistence. Cancelled deliveries stay in the table as part of the
// historical record.
package deliveryrepo

import (
	"time"

	"parcelmatch/internal/core/domain/model/delivery"
	"parcelmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// CreatedAt exists only for ordering history reads and is not part of the
// domain aggregate.
type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParcelID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	PickupAddressID  uuid.UUID  `gorm:"type:uuid;not null"`
	DropoffAddressID uuid.UUID  `gorm:"type:uuid;not null"`
	PickupTime       *time.Time `gorm:"type:timestamptz"`
	DeliveryTime     *time.Time `gorm:"type:timestamptz"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	CreatedAt        time.Time  `gorm:"type:timestamptz;not null;autoCreateTime"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		ParcelID:         aggregate.ParcelID().Bytes(),
		CourierID:        aggregate.CourierID().Bytes(),
		PickupAddressID:  aggregate.PickupAddressID().Bytes(),
		DropoffAddressID: aggregate.DropoffAddressID().Bytes(),
		PickupTime:       aggregate.PickupTime(),
		DeliveryTime:     aggregate.DeliveryTime(),
		Status:           aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	pickupAddressID, err := kernel.UUIDFromBytes(dto.PickupAddressID[:])
	if err != nil {
		return nil, err
	}

	dropoffAddressID, err := kernel.UUIDFromBytes(dto.DropoffAddressID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		parcelID,
		courierID,
		pickupAddressID,
		dropoffAddressID,
		dto.PickupTime,
		dto.DeliveryTime,
		status,
	)
}
