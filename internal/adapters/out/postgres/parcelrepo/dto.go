// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. Parcel status is stored in its wire form so rows stay
// readable under direct inspection.
package parcelrepo

import (
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
type ParcelDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;index"`
	PickupAddressID  uuid.UUID `gorm:"type:uuid;not null"`
	DropoffAddressID uuid.UUID `gorm:"type:uuid;not null"`
	Description      string    `gorm:"type:text;not null"`
	ActionType       string    `gorm:"type:varchar(16);not null"`
	Category         string    `gorm:"type:varchar(16);not null"`
	Size             string    `gorm:"type:varchar(16);not null"`
	Status           string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt        time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:               aggregate.ID().Bytes(),
		OwnerID:          aggregate.OwnerID().Bytes(),
		PickupAddressID:  aggregate.PickupAddressID().Bytes(),
		DropoffAddressID: aggregate.DropoffAddressID().Bytes(),
		Description:      aggregate.Description(),
		ActionType:       string(aggregate.ActionType()),
		Category:         string(aggregate.Category()),
		Size:             string(aggregate.Size()),
		Status:           aggregate.Status().String(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
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

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		ownerID,
		pickupAddressID,
		dropoffAddressID,
		dto.Description,
		parcel.ActionType(dto.ActionType),
		parcel.Category(dto.Category),
		parcel.Size(dto.Size),
		status,
		dto.CreatedAt,
	)
}
