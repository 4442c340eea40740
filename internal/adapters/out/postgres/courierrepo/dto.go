// Package courierrepo provides data transfer objects and mapping functions for
// courier persistence. A courier row carries the optional sticky route, the
// matching radii and the last reported live location.
package courierrepo

import (
	"parcelmatch/internal/core/domain/model/courier"
	"parcelmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Route address references and the live location are nullable: a freshly
// onboarded courier has neither.
type CourierDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID               uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	StartAddressID       *uuid.UUID `gorm:"type:uuid"`
	DestinationAddressID *uuid.UUID `gorm:"type:uuid"`
	PickupRadiusKm       float64    `gorm:"type:double precision;not null"`
	DropoffRadiusKm      float64    `gorm:"type:double precision;not null"`
	Available            bool       `gorm:"not null"`
	LiveLat              *float64   `gorm:"type:double precision"`
	LiveLng              *float64   `gorm:"type:double precision"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          aggregate.UserID().Bytes(),
		PickupRadiusKm:  aggregate.PickupRadiusKm(),
		DropoffRadiusKm: aggregate.DropoffRadiusKm(),
		Available:       aggregate.IsAvailable(),
	}

	if startID := aggregate.StartAddressID(); startID != nil {
		raw := startID.Bytes()
		dto.StartAddressID = &raw
	}
	if destID := aggregate.DestinationAddressID(); destID != nil {
		raw := destID.Bytes()
		dto.DestinationAddressID = &raw
	}

	if location := aggregate.LiveLocation(); location != nil {
		lat := location.Lat()
		lng := location.Lng()
		dto.LiveLat = &lat
		dto.LiveLng = &lng
	}

	return dto
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var startAddressID, destinationAddressID *kernel.UUID
	if dto.StartAddressID != nil {
		startID, idErr := kernel.UUIDFromBytes((*dto.StartAddressID)[:])
		if idErr != nil {
			return nil, idErr
		}
		startAddressID = &startID
	}
	if dto.DestinationAddressID != nil {
		destID, idErr := kernel.UUIDFromBytes((*dto.DestinationAddressID)[:])
		if idErr != nil {
			return nil, idErr
		}
		destinationAddressID = &destID
	}

	var liveLocation *kernel.Coordinate
	if dto.LiveLat != nil && dto.LiveLng != nil {
		location, locErr := kernel.NewCoordinate(*dto.LiveLat, *dto.LiveLng)
		if locErr != nil {
			return nil, locErr
		}
		liveLocation = &location
	}

	return courier.RestoreCourier(
		id,
		userID,
		startAddressID,
		destinationAddressID,
		dto.PickupRadiusKm,
		dto.DropoffRadiusKm,
		dto.Available,
		liveLocation,
	)
}
