// Package addressrepo provides data transfer objects and mapping functions for
// address persistence. Addresses are deduplicated on their identity tuple and
// carry a nullable cached coordinate filled in once by geocoding.
package addressrepo

import (
	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AddressDTO represents the database structure for persisting address aggregates.
// The identity tuple (street name, house number, extra info, postal code) is
// unique so the registry never stores the same physical address twice.
type AddressDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StreetName  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_addresses_identity"`
	HouseNumber string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_addresses_identity"`
	ExtraInfo   string    `gorm:"type:varchar(255);uniqueIndex:idx_addresses_identity"`
	PostalCode  string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_addresses_identity;index"`
	Lat         *float64  `gorm:"type:double precision"`
	Lng         *float64  `gorm:"type:double precision"`
}

// TableName specifies the database table name for address entities.
func (AddressDTO) TableName() string {
	return "addresses"
}

// PostalCodeDTO represents the reference table of known postal codes.
// Rows are created on first use and never removed.
type PostalCodeDTO struct {
	Code    string `gorm:"type:varchar(16);primaryKey"`
	City    string `gorm:"type:varchar(255);not null"`
	Country string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for postal code entities.
func (PostalCodeDTO) TableName() string {
	return "postal_codes"
}

// fromDomain converts an address domain aggregate to its database representation.
func fromDomain(aggregate *address.Address) AddressDTO {
	dto := AddressDTO{
		ID:          aggregate.ID().Bytes(),
		StreetName:  aggregate.StreetName(),
		HouseNumber: aggregate.HouseNumber(),
		ExtraInfo:   aggregate.ExtraInfo(),
		PostalCode:  aggregate.PostalCode(),
	}

	if coordinate := aggregate.Coordinate(); coordinate != nil {
		lat := coordinate.Lat()
		lng := coordinate.Lng()
		dto.Lat = &lat
		dto.Lng = &lng
	}

	return dto
}

// toDomain converts a database DTO to an address domain aggregate.
func toDomain(dto AddressDTO) (*address.Address, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var coordinate *kernel.Coordinate
	if dto.Lat != nil && dto.Lng != nil {
		c, coordErr := kernel.NewCoordinate(*dto.Lat, *dto.Lng)
		if coordErr != nil {
			return nil, coordErr
		}
		coordinate = &c
	}

	return address.RestoreAddress(id, dto.StreetName, dto.HouseNumber, dto.ExtraInfo, dto.PostalCode, coordinate)
}

// postalCodeFromDomain converts a postal code entity to its database representation.
func postalCodeFromDomain(postalCode *address.PostalCode) PostalCodeDTO {
	return PostalCodeDTO{
		Code:    postalCode.Code(),
		City:    postalCode.City(),
		Country: postalCode.Country(),
	}
}

// postalCodeToDomain converts a database DTO to a postal code entity.
func postalCodeToDomain(dto PostalCodeDTO) (*address.PostalCode, error) {
	return address.NewPostalCode(dto.Code, dto.City, dto.Country)
}
