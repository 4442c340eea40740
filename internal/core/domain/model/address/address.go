package address

import (
	"errors"
	"strings"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"
)

var (
	// ErrAddressIsNotConstructed is returned when an Address instance was not
	// created through NewAddress or RestoreAddress.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress or RestoreAddress")

	// ErrCoordinateAlreadySet is returned when a caller attempts to overwrite
	// an already geocoded coordinate. Cached coordinates are immutable.
	ErrCoordinateAlreadySet = errors.New("address coordinate is already set and cannot be overwritten")
)

// Fields carries the raw postal fields describing a physical address, as
// received from a caller. City and country belong to the postal code record
// but are carried here because the geocoder needs the full postal line.
type Fields struct {
	StreetName  string
	HouseNumber string
	ExtraInfo   string
	PostalCode  string
	City        string
	Country     string
}

// Validate checks that every required field is present.
// ExtraInfo is the only optional field.
func (f Fields) Validate() error {
	var err error
	if strings.TrimSpace(f.StreetName) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("streetName"))
	}
	if strings.TrimSpace(f.HouseNumber) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("houseNumber"))
	}
	if strings.TrimSpace(f.PostalCode) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("postalCode"))
	}
	if strings.TrimSpace(f.City) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("city"))
	}
	if strings.TrimSpace(f.Country) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("country"))
	}
	return err
}

// PostalLine renders the single-line postal form consumed by the geocoder:
// "street house[, extra], city, postal code, country".
func (f Fields) PostalLine() string {
	line := f.StreetName + " " + f.HouseNumber
	if f.ExtraInfo != "" {
		line += ", " + f.ExtraInfo
	}
	return line + ", " + f.City + ", " + f.PostalCode + ", " + f.Country
}

// Address is the entity persisted by the address registry. Identity is the
// tuple (street name, house number, extra info, postal code); the coordinate
// is a geocode-once cache.
type Address struct {
	id          kernel.UUID
	streetName  string
	houseNumber string
	extraInfo   string
	postalCode  string
	coordinate  *kernel.Coordinate

	isConstructed bool
}

// NewAddress creates an Address without a coordinate. The coordinate is
// filled in later, exactly once, by the registry's geocoding step.
func NewAddress(id kernel.UUID, streetName, houseNumber, extraInfo, postalCode string) (*Address, error) {
	a := &Address{
		extraInfo:     extraInfo,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setStreetName(streetName),
		a.setHouseNumber(houseNumber),
		a.setPostalCode(postalCode),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAddress reconstructs an Address from persistence, including its
// cached coordinate when one has been geocoded.
func RestoreAddress(
	id kernel.UUID,
	streetName, houseNumber, extraInfo, postalCode string,
	coordinate *kernel.Coordinate,
) (*Address, error) {
	a, err := NewAddress(id, streetName, houseNumber, extraInfo, postalCode)
	if err != nil {
		return nil, err
	}

	if coordinate != nil {
		if err = coordinate.Validate(); err != nil {
			return nil, err
		}
		c := *coordinate
		a.coordinate = &c
	}

	return a, nil
}

// Validate ensures the Address was created through a constructor.
func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// IsEqual compares two addresses by identifier.
func (a *Address) IsEqual(other *Address) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the address identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// StreetName returns the street name component of the identity tuple.
func (a *Address) StreetName() string {
	return a.streetName
}

// HouseNumber returns the house number component of the identity tuple.
func (a *Address) HouseNumber() string {
	return a.houseNumber
}

// ExtraInfo returns the optional unit/extra component of the identity tuple.
func (a *Address) ExtraInfo() string {
	return a.extraInfo
}

// PostalCode returns the postal code the address belongs to.
func (a *Address) PostalCode() string {
	return a.postalCode
}

// Coordinate returns the cached geocoded coordinate, or nil when the address
// has not been geocoded yet.
func (a *Address) Coordinate() *kernel.Coordinate {
	if a.coordinate == nil {
		return nil
	}
	c := *a.coordinate
	return &c
}

// HasCoordinate reports whether the address has been geocoded.
func (a *Address) HasCoordinate() bool {
	return a.coordinate != nil
}

// SetCoordinate fills in the geocoded coordinate exactly once.
// Returns ErrCoordinateAlreadySet when a coordinate is already cached:
// callers must never silently replace a geocoded position with fresh data.
func (a *Address) SetCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}
	if a.coordinate != nil {
		return ErrCoordinateAlreadySet
	}

	a.coordinate = &coordinate
	return nil
}

// MatchesFields reports whether this address has the identity tuple described
// by the given fields.
func (a *Address) MatchesFields(f Fields) bool {
	return a.streetName == f.StreetName &&
		a.houseNumber == f.HouseNumber &&
		a.extraInfo == f.ExtraInfo &&
		a.postalCode == f.PostalCode
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setStreetName(streetName string) error {
	if strings.TrimSpace(streetName) == "" {
		return errs.NewValueIsRequiredError("streetName")
	}
	a.streetName = streetName
	return nil
}

func (a *Address) setHouseNumber(houseNumber string) error {
	if strings.TrimSpace(houseNumber) == "" {
		return errs.NewValueIsRequiredError("houseNumber")
	}
	a.houseNumber = houseNumber
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if strings.TrimSpace(postalCode) == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}
