package ports

import (
	"context"

	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for the address registry.
// Addresses are deduplicated on the identity tuple (street name, house number,
// extra info, postal code); postal codes are reference rows created on first
// use and never removed.
type AddressRepository interface {
	// Add persists a new address.
	// The address must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *address.Address) error

	// Update persists changes to an existing address, in practice only the
	// one-time coordinate fill.
	Update(ctx context.Context, aggregate *address.Address) error

	// Get retrieves an address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// GetByFields retrieves the address whose identity tuple matches the
	// given fields, or an ObjectNotFound error when no such address exists.
	GetByFields(ctx context.Context, fields address.Fields) (*address.Address, error)

	// GetAllWithoutCoordinate retrieves addresses that have not been
	// geocoded yet, up to the given limit. Used by the backfill job.
	GetAllWithoutCoordinate(ctx context.Context, limit int) ([]*address.Address, error)

	// GetPostalCode retrieves a postal code reference row by code.
	GetPostalCode(ctx context.Context, code string) (*address.PostalCode, error)

	// AddPostalCode persists a postal code reference row. Adding an already
	// known code is a no-op.
	AddPostalCode(ctx context.Context, postalCode *address.PostalCode) error
}
