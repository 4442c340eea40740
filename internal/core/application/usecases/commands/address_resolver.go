package commands

import (
	"context"
	"errors"

	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/ports"
	"parcelmatch/internal/pkg/errs"
)

// AddressResolver turns raw postal fields into persisted, geocoded address
// records. It is shared by every command that accepts address input.
//
// Resolution is split in two phases so no transaction ever holds row locks
// across a network call:
//
//	resolved, err := resolver.Resolve(ctx, fields) // geocodes if needed, no tx
//	// ... uow.Begin(ctx)
//	addr, err := resolver.Store(ctx, uow.AddressRepository(), resolved)
//
// Each distinct physical address is geocoded at most once: Resolve checks
// the registry first and skips the geocoder entirely on a cache hit.
type AddressResolver struct {
	addresses ports.AddressRepository
	geocoder  ports.GeocoderClient
}

// NewAddressResolver creates an AddressResolver. The address repository is a
// plain non-transactional reader used only for the cache-hit check.
func NewAddressResolver(addresses ports.AddressRepository, geocoder ports.GeocoderClient) AddressResolver {
	return AddressResolver{
		addresses: addresses,
		geocoder:  geocoder,
	}
}

// ResolvedAddress carries address fields together with the coordinate they
// resolve to, ready to be stored inside a transaction.
type ResolvedAddress struct {
	fields     address.Fields
	coordinate kernel.Coordinate
}

// Fields returns the postal fields the coordinate was resolved for.
func (r ResolvedAddress) Fields() address.Fields {
	return r.fields
}

// Coordinate returns the resolved coordinate.
func (r ResolvedAddress) Coordinate() kernel.Coordinate {
	return r.coordinate
}

// Resolve validates the fields and determines their coordinate, consulting
// the geocoder only when the registry holds no cached coordinate for the
// identity tuple. Must be called before the enclosing transaction begins.
// Returns a GeocodingFailedError when the external call errors, times out,
// or yields no usable coordinate pair.
func (r AddressResolver) Resolve(ctx context.Context, fields address.Fields) (ResolvedAddress, error) {
	if err := fields.Validate(); err != nil {
		return ResolvedAddress{}, err
	}

	existing, err := r.addresses.GetByFields(ctx, fields)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return ResolvedAddress{}, err
	}
	if err == nil && existing.HasCoordinate() {
		return ResolvedAddress{fields: fields, coordinate: *existing.Coordinate()}, nil
	}

	coordinate, err := r.geocoder.Geocode(ctx, fields.PostalLine())
	if err != nil {
		return ResolvedAddress{}, errs.NewGeocodingFailedErrorWithCause(fields.PostalLine(), err)
	}
	if err = coordinate.Validate(); err != nil {
		return ResolvedAddress{}, errs.NewGeocodingFailedErrorWithCause(fields.PostalLine(), err)
	}

	return ResolvedAddress{fields: fields, coordinate: coordinate}, nil
}

// Store persists the resolved address inside the caller's transaction and
// returns the stored record. The identity tuple is re-read through the
// transactional repository so concurrent resolutions of the same address
// converge on a single row. A cached coordinate is never overwritten; the
// postal code reference row is created on first use.
func (r AddressResolver) Store(
	ctx context.Context,
	repo ports.AddressRepository,
	resolved ResolvedAddress,
) (*address.Address, error) {
	if err := resolved.fields.Validate(); err != nil {
		return nil, err
	}
	if err := resolved.coordinate.Validate(); err != nil {
		return nil, err
	}

	existing, err := repo.GetByFields(ctx, resolved.fields)
	switch {
	case err == nil:
		if existing.HasCoordinate() {
			return existing, nil
		}
		if err = existing.SetCoordinate(resolved.coordinate); err != nil {
			return nil, err
		}
		if err = repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil

	case errors.Is(err, errs.ErrObjectNotFound):
		if err = r.ensurePostalCode(ctx, repo, resolved.fields); err != nil {
			return nil, err
		}

		created, err := address.NewAddress(
			kernel.NewUUID(),
			resolved.fields.StreetName,
			resolved.fields.HouseNumber,
			resolved.fields.ExtraInfo,
			resolved.fields.PostalCode,
		)
		if err != nil {
			return nil, err
		}
		if err = created.SetCoordinate(resolved.coordinate); err != nil {
			return nil, err
		}
		if err = repo.Add(ctx, created); err != nil {
			return nil, err
		}
		return created, nil

	default:
		return nil, err
	}
}

func (r AddressResolver) ensurePostalCode(
	ctx context.Context,
	repo ports.AddressRepository,
	fields address.Fields,
) error {
	_, err := repo.GetPostalCode(ctx, fields.PostalCode)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	postalCode, err := address.NewPostalCode(fields.PostalCode, fields.City, fields.Country)
	if err != nil {
		return err
	}

	return repo.AddPostalCode(ctx, postalCode)
}
