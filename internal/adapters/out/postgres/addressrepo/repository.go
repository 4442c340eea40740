package addressrepo

import (
	"context"
	"errors"

	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB, tracker aggregateTracker) *GormAddressRepository {
	return &GormAddressRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new address to the database.
func (r *GormAddressRepository) Add(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing address to the database.
// In practice the only mutable part is the one-time coordinate fill.
func (r *GormAddressRepository) Update(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an address by ID.
func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByFields retrieves the address whose identity tuple matches the given fields.
// Returns ObjectNotFoundError when the registry has no such address.
func (r *GormAddressRepository) GetByFields(
	ctx context.Context,
	fields address.Fields,
) (*address.Address, error) {
	var dto AddressDTO
	err := r.db.WithContext(ctx).
		Where("street_name = ? AND house_number = ? AND extra_info = ? AND postal_code = ?",
			fields.StreetName, fields.HouseNumber, fields.ExtraInfo, fields.PostalCode).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", fields.PostalLine())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllWithoutCoordinate retrieves addresses that have not been geocoded yet,
// oldest rows first, up to the given limit.
func (r *GormAddressRepository) GetAllWithoutCoordinate(
	ctx context.Context,
	limit int,
) ([]*address.Address, error) {
	var dtos []AddressDTO
	if err := r.db.WithContext(ctx).
		Where("lat IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	addresses := make([]*address.Address, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}

	return addresses, nil
}

// GetPostalCode retrieves a postal code reference row by code.
func (r *GormAddressRepository) GetPostalCode(ctx context.Context, code string) (*address.PostalCode, error) {
	var dto PostalCodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("postalCode", code)
		}
		return nil, err
	}

	return postalCodeToDomain(dto)
}

// AddPostalCode persists a postal code reference row.
// Adding an already known code is a no-op.
func (r *GormAddressRepository) AddPostalCode(ctx context.Context, postalCode *address.PostalCode) error {
	if err := postalCode.Validate(); err != nil {
		return err
	}

	dto := postalCodeFromDomain(postalCode)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}
