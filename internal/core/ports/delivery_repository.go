package ports

import (
	"context"

	"parcelmatch/internal/core/domain/model/delivery"
	"parcelmatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Cancelled deliveries stay in storage as part of the historical record.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetLiveByParcelID retrieves the single non-cancelled delivery for a
	// parcel, if one exists. At most one live delivery exists per parcel.
	GetLiveByParcelID(ctx context.Context, parcelID kernel.UUID) (*delivery.Delivery, error)

	// GetAllByCourierID retrieves all deliveries ever assigned to a courier,
	// newest first, cancelled ones included.
	GetAllByCourierID(ctx context.Context, courierID kernel.UUID) ([]*delivery.Delivery, error)
}
