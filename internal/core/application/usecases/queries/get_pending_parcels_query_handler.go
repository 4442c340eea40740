package queries

import (
	"context"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingParcelsQueryHandler reads the matching backlog from the database.
type GetPendingParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingParcelsQueryHandler creates a handler for pending parcel queries.
func NewGetPendingParcelsQueryHandler(db *gorm.DB) GetPendingParcelsQueryHandler {
	return GetPendingParcelsQueryHandler{db: db}
}

// Handle executes the query and returns pending parcels, oldest first.
func (h GetPendingParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingParcelsQuery,
) ([]GetPendingParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetPendingParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.description,
			pickup.lat,
			pickup.lng,
			p.created_at
		FROM parcels p
		JOIN addresses pickup ON pickup.id = p.pickup_address_id
		WHERE p.status = ?
		ORDER BY p.created_at ASC
	`, parcel.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var description string
		var lat, lng *float64
		var createdAt time.Time

		err = rows.Scan(&id, &description, &lat, &lng, &createdAt)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var pickupLocation *kernel.Coordinate
		if lat != nil && lng != nil {
			location, locErr := kernel.NewCoordinate(*lat, *lng)
			if locErr != nil {
				return nil, locErr
			}
			pickupLocation = &location
		}

		parcels = append(parcels, GetPendingParcelsQueryResponse{
			ID:             parcelID,
			Description:    description,
			PickupLocation: pickupLocation,
			CreatedAt:      createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
