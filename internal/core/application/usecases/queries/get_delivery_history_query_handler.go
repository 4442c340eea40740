package queries

import (
	"context"
	"time"

	"parcelmatch/internal/core/domain/model/delivery"
	"parcelmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryHistoryQueryHandler reads a courier's delivery history from the
// database. Users without a courier profile simply get an empty history.
type GetDeliveryHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryHistoryQueryHandler creates a handler for delivery history queries.
func NewGetDeliveryHistoryQueryHandler(db *gorm.DB) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{db: db}
}

// Handle executes the query and returns the user's deliveries, newest first.
func (h GetDeliveryHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryHistoryQuery,
) ([]GetDeliveryHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetDeliveryHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.parcel_id,
			p.description,
			d.status,
			d.pickup_time,
			d.delivery_time
		FROM deliveries d
		JOIN couriers c ON c.id = d.courier_id
		JOIN parcels p ON p.id = d.parcel_id
		WHERE c.user_id = ?
		ORDER BY d.created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, parcelID uuid.UUID
		var description, statusRaw string
		var pickupTime, deliveryTime *time.Time

		err = rows.Scan(&id, &parcelID, &description, &statusRaw, &pickupTime, &deliveryTime)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		parcelUUID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}

		status, statusErr := delivery.StatusFromString(statusRaw)
		if statusErr != nil {
			return nil, statusErr
		}

		history = append(history, GetDeliveryHistoryQueryResponse{
			DeliveryID:   deliveryID,
			ParcelID:     parcelUUID,
			Description:  description,
			Status:       status,
			PickupTime:   pickupTime,
			DeliveryTime: deliveryTime,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
