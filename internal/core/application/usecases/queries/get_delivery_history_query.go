package queries

import (
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/delivery"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
	"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
)

// GetDeliveryHistoryQuery retrieves every delivery ever assigned to the
// courier profile of a user, newest first, cancelled ones included.
type GetDeliveryHistoryQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryHistoryQuery creates a query for a user's delivery history.
func NewGetDeliveryHistoryQuery(userID kernel.UUID) (GetDeliveryHistoryQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetDeliveryHistoryQuery{}, err
	}

	return GetDeliveryHistoryQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// UserID returns the identifier of the user whose history is requested.
func (q GetDeliveryHistoryQuery) UserID() kernel.UUID {
	return q.userID
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

// GetDeliveryHistoryQueryResponse represents one delivery in a courier's history.
type GetDeliveryHistoryQueryResponse struct {
	DeliveryID   kernel.UUID
	ParcelID     kernel.UUID
	Description  string
	Status       delivery.Status
	PickupTime   *time.Time
	DeliveryTime *time.Time
}
