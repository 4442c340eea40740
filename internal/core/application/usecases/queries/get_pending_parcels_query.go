package queries

import (
	"errors"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/guard"
)

var ErrGetPendingParcelsQueryIsNotConstructed = errors.New(
	"GetPendingParcelsQuery must be created via NewGetPendingParcelsQuery constructor",
)

// GetPendingParcelsQuery retrieves all parcels still awaiting assignment,
// oldest first. Used for monitoring the matching backlog.
type GetPendingParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingParcelsQuery creates a query to retrieve pending parcels.
func NewGetPendingParcelsQuery() GetPendingParcelsQuery {
	return GetPendingParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingParcelsQueryIsNotConstructed)
}

// GetPendingParcelsQueryResponse represents one parcel awaiting assignment.
// PickupLocation is nil while the pickup address waits for geocoding.
type GetPendingParcelsQueryResponse struct {
	ID             kernel.UUID
	Description    string
	PickupLocation *kernel.Coordinate
	CreatedAt      time.Time
}
