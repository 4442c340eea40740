package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parcelmatch/internal/core/domain/model/delivery"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/parcel"
	"parcelmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler resolves a parcel's reportable location from the
// database in a single read.
//
// Location selection by parcel status:
//   - pending, assigned: the pickup address coordinate
//   - in_transit: the assigned courier's live position, falling back to the
//     pickup address when the courier has not reported a position yet
//   - delivered: the dropoff address coordinate
//
// When the selected source has no coordinate the parcel is not trackable.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for parcel tracking queries.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the query and returns the parcel's best-known location.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.status,
			pickup.lat, pickup.lng,
			dropoff.lat, dropoff.lng,
			c.live_lat, c.live_lng
		FROM parcels p
		JOIN addresses pickup ON pickup.id = p.pickup_address_id
		JOIN addresses dropoff ON dropoff.id = p.dropoff_address_id
		LEFT JOIN deliveries d ON d.parcel_id = p.id AND d.status <> ?
		LEFT JOIN couriers c ON c.id = d.courier_id
		WHERE p.id = ?
	`, delivery.Cancelled.String(), query.ParcelID().Bytes()).Row()

	var statusRaw string
	var pickupLat, pickupLng, dropoffLat, dropoffLng, liveLat, liveLng *float64
	err := row.Scan(&statusRaw, &pickupLat, &pickupLng, &dropoffLat, &dropoffLng, &liveLat, &liveLng)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("parcel", query.ParcelID().String())
		}
		return TrackParcelQueryResponse{}, err
	}

	status, err := parcel.StatusFromString(statusRaw)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	lat, lng := h.locate(status, pickupLat, pickupLng, dropoffLat, dropoffLng, liveLat, liveLng)
	if lat == nil || lng == nil {
		return TrackParcelQueryResponse{}, fmt.Errorf("parcel %s: %w", query.ParcelID(), ErrParcelNotTrackable)
	}

	location, err := kernel.NewCoordinate(*lat, *lng)
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	return TrackParcelQueryResponse{
		ParcelID: query.ParcelID(),
		Status:   status,
		Location: location,
	}, nil
}

// locate picks the coordinate source matching the parcel's lifecycle stage.
func (h TrackParcelQueryHandler) locate(
	status parcel.Status,
	pickupLat, pickupLng, dropoffLat, dropoffLng, liveLat, liveLng *float64,
) (*float64, *float64) {
	switch status {
	case parcel.Pending, parcel.Assigned:
		return pickupLat, pickupLng
	case parcel.InTransit:
		if liveLat != nil && liveLng != nil {
			return liveLat, liveLng
		}
		return pickupLat, pickupLng
	case parcel.Delivered:
		return dropoffLat, dropoffLng
	case parcel.Unknown:
		return nil, nil
	}
	return nil, nil
}
