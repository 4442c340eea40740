package commands

import (
	"context"
	"errors"

	"parcelmatch/internal/core/domain/model/courier"
	"parcelmatch/internal/core/domain/model/delivery"
	"parcelmatch/internal/pkg/errs"
)

var (
	// ErrParcelNotAvailable is returned when the parcel is no longer pending,
	// typically because a concurrent courier claimed it first.
	ErrParcelNotAvailable = errors.New("parcel is not available for assignment")

	// ErrCourierNotAvailable is returned when the claiming courier has
	// switched their availability off.
	ErrCourierNotAvailable = errors.New("courier is not available")

	// ErrOwnParcel is returned when a courier tries to claim their own parcel.
	ErrOwnParcel = errors.New("courier cannot deliver their own parcel")
)

// AssignDeliveryCommandHandler claims a pending parcel for a courier.
//
// The parcel row is read FOR UPDATE, so concurrent claims serialize on the
// row lock: the first transaction to commit wins and every other caller
// observes a non-pending parcel and fails with ErrParcelNotAvailable. This
// is what keeps "at most one live delivery per parcel" true without any
// advisory locking.
type AssignDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(uowFactory DispatchUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle atomically creates the delivery and moves the parcel to Assigned.
// The delivery snapshots the parcel's pickup and dropoff address references
// at claim time.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	claimer, err := courierRepo.GetByUserID(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCourierNotFound
	}
	if err != nil {
		return err
	}
	if !claimer.IsAvailable() {
		return ErrCourierNotAvailable
	}
	if !claimer.HasRoute() {
		return courier.ErrRouteNotSet
	}

	parcelRepo := uow.ParcelRepository()

	claimedParcel, err := parcelRepo.GetForUpdate(ctx, command.ParcelID())
	if err != nil {
		return err
	}
	if claimedParcel.IsOwnedBy(claimer.UserID()) {
		return ErrOwnParcel
	}

	if err = claimedParcel.Assign(); err != nil {
		return ErrParcelNotAvailable
	}

	newDelivery, err := delivery.NewDelivery(
		command.DeliveryID(),
		claimedParcel.ID(),
		claimer.ID(),
		claimedParcel.PickupAddressID(),
		claimedParcel.DropoffAddressID(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, claimedParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
