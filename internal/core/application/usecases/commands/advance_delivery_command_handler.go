package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parcelmatch/internal/core/domain/model/delivery"
	"parcelmatch/internal/pkg/errs"
)

// ErrInvalidTransition is returned when the requested step does not follow
// from the delivery's current status. The delivery and parcel are left
// untouched.
var ErrInvalidTransition = errors.New("delivery cannot make the requested transition")

// AdvanceDeliveryCommandHandler performs the joint delivery/parcel status
// transitions: PickedUp moves the parcel to InTransit and records the pickup
// time, Delivered moves it to Delivered and records the delivery time. Both
// writes happen in one transaction or not at all.
//
// A delivery whose parcel row has vanished is an unrecoverable consistency
// violation: it is logged loudly and surfaced, never silently repaired.
type AdvanceDeliveryCommandHandler struct {
	uowFactory LifecycleUoWFactory
	logger     *slog.Logger
	now        func() time.Time
}

// NewAdvanceDeliveryCommandHandler creates a handler for delivery progression.
func NewAdvanceDeliveryCommandHandler(uowFactory LifecycleUoWFactory, logger *slog.Logger) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle advances the delivery to the command's target status, stamping the
// corresponding timestamp with the command's time, or the current time when
// none was supplied.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, command AdvanceDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	advanced, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()

	carried, err := parcelRepo.GetForUpdate(ctx, advanced.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		consistency := errs.NewInconsistentStateErrorWithCause(
			fmt.Sprintf("delivery %s references missing parcel %s",
				advanced.ID(), advanced.ParcelID()), err)
		h.logger.ErrorContext(ctx, "delivery references a vanished parcel",
			"deliveryId", advanced.ID().String(), "parcelId", advanced.ParcelID().String())
		return consistency
	}
	if err != nil {
		return err
	}

	at := h.now().UTC()
	if supplied := command.At(); supplied != nil {
		at = supplied.UTC()
	}

	switch command.Target() {
	case delivery.PickedUp:
		if err = advanced.MarkPickedUp(at); err != nil {
			return ErrInvalidTransition
		}
		if err = carried.MarkInTransit(); err != nil {
			return ErrInvalidTransition
		}
	case delivery.Delivered:
		if err = advanced.MarkDelivered(at); err != nil {
			return ErrInvalidTransition
		}
		if err = carried.MarkDelivered(); err != nil {
			return ErrInvalidTransition
		}
	default:
		return ErrInvalidTransition
	}

	if err = deliveryRepo.Update(ctx, advanced); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, carried); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

