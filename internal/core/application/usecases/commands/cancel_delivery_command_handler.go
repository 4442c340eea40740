package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parcelmatch/internal/pkg/errs"
)

// CancelDeliveryCommandHandler calls off an in-flight delivery. The delivery
// row is kept in Cancelled status as part of the historical record; the
// parcel reopens to Pending so other couriers can claim it.
type CancelDeliveryCommandHandler struct {
	uowFactory LifecycleUoWFactory
	logger     *slog.Logger
}

// NewCancelDeliveryCommandHandler creates a handler for delivery cancellation.
func NewCancelDeliveryCommandHandler(uowFactory LifecycleUoWFactory, logger *slog.Logger) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle cancels the delivery and reopens its parcel in one transaction.
// Cancelling a completed or already cancelled delivery fails with
// ErrInvalidTransition and changes nothing.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, command CancelDeliveryCommand) error {
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

	cancelled, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()

	reopened, err := parcelRepo.GetForUpdate(ctx, cancelled.ParcelID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		consistency := errs.NewInconsistentStateErrorWithCause(
			fmt.Sprintf("delivery %s references missing parcel %s",
				cancelled.ID(), cancelled.ParcelID()), err)
		h.logger.ErrorContext(ctx, "delivery references a vanished parcel",
			"deliveryId", cancelled.ID().String(), "parcelId", cancelled.ParcelID().String())
		return consistency
	}
	if err != nil {
		return err
	}

	if err = cancelled.Cancel(); err != nil {
		return ErrInvalidTransition
	}
	if err = reopened.Reopen(); err != nil {
		return ErrInvalidTransition
	}

	if err = deliveryRepo.Update(ctx, cancelled); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, reopened); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
