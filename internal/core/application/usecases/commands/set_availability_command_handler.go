package commands

import (
	"context"
	"errors"

	"parcelmatch/internal/pkg/errs"
)

// SetAvailabilityCommandHandler flips a courier's availability flag.
type SetAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetAvailabilityCommandHandler creates a handler for availability changes.
func NewSetAvailabilityCommandHandler(uowFactory CourierUoWFactory) SetAvailabilityCommandHandler {
	return SetAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change for the requesting user's courier.
func (h SetAvailabilityCommandHandler) Handle(ctx context.Context, command SetAvailabilityCommand) error {
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

	requester, err := courierRepo.GetByUserID(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrCourierNotFound
	}
	if err != nil {
		return err
	}

	requester.SetAvailability(command.Available())

	if err = courierRepo.Update(ctx, requester); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
