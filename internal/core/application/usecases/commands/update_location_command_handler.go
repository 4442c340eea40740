package commands

import (
	"context"
	"errors"

	"parcelmatch/internal/pkg/errs"
)

// UpdateLocationCommandHandler records a courier's reported position.
// Concurrent reports for the same courier resolve last-write-wins with no
// ordering guarantee, which is acceptable because only the latest position
// is ever read.
type UpdateLocationCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateLocationCommandHandler creates a handler for location reports.
func NewUpdateLocationCommandHandler(uowFactory CourierUoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the reported position on the requesting user's courier.
func (h UpdateLocationCommandHandler) Handle(ctx context.Context, command UpdateLocationCommand) error {
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

	if err = requester.UpdateLiveLocation(command.Location()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, requester); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
