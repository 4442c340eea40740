package commands

import (
	"context"
	"errors"

	"parcelmatch/internal/core/domain/model/courier"
	"parcelmatch/internal/pkg/errs"
)

// ErrCourierAlreadyOnboarded is returned when the user already has a courier profile.
var ErrCourierAlreadyOnboarded = errors.New("user is already registered as a courier")

// OnboardCourierCommandHandler handles courier registration.
// A user holds at most one courier profile; onboarding an already registered
// user fails with ErrCourierAlreadyOnboarded.
type OnboardCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewOnboardCourierCommandHandler creates a handler for courier onboarding.
func NewOnboardCourierCommandHandler(uowFactory CourierUoWFactory) OnboardCourierCommandHandler {
	return OnboardCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the onboarding command. Creates a courier with default
// radii, availability on and no route, inside a single transaction.
func (h OnboardCourierCommandHandler) Handle(ctx context.Context, command OnboardCourierCommand) error {
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

	_, err := courierRepo.GetByUserID(ctx, command.UserID())
	if err == nil {
		return ErrCourierAlreadyOnboarded
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newCourier, err := courier.NewCourier(command.CourierID(), command.UserID())
	if err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, newCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
