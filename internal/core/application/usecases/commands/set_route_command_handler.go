package commands

import (
	"context"
	"errors"

	"parcelmatch/internal/pkg/errs"
)

// ErrCourierNotFound is returned when the requesting user has no courier profile.
var ErrCourierNotFound = errors.New("courier not found")

// SetRouteCommandHandler persists a courier's declared route. Both route
// addresses are resolved and geocoded before the transaction opens, so a
// geocoding failure aborts the operation without touching the courier.
type SetRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	resolver   AddressResolver
}

// NewSetRouteCommandHandler creates a handler for route declaration.
func NewSetRouteCommandHandler(uowFactory RouteUoWFactory, resolver AddressResolver) SetRouteCommandHandler {
	return SetRouteCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle resolves both route addresses and attaches them to the courier.
// Setting the same route twice is a no-op beyond the address cache hits.
func (h SetRouteCommandHandler) Handle(ctx context.Context, command SetRouteCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	resolvedStart, err := h.resolver.Resolve(ctx, command.Start())
	if err != nil {
		return err
	}
	resolvedDestination, err := h.resolver.Resolve(ctx, command.Destination())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	addressRepo := uow.AddressRepository()

	startAddress, err := h.resolver.Store(ctx, addressRepo, resolvedStart)
	if err != nil {
		return err
	}
	destinationAddress, err := h.resolver.Store(ctx, addressRepo, resolvedDestination)
	if err != nil {
		return err
	}

	if err = requester.SetRoute(startAddress.ID(), destinationAddress.ID()); err != nil {
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
