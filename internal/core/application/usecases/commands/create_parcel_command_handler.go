package commands

import (
	"context"

	"parcelmatch/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler registers a new parcel in Pending status.
// Both addresses are resolved and geocoded before the transaction opens;
// a geocoding failure aborts the operation with no partial writes.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	resolver   AddressResolver
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory, resolver AddressResolver) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
	}
}

// Handle resolves the pickup and dropoff addresses, then persists the
// address rows and the Pending parcel in one transaction.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, command CreateParcelCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	resolvedPickup, err := h.resolver.Resolve(ctx, command.Pickup())
	if err != nil {
		return err
	}
	resolvedDropoff, err := h.resolver.Resolve(ctx, command.Dropoff())
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

	addressRepo := uow.AddressRepository()

	pickupAddress, err := h.resolver.Store(ctx, addressRepo, resolvedPickup)
	if err != nil {
		return err
	}
	dropoffAddress, err := h.resolver.Store(ctx, addressRepo, resolvedDropoff)
	if err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		command.ParcelID(),
		command.OwnerID(),
		pickupAddress.ID(),
		dropoffAddress.ID(),
		command.Description(),
		command.ActionType(),
		command.Category(),
		command.Size(),
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
