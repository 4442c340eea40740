package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parcelmatch/internal/core/domain/model/courier"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/parcel"
	"parcelmatch/internal/core/domain/services"
	"parcelmatch/internal/core/ports"
	"parcelmatch/internal/pkg/errs"
)

// SearchParcelsCommandHandler finds pending parcels matching a courier's
// route. Despite being mostly a read, this is a command: the resolved route
// (and any radii override) is persisted on the courier as a side effect, so
// the next search without an explicit route reuses it.
//
// Matching rules:
//   - only Pending parcels are considered
//   - a courier never sees their own parcels
//   - a candidate whose pickup or dropoff coordinate is unavailable is
//     logged and skipped, never fatal; the backfill job repairs such
//     addresses out of band
//   - a failure to establish the requesting courier's own route coordinates
//     is fatal and surfaces as a geocoding failure
type SearchParcelsCommandHandler struct {
	uowFactory MatchingUoWFactory
	resolver   AddressResolver
	matcher    services.RouteMatcher
	logger     *slog.Logger
}

// NewSearchParcelsCommandHandler creates a handler for route-based parcel search.
func NewSearchParcelsCommandHandler(
	uowFactory MatchingUoWFactory,
	resolver AddressResolver,
	logger *slog.Logger,
) SearchParcelsCommandHandler {
	return SearchParcelsCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		matcher:    services.NewRouteMatcher(),
		logger:     logger,
	}
}

// Handle runs the search and returns the matching parcels, unordered.
func (h SearchParcelsCommandHandler) Handle(
	ctx context.Context,
	command SearchParcelsCommand,
) ([]*parcel.Parcel, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	var resolvedStart, resolvedDestination ResolvedAddress
	if command.HasRoute() {
		var err error
		resolvedStart, err = h.resolver.Resolve(ctx, *command.Start())
		if err != nil {
			return nil, err
		}
		resolvedDestination, err = h.resolver.Resolve(ctx, *command.Destination())
		if err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()

	requester, err := courierRepo.GetByUserID(ctx, command.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrCourierNotFound
	}
	if err != nil {
		return nil, err
	}

	addressRepo := uow.AddressRepository()

	routeStart, routeEnd, err := h.establishRoute(ctx, addressRepo, requester,
		command, resolvedStart, resolvedDestination)
	if err != nil {
		return nil, err
	}

	if err = h.applyRadii(requester, command); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, requester); err != nil {
		return nil, err
	}

	candidates, err := uow.ParcelRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	matches := h.filterCandidates(ctx, addressRepo, requester, routeStart, routeEnd, candidates)

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return matches, nil
}

// establishRoute stores an override route on the courier, or loads the
// sticky one, and returns its endpoint coordinates.
func (h SearchParcelsCommandHandler) establishRoute(
	ctx context.Context,
	addressRepo ports.AddressRepository,
	requester *courier.Courier,
	command SearchParcelsCommand,
	resolvedStart, resolvedDestination ResolvedAddress,
) (kernel.Coordinate, kernel.Coordinate, error) {
	if command.HasRoute() {
		startAddress, err := h.resolver.Store(ctx, addressRepo, resolvedStart)
		if err != nil {
			return kernel.Coordinate{}, kernel.Coordinate{}, err
		}
		destinationAddress, err := h.resolver.Store(ctx, addressRepo, resolvedDestination)
		if err != nil {
			return kernel.Coordinate{}, kernel.Coordinate{}, err
		}
		if err = requester.SetRoute(startAddress.ID(), destinationAddress.ID()); err != nil {
			return kernel.Coordinate{}, kernel.Coordinate{}, err
		}
		return resolvedStart.Coordinate(), resolvedDestination.Coordinate(), nil
	}

	if !requester.HasRoute() {
		return kernel.Coordinate{}, kernel.Coordinate{}, courier.ErrRouteNotSet
	}

	startCoordinate, err := h.routeCoordinate(ctx, addressRepo, *requester.StartAddressID())
	if err != nil {
		return kernel.Coordinate{}, kernel.Coordinate{}, err
	}
	endCoordinate, err := h.routeCoordinate(ctx, addressRepo, *requester.DestinationAddressID())
	if err != nil {
		return kernel.Coordinate{}, kernel.Coordinate{}, err
	}

	return startCoordinate, endCoordinate, nil
}

// routeCoordinate loads a route endpoint's cached coordinate. The requester's
// own route must be geocoded, so a missing coordinate is fatal here.
func (h SearchParcelsCommandHandler) routeCoordinate(
	ctx context.Context,
	addressRepo ports.AddressRepository,
	addressID kernel.UUID,
) (kernel.Coordinate, error) {
	routeAddress, err := addressRepo.Get(ctx, addressID)
	if err != nil {
		return kernel.Coordinate{}, err
	}
	if !routeAddress.HasCoordinate() {
		return kernel.Coordinate{}, errs.NewGeocodingFailedError(
			fmt.Sprintf("%s %s, %s", routeAddress.StreetName(), routeAddress.HouseNumber(), routeAddress.PostalCode()))
	}
	return *routeAddress.Coordinate(), nil
}

func (h SearchParcelsCommandHandler) applyRadii(requester *courier.Courier, command SearchParcelsCommand) error {
	if command.PickupRadiusKm() == 0 && command.DropoffRadiusKm() == 0 {
		return nil
	}

	pickupRadius := requester.PickupRadiusKm()
	if command.PickupRadiusKm() > 0 {
		pickupRadius = command.PickupRadiusKm()
	}
	dropoffRadius := requester.DropoffRadiusKm()
	if command.DropoffRadiusKm() > 0 {
		dropoffRadius = command.DropoffRadiusKm()
	}

	return requester.SetRadii(pickupRadius, dropoffRadius)
}

func (h SearchParcelsCommandHandler) filterCandidates(
	ctx context.Context,
	addressRepo ports.AddressRepository,
	requester *courier.Courier,
	routeStart, routeEnd kernel.Coordinate,
	candidates []*parcel.Parcel,
) []*parcel.Parcel {
	matches := make([]*parcel.Parcel, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.IsOwnedBy(requester.UserID()) {
			continue
		}

		pickup, ok := h.candidateCoordinate(ctx, addressRepo, candidate, candidate.PickupAddressID())
		if !ok {
			continue
		}
		dropoff, ok := h.candidateCoordinate(ctx, addressRepo, candidate, candidate.DropoffAddressID())
		if !ok {
			continue
		}

		matched, err := h.matcher.MatchesRoute(requester, routeStart, routeEnd, pickup, dropoff)
		if err != nil {
			h.logger.WarnContext(ctx, "skipping candidate with invalid coordinates",
				"parcelId", candidate.ID().String(), "error", err)
			continue
		}
		if matched {
			matches = append(matches, candidate)
		}
	}

	return matches
}

// candidateCoordinate fetches a candidate address coordinate, reporting
// ok=false for anything that should drop the candidate instead of failing
// the whole search.
func (h SearchParcelsCommandHandler) candidateCoordinate(
	ctx context.Context,
	addressRepo ports.AddressRepository,
	candidate *parcel.Parcel,
	addressID kernel.UUID,
) (kernel.Coordinate, bool) {
	candidateAddress, err := addressRepo.Get(ctx, addressID)
	if err != nil {
		h.logger.WarnContext(ctx, "skipping candidate with unreadable address",
			"parcelId", candidate.ID().String(), "addressId", addressID.String(), "error", err)
		return kernel.Coordinate{}, false
	}
	if !candidateAddress.HasCoordinate() {
		h.logger.WarnContext(ctx, "skipping candidate with ungeocoded address",
			"parcelId", candidate.ID().String(), "addressId", addressID.String())
		return kernel.Coordinate{}, false
	}
	return *candidateAddress.Coordinate(), true
}

