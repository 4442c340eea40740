package commands

import (
	"context"
	"log/slog"

	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/ports"
)

// BackfillCoordinatesCommandHandler geocodes addresses left without a
// coordinate and persists the fills.
//
// Geocoding happens outside the transaction: the handler first reads the
// batch and calls the geocoder per address, then opens one transaction to
// re-read and fill the addresses that resolved. Per-address failures are
// logged and skipped; failed addresses stay in the backlog for the next run.
type BackfillCoordinatesCommandHandler struct {
	uowFactory AddressUoWFactory
	geocoder   ports.GeocoderClient
	logger     *slog.Logger
}

// NewBackfillCoordinatesCommandHandler creates a handler for coordinate backfill.
func NewBackfillCoordinatesCommandHandler(
	uowFactory AddressUoWFactory,
	geocoder ports.GeocoderClient,
	logger *slog.Logger,
) BackfillCoordinatesCommandHandler {
	return BackfillCoordinatesCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		logger:     logger,
	}
}

// resolvedFill pairs an address with its freshly geocoded coordinate.
type resolvedFill struct {
	addressID  kernel.UUID
	coordinate kernel.Coordinate
}

// Handle geocodes up to BatchSize ungeocoded addresses and stores the results.
func (h BackfillCoordinatesCommandHandler) Handle(ctx context.Context, command BackfillCoordinatesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	// Outside the transaction: repositories execute directly.
	backlog, err := uow.AddressRepository().GetAllWithoutCoordinate(ctx, command.BatchSize())
	if err != nil {
		return err
	}
	if len(backlog) == 0 {
		return nil
	}

	fills := make([]resolvedFill, 0, len(backlog))
	for _, a := range backlog {
		coordinate, ok := h.geocode(ctx, uow, a)
		if !ok {
			continue
		}
		fills = append(fills, resolvedFill{addressID: a.ID(), coordinate: coordinate})
	}
	if len(fills) == 0 {
		return nil
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	filled := 0
	for _, fill := range fills {
		fresh, getErr := uow.AddressRepository().Get(ctx, fill.addressID)
		if getErr != nil {
			return getErr
		}
		if fresh.HasCoordinate() {
			continue
		}
		if setErr := fresh.SetCoordinate(fill.coordinate); setErr != nil {
			return setErr
		}
		if updErr := uow.AddressRepository().Update(ctx, fresh); updErr != nil {
			return updErr
		}
		filled++
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if filled > 0 {
		h.logger.InfoContext(ctx, "backfilled address coordinates", "count", filled)
	}
	return nil
}

// geocode resolves one backlog address, reporting failures without failing
// the batch.
func (h BackfillCoordinatesCommandHandler) geocode(
	ctx context.Context,
	uow AddressUoW,
	a *address.Address,
) (kernel.Coordinate, bool) {
	postalCode, err := uow.AddressRepository().GetPostalCode(ctx, a.PostalCode())
	if err != nil {
		h.logger.WarnContext(ctx, "skipping address with unknown postal code",
			"addressID", a.ID(), "postalCode", a.PostalCode(), "error", err)
		return kernel.Coordinate{}, false
	}

	fields := address.Fields{
		StreetName:  a.StreetName(),
		HouseNumber: a.HouseNumber(),
		ExtraInfo:   a.ExtraInfo(),
		PostalCode:  a.PostalCode(),
		City:        postalCode.City(),
		Country:     postalCode.Country(),
	}

	coordinate, err := h.geocoder.Geocode(ctx, fields.PostalLine())
	if err != nil {
		h.logger.WarnContext(ctx, "geocoding failed for backlog address",
			"addressID", a.ID(), "error", err)
		return kernel.Coordinate{}, false
	}

	return coordinate, true
}
