package commands

import (
	"errors"

	"parcelmatch/internal/pkg/errs"
	"parcelmatch/internal/pkg/guard"
)

var ErrBackfillCoordinatesCommandIsNotConstructed = errors.New(
	"BackfillCoordinatesCommand must be created via NewBackfillCoordinatesCommand constructor",
)

// BackfillCoordinatesCommand geocodes a batch of addresses that are still
// missing coordinates. It is the retry path for addresses whose initial
// geocoding failed or was rolled back.
type BackfillCoordinatesCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewBackfillCoordinatesCommand creates a backfill command for a batch of
// the given size.
func NewBackfillCoordinatesCommand(batchSize int) (BackfillCoordinatesCommand, error) {
	if batchSize <= 0 {
		return BackfillCoordinatesCommand{}, errs.NewValueIsInvalidError("batchSize")
	}

	return BackfillCoordinatesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// BatchSize returns the maximum number of addresses processed per run.
func (c BackfillCoordinatesCommand) BatchSize() int {
	return c.batchSize
}

// Validate ensures the command was created through the constructor.
func (c BackfillCoordinatesCommand) Validate() error {
	return c.guard.Validate(ErrBackfillCoordinatesCommandIsNotConstructed)
}
