package ports

import (
	"context"

	"parcelmatch/internal/core/domain/model/kernel"
)

// GeocoderClient resolves a single-line postal address into a coordinate.
// Implementations wrap an external geocoding provider and must honor the
// context deadline; the registry treats any error as a geocoding failure
// for the address in question.
type GeocoderClient interface {
	Geocode(ctx context.Context, postalLine string) (kernel.Coordinate, error)
}
