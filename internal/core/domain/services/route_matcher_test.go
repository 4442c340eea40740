package services_test

import (
	"testing"

	"parcelmatch/internal/core/domain/model/courier"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoordinate(t *testing.T, lat, lng float64) kernel.Coordinate {
	t.Helper()
	coord, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return coord
}

func newRouteCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return c
}

func TestRouteMatcher_MatchesRoute(t *testing.T) {
	matcher := services.NewRouteMatcher()

	// Route runs from central Brussels to central Antwerp.
	routeStart := mustCoordinate(t, 50.8503, 4.3517)
	routeEnd := mustCoordinate(t, 51.2194, 4.4025)

	t.Run("parcel_on_route_matches", func(t *testing.T) {
		c := newRouteCourier(t)

		matched, err := matcher.MatchesRoute(c, routeStart, routeEnd,
			mustCoordinate(t, 50.8467, 4.3525),
			mustCoordinate(t, 51.2100, 4.4100),
		)

		require.NoError(t, err)
		assert.True(t, matched)
	})

	t.Run("pickup_outside_radius_rejects", func(t *testing.T) {
		c := newRouteCourier(t)

		// Ghent is roughly 50 km from the route start.
		matched, err := matcher.MatchesRoute(c, routeStart, routeEnd,
			mustCoordinate(t, 51.0543, 3.7174),
			mustCoordinate(t, 51.2100, 4.4100),
		)

		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("dropoff_outside_radius_rejects", func(t *testing.T) {
		c := newRouteCourier(t)

		matched, err := matcher.MatchesRoute(c, routeStart, routeEnd,
			mustCoordinate(t, 50.8467, 4.3525),
			mustCoordinate(t, 51.0543, 3.7174),
		)

		require.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("boundary_distance_counts_as_match", func(t *testing.T) {
		c := newRouteCourier(t)
		// 0.05 degrees of latitude is about 5.56 km, beyond the default
		// 5 km radius. Widening to 6 km pulls it back inside.
		require.NoError(t, c.SetRadii(6.0, 6.0))

		start := mustCoordinate(t, 50.85, 4.35)
		matched, err := matcher.MatchesRoute(c, start, routeEnd,
			mustCoordinate(t, 50.90, 4.35),
			mustCoordinate(t, 51.2194, 4.4025),
		)

		require.NoError(t, err)
		assert.True(t, matched)
	})

	t.Run("wider_radii_admit_farther_parcels", func(t *testing.T) {
		c := newRouteCourier(t)
		require.NoError(t, c.SetRadii(60.0, 60.0))

		matched, err := matcher.MatchesRoute(c, routeStart, routeEnd,
			mustCoordinate(t, 51.0543, 3.7174),
			mustCoordinate(t, 51.0543, 3.7174),
		)

		require.NoError(t, err)
		assert.True(t, matched)
	})

	t.Run("invalid_courier_errors", func(t *testing.T) {
		var bad courier.Courier

		_, err := matcher.MatchesRoute(&bad, routeStart, routeEnd, routeStart, routeEnd)

		require.Error(t, err)
	})

	t.Run("unconstructed_coordinate_errors", func(t *testing.T) {
		c := newRouteCourier(t)
		var zero kernel.Coordinate

		_, err := matcher.MatchesRoute(c, zero, routeEnd, routeStart, routeEnd)

		require.Error(t, err)
	})
}
