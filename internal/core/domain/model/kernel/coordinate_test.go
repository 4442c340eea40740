package kernel_test

import (
	"testing"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		c, err := kernel.NewCoordinate(50.85, 4.35)

		require.NoError(t, err)
		assert.InDelta(t, 50.85, c.Lat(), 1e-9)
		assert.InDelta(t, 4.35, c.Lng(), 1e-9)
	})

	t.Run("boundary_coordinates", func(t *testing.T) {
		for _, tc := range []struct {
			lat, lng float64
		}{
			{-90, -180},
			{90, 180},
			{0, 0},
		} {
			c, err := kernel.NewCoordinate(tc.lat, tc.lng)
			require.NoError(t, err)
			require.NoError(t, c.Validate())
		}
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewCoordinate(91, 4.35)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewCoordinate(-90.0001, 4.35)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewCoordinate(50.85, 180.5)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewCoordinate(50.85, -181)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("both_out_of_range_joins_errors", func(t *testing.T) {
		_, err := kernel.NewCoordinate(100, 200)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinate_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var c kernel.Coordinate
		require.Error(t, c.Validate())
	})

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		c, err := kernel.NewCoordinate(51.05, 3.72)
		require.NoError(t, err)
		require.NoError(t, c.Validate())
	})
}

func TestCoordinate_IsEqual(t *testing.T) {
	t.Run("equal_coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(50.85, 4.35)
		b, _ := kernel.NewCoordinate(50.85, 4.35)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different_coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(50.85, 4.35)
		b, _ := kernel.NewCoordinate(51.05, 3.72)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed_operand_fails", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(50.85, 4.35)
		var b kernel.Coordinate

		_, err := a.IsEqual(b)
		require.Error(t, err)
	})
}

func TestCoordinate_DistanceKm(t *testing.T) {
	t.Run("half_degree_of_latitude_near_brussels", func(t *testing.T) {
		// 0.05 degrees of latitude is roughly 5.56 km, the boundary case
		// that separates a 5 km pickup radius from a 6 km one.
		start, _ := kernel.NewCoordinate(50.85, 4.35)
		pickup, _ := kernel.NewCoordinate(50.90, 4.35)

		km, err := start.DistanceKm(pickup)
		require.NoError(t, err)
		assert.InDelta(t, 5.56, km, 0.01)
		assert.Greater(t, km, 5.0)
		assert.Less(t, km, 6.0)
	})

	t.Run("zero_distance_to_itself", func(t *testing.T) {
		c, _ := kernel.NewCoordinate(50.85, 4.35)

		km, err := c.DistanceKm(c)
		require.NoError(t, err)
		assert.InDelta(t, 0, km, 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(50.8503, 4.3517)  // Brussels
		b, _ := kernel.NewCoordinate(51.2194, 4.4025)  // Antwerp
		forward, err := a.DistanceKm(b)
		require.NoError(t, err)
		backward, err := b.DistanceKm(a)
		require.NoError(t, err)

		assert.InDelta(t, forward, backward, 1e-9)
		// Brussels to Antwerp is roughly 41 km as the crow flies.
		assert.InDelta(t, 41.0, forward, 1.5)
	})

	t.Run("unconstructed_operand_fails", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(50.85, 4.35)
		var b kernel.Coordinate

		_, err := a.DistanceKm(b)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
