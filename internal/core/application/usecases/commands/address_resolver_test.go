package commands_test

import (
	"errors"
	"testing"

	"parcelmatch/internal/core/application/usecases/commands"
	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testFields() address.Fields {
	return address.Fields{
		StreetName:  "Rue de la Loi",
		HouseNumber: "16",
		PostalCode:  "1000",
		City:        "Brussels",
		Country:     "Belgium",
	}
}

func TestAddressResolver_Resolve(t *testing.T) {
	coordinate, err := kernel.NewCoordinate(50.8467, 4.3525)
	require.NoError(t, err)

	t.Run("cache_hit_skips_geocoder", func(t *testing.T) {
		ctx := t.Context()
		fields := testFields()

		cached, err := address.NewAddress(kernel.NewUUID(),
			fields.StreetName, fields.HouseNumber, fields.ExtraInfo, fields.PostalCode)
		require.NoError(t, err)
		require.NoError(t, cached.SetCoordinate(coordinate))

		addresses := new(MockAddressRepository)
		geocoder := new(MockGeocoderClient)
		addresses.On("GetByFields", ctx, fields).Return(cached, nil).Once()

		resolver := commands.NewAddressResolver(addresses, geocoder)
		resolved, err := resolver.Resolve(ctx, fields)

		require.NoError(t, err)
		assert.Equal(t, coordinate, resolved.Coordinate())
		geocoder.AssertNotCalled(t, "Geocode")
		addresses.AssertExpectations(t)
	})

	t.Run("miss_geocodes_postal_line", func(t *testing.T) {
		ctx := t.Context()
		fields := testFields()

		addresses := new(MockAddressRepository)
		geocoder := new(MockGeocoderClient)
		addresses.On("GetByFields", ctx, fields).
			Return(nil, errs.NewObjectNotFoundError("fields", fields.PostalLine())).Once()
		geocoder.On("Geocode", ctx, "Rue de la Loi 16, Brussels, 1000, Belgium").
			Return(coordinate, nil).Once()

		resolver := commands.NewAddressResolver(addresses, geocoder)
		resolved, err := resolver.Resolve(ctx, fields)

		require.NoError(t, err)
		assert.Equal(t, coordinate, resolved.Coordinate())
		assert.Equal(t, fields, resolved.Fields())
		geocoder.AssertExpectations(t)
	})

	t.Run("resolve_twice_geocodes_once", func(t *testing.T) {
		ctx := t.Context()
		fields := testFields()

		stored, err := address.NewAddress(kernel.NewUUID(),
			fields.StreetName, fields.HouseNumber, fields.ExtraInfo, fields.PostalCode)
		require.NoError(t, err)
		require.NoError(t, stored.SetCoordinate(coordinate))

		addresses := new(MockAddressRepository)
		geocoder := new(MockGeocoderClient)
		// First resolution misses and geocodes, second one hits the cache.
		addresses.On("GetByFields", ctx, fields).
			Return(nil, errs.NewObjectNotFoundError("fields", fields.PostalLine())).Once()
		addresses.On("GetByFields", ctx, fields).Return(stored, nil).Once()
		geocoder.On("Geocode", ctx, mock.AnythingOfType("string")).Return(coordinate, nil).Once()

		resolver := commands.NewAddressResolver(addresses, geocoder)

		first, err := resolver.Resolve(ctx, fields)
		require.NoError(t, err)
		second, err := resolver.Resolve(ctx, fields)
		require.NoError(t, err)

		assert.Equal(t, first.Coordinate(), second.Coordinate())
		geocoder.AssertNumberOfCalls(t, "Geocode", 1)
	})

	t.Run("geocoder_error_is_geocoding_failure", func(t *testing.T) {
		ctx := t.Context()
		fields := testFields()

		addresses := new(MockAddressRepository)
		geocoder := new(MockGeocoderClient)
		addresses.On("GetByFields", ctx, fields).
			Return(nil, errs.NewObjectNotFoundError("fields", fields.PostalLine())).Once()
		geocoder.On("Geocode", ctx, mock.AnythingOfType("string")).
			Return(kernel.Coordinate{}, errors.New("upstream timeout")).Once()

		resolver := commands.NewAddressResolver(addresses, geocoder)
		_, err := resolver.Resolve(ctx, fields)

		require.ErrorIs(t, err, errs.ErrGeocodingFailed)
	})

	t.Run("unconstructed_coordinate_is_geocoding_failure", func(t *testing.T) {
		ctx := t.Context()
		fields := testFields()

		addresses := new(MockAddressRepository)
		geocoder := new(MockGeocoderClient)
		addresses.On("GetByFields", ctx, fields).
			Return(nil, errs.NewObjectNotFoundError("fields", fields.PostalLine())).Once()
		geocoder.On("Geocode", ctx, mock.AnythingOfType("string")).
			Return(kernel.Coordinate{}, nil).Once()

		resolver := commands.NewAddressResolver(addresses, geocoder)
		_, err := resolver.Resolve(ctx, fields)

		require.ErrorIs(t, err, errs.ErrGeocodingFailed)
	})

	t.Run("missing_fields_rejected", func(t *testing.T) {
		resolver := commands.NewAddressResolver(new(MockAddressRepository), new(MockGeocoderClient))

		_, err := resolver.Resolve(t.Context(), address.Fields{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddressResolver_Store(t *testing.T) {
	coordinate, err := kernel.NewCoordinate(50.8467, 4.3525)
	require.NoError(t, err)

	resolve := func(t *testing.T, repo *MockAddressRepository, fields address.Fields) commands.ResolvedAddress {
		t.Helper()
		geocoder := new(MockGeocoderClient)
		repo.On("GetByFields", mock.Anything, fields).
			Return(nil, errs.NewObjectNotFoundError("fields", fields.PostalLine())).Once()
		geocoder.On("Geocode", mock.Anything, mock.AnythingOfType("string")).Return(coordinate, nil).Once()

		resolved, err := commands.NewAddressResolver(repo, geocoder).Resolve(t.Context(), fields)
		require.NoError(t, err)
		return resolved
	}

	t.Run("creates_address_and_postal_code", func(t *testing.T) {
		ctx := t.Context()
		fields := testFields()

		reader := new(MockAddressRepository)
		resolved := resolve(t, reader, fields)

		txRepo := new(MockAddressRepository)
		txRepo.On("GetByFields", ctx, fields).
			Return(nil, errs.NewObjectNotFoundError("fields", fields.PostalLine())).Once()
		txRepo.On("GetPostalCode", ctx, "1000").
			Return(nil, errs.NewObjectNotFoundError("code", "1000")).Once()
		txRepo.On("AddPostalCode", ctx, mock.AnythingOfType("*address.PostalCode")).Return(nil).Once()
		txRepo.On("Add", ctx, mock.AnythingOfType("*address.Address")).Return(nil).Once()

		resolver := commands.NewAddressResolver(reader, new(MockGeocoderClient))
		stored, err := resolver.Store(ctx, txRepo, resolved)

		require.NoError(t, err)
		require.True(t, stored.HasCoordinate())
		assert.Equal(t, coordinate, *stored.Coordinate())
		assert.True(t, stored.MatchesFields(fields))
		txRepo.AssertExpectations(t)
	})

	t.Run("existing_postal_code_is_reused", func(t *testing.T) {
		ctx := t.Context()
		fields := testFields()

		reader := new(MockAddressRepository)
		resolved := resolve(t, reader, fields)

		postalCode, err := address.NewPostalCode("1000", "Brussels", "Belgium")
		require.NoError(t, err)

		txRepo := new(MockAddressRepository)
		txRepo.On("GetByFields", ctx, fields).
			Return(nil, errs.NewObjectNotFoundError("fields", fields.PostalLine())).Once()
		txRepo.On("GetPostalCode", ctx, "1000").Return(postalCode, nil).Once()
		txRepo.On("Add", ctx, mock.AnythingOfType("*address.Address")).Return(nil).Once()

		resolver := commands.NewAddressResolver(reader, new(MockGeocoderClient))
		_, err = resolver.Store(ctx, txRepo, resolved)

		require.NoError(t, err)
		txRepo.AssertNotCalled(t, "AddPostalCode")
	})

	t.Run("concurrent_insert_converges_on_existing_row", func(t *testing.T) {
		ctx := t.Context()
		fields := testFields()

		reader := new(MockAddressRepository)
		resolved := resolve(t, reader, fields)

		raced, err := address.NewAddress(kernel.NewUUID(),
			fields.StreetName, fields.HouseNumber, fields.ExtraInfo, fields.PostalCode)
		require.NoError(t, err)
		require.NoError(t, raced.SetCoordinate(coordinate))

		txRepo := new(MockAddressRepository)
		txRepo.On("GetByFields", ctx, fields).Return(raced, nil).Once()

		resolver := commands.NewAddressResolver(reader, new(MockGeocoderClient))
		stored, err := resolver.Store(ctx, txRepo, resolved)

		require.NoError(t, err)
		assert.True(t, stored.IsEqual(raced))
		txRepo.AssertNotCalled(t, "Add")
	})

	t.Run("fills_missing_coordinate_once", func(t *testing.T) {
		ctx := t.Context()
		fields := testFields()

		reader := new(MockAddressRepository)
		resolved := resolve(t, reader, fields)

		bare, err := address.NewAddress(kernel.NewUUID(),
			fields.StreetName, fields.HouseNumber, fields.ExtraInfo, fields.PostalCode)
		require.NoError(t, err)

		txRepo := new(MockAddressRepository)
		txRepo.On("GetByFields", ctx, fields).Return(bare, nil).Once()
		txRepo.On("Update", ctx, bare).Return(nil).Once()

		resolver := commands.NewAddressResolver(reader, new(MockGeocoderClient))
		stored, err := resolver.Store(ctx, txRepo, resolved)

		require.NoError(t, err)
		require.True(t, stored.HasCoordinate())
		assert.Equal(t, coordinate, *stored.Coordinate())
		txRepo.AssertExpectations(t)
	})

	t.Run("zero_value_resolved_address_rejected", func(t *testing.T) {
		resolver := commands.NewAddressResolver(new(MockAddressRepository), new(MockGeocoderClient))

		_, err := resolver.Store(t.Context(), new(MockAddressRepository), commands.ResolvedAddress{})

		require.Error(t, err)
	})
}
