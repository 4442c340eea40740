package address_test

import (
	"testing"

	"parcelmatch/internal/core/domain/model/address"
	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() address.Fields {
	return address.Fields{
		StreetName:  "Rue de la Loi",
		HouseNumber: "16",
		PostalCode:  "1000",
		City:        "Brussels",
		Country:     "Belgium",
	}
}

func TestFields_Validate(t *testing.T) {
	t.Run("valid_fields", func(t *testing.T) {
		require.NoError(t, validFields().Validate())
	})

	t.Run("extra_info_is_optional", func(t *testing.T) {
		f := validFields()
		f.ExtraInfo = "bus 4"
		require.NoError(t, f.Validate())
	})

	t.Run("missing_required_fields", func(t *testing.T) {
		for _, mutate := range []func(*address.Fields){
			func(f *address.Fields) { f.StreetName = "" },
			func(f *address.Fields) { f.HouseNumber = " " },
			func(f *address.Fields) { f.PostalCode = "" },
			func(f *address.Fields) { f.City = "" },
			func(f *address.Fields) { f.Country = "" },
		} {
			f := validFields()
			mutate(&f)
			require.ErrorIs(t, f.Validate(), errs.ErrValueIsRequired)
		}
	})
}

func TestFields_PostalLine(t *testing.T) {
	t.Run("without_extra_info", func(t *testing.T) {
		assert.Equal(t,
			"Rue de la Loi 16, Brussels, 1000, Belgium",
			validFields().PostalLine())
	})

	t.Run("with_extra_info", func(t *testing.T) {
		f := validFields()
		f.ExtraInfo = "bus 4"
		assert.Equal(t,
			"Rue de la Loi 16, bus 4, Brussels, 1000, Belgium",
			f.PostalLine())
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("valid_address_without_coordinate", func(t *testing.T) {
		id := kernel.NewUUID()
		a, err := address.NewAddress(id, "Rue de la Loi", "16", "", "1000")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.False(t, a.HasCoordinate())
		assert.Nil(t, a.Coordinate())
	})

	t.Run("missing_street_name", func(t *testing.T) {
		_, err := address.NewAddress(kernel.NewUUID(), "", "16", "", "1000")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed_id", func(t *testing.T) {
		var id kernel.UUID
		_, err := address.NewAddress(id, "Rue de la Loi", "16", "", "1000")
		require.Error(t, err)
	})
}

func TestAddress_SetCoordinate(t *testing.T) {
	t.Run("fills_in_once", func(t *testing.T) {
		a, err := address.NewAddress(kernel.NewUUID(), "Rue de la Loi", "16", "", "1000")
		require.NoError(t, err)

		c, _ := kernel.NewCoordinate(50.8466, 4.3528)
		require.NoError(t, a.SetCoordinate(c))

		assert.True(t, a.HasCoordinate())
		equal, err := a.Coordinate().IsEqual(c)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("refuses_overwrite", func(t *testing.T) {
		a, _ := address.NewAddress(kernel.NewUUID(), "Rue de la Loi", "16", "", "1000")
		first, _ := kernel.NewCoordinate(50.8466, 4.3528)
		second, _ := kernel.NewCoordinate(51.2194, 4.4025)

		require.NoError(t, a.SetCoordinate(first))
		require.ErrorIs(t, a.SetCoordinate(second), address.ErrCoordinateAlreadySet)

		// The cache keeps the first value.
		equal, err := a.Coordinate().IsEqual(first)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("rejects_unconstructed_coordinate", func(t *testing.T) {
		a, _ := address.NewAddress(kernel.NewUUID(), "Rue de la Loi", "16", "", "1000")
		var c kernel.Coordinate
		require.Error(t, a.SetCoordinate(c))
	})
}

func TestRestoreAddress(t *testing.T) {
	t.Run("restores_with_coordinate", func(t *testing.T) {
		c, _ := kernel.NewCoordinate(50.8466, 4.3528)
		a, err := address.RestoreAddress(kernel.NewUUID(), "Rue de la Loi", "16", "bus 4", "1000", &c)

		require.NoError(t, err)
		assert.True(t, a.HasCoordinate())
	})

	t.Run("restores_without_coordinate", func(t *testing.T) {
		a, err := address.RestoreAddress(kernel.NewUUID(), "Rue de la Loi", "16", "", "1000", nil)

		require.NoError(t, err)
		assert.False(t, a.HasCoordinate())
	})
}

func TestAddress_MatchesFields(t *testing.T) {
	a, _ := address.NewAddress(kernel.NewUUID(), "Rue de la Loi", "16", "", "1000")

	t.Run("same_identity_tuple", func(t *testing.T) {
		assert.True(t, a.MatchesFields(validFields()))
	})

	t.Run("different_house_number", func(t *testing.T) {
		f := validFields()
		f.HouseNumber = "18"
		assert.False(t, a.MatchesFields(f))
	})

	t.Run("different_extra_info", func(t *testing.T) {
		f := validFields()
		f.ExtraInfo = "bus 4"
		assert.False(t, a.MatchesFields(f))
	})
}

func TestNewPostalCode(t *testing.T) {
	t.Run("valid_postal_code", func(t *testing.T) {
		p, err := address.NewPostalCode("1000", "Brussels", "Belgium")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "1000", p.Code())
		assert.Equal(t, "Brussels", p.City())
		assert.Equal(t, "Belgium", p.Country())
	})

	t.Run("missing_code", func(t *testing.T) {
		_, err := address.NewPostalCode("", "Brussels", "Belgium")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p address.PostalCode
		require.ErrorIs(t, p.Validate(), address.ErrPostalCodeIsNotConstructed)
	})
}
