package errs_test

import (
	"errors"
	"testing"

	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("courierId", "123")

		assert.Equal(t, "courierId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("courierId", "123", cause)

		assert.Equal(t, "courierId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: courierId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("packageId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, -90, err.Min)
		assert.Equal(t, 90, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("radius", -5, 0, 100, cause)

		assert.Equal(t, "radius", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is radius, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("streetName")

		assert.Equal(t, "streetName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: streetName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("streetName", cause)

		assert.Equal(t, "streetName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: streetName (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestGeocodingFailedError(t *testing.T) {
	t.Run("NewGeocodingFailedError", func(t *testing.T) {
		err := errs.NewGeocodingFailedError("Main Street 1, Brussels, 1000, Belgium")

		assert.Equal(t, "Main Street 1, Brussels, 1000, Belgium", err.Address)
		require.NoError(t, err.Cause)
		assert.Equal(t, "geocoding failed: Main Street 1, Brussels, 1000, Belgium", err.Error())
		assert.Equal(t, errs.ErrGeocodingFailed, err.Unwrap())
	})

	t.Run("NewGeocodingFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("provider timeout")
		err := errs.NewGeocodingFailedErrorWithCause("Main Street 1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "geocoding failed: Main Street 1 (cause: provider timeout)", err.Error())
		assert.Equal(t, errs.ErrGeocodingFailed, err.Unwrap())
	})
}

func TestInconsistentStateError(t *testing.T) {
	t.Run("NewInconsistentStateError", func(t *testing.T) {
		err := errs.NewInconsistentStateError("delivery references missing parcel")

		require.NoError(t, err.Cause)
		assert.Equal(t, "inconsistent state: delivery references missing parcel", err.Error())
		assert.Equal(t, errs.ErrInconsistentState, err.Unwrap())
	})

	t.Run("NewInconsistentStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("object not found")
		err := errs.NewInconsistentStateErrorWithCause("delivery references missing parcel", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"inconsistent state: delivery references missing parcel (cause: object not found)",
			err.Error())
		assert.Equal(t, errs.ErrInconsistentState, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("courierId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("status")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("streetName")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		geocodingFailedErr := errs.NewGeocodingFailedError("Main Street 1")
		require.ErrorIs(t, geocodingFailedErr, errs.ErrGeocodingFailed)

		inconsistentStateErr := errs.NewInconsistentStateError("dangling reference")
		require.ErrorIs(t, inconsistentStateErr, errs.ErrInconsistentState)
	})
}
