package errs_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "1001")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "1001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 1001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("store unavailable")
		err := errs.NewObjectNotFoundErrorWithCause("order", "1001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 1001 (cause: store unavailable)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non string ids are formatted verbatim", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", 1002)
		assert.Equal(t, "object not found: %!s(int=1002)", err.Error())
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
		cause := errors.New("unknown workflow")
		err := errs.NewValueIsInvalidErrorWithCause("workflow", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: workflow (cause: unknown workflow)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weeks", 60, 1, 52)

		assert.Equal(t, 60, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 52, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 60 is weeks, min value is 1, max value is 52", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("quantity check failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 100, cause)

		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 1, max value is 100 (cause: quantity check failed)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("service", "wash\nfold", 0, 10)
		assert.Contains(t, err.Error(), "wash fold")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerID")

		assert.Equal(t, "value is required: customerID", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing header")
		err := errs.NewValueIsRequiredErrorWithCause("actor", cause)

		assert.Equal(t, "value is required: actor (cause: missing header)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("order", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("weeks", 0, 1, 52), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("id"), errs.ErrValueIsRequired)

	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
}
