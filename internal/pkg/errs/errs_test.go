package errs_test

import (
	"errors"
	"testing"

	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productID", "PROD-001")

		assert.Equal(t, "productID", err.ParamName)
		assert.Equal(t, "PROD-001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: PROD-001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderID", "ORD-1", cause)

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "ORD-1", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderID, ID is: ORD-1 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("productID", "PROD-001")

		assert.Equal(t, "productID", err.ParamName)
		assert.Equal(t, "PROD-001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: PROD-001", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violated")
		err := errs.NewObjectAlreadyExistsErrorWithCause("locationID", "LOC-002", cause)

		assert.Equal(t, "locationID", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: locationID, ID is: LOC-002 (cause: unique constraint violated)",
			err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})
}

func TestInvalidReferenceError(t *testing.T) {
	t.Run("NewInvalidReferenceError", func(t *testing.T) {
		err := errs.NewInvalidReferenceError("productID", "PROD-404")

		assert.Equal(t, "productID", err.ParamName)
		assert.Equal(t, "PROD-404", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid reference: param is: productID, ID is: PROD-404", err.Error())
		assert.Equal(t, errs.ErrInvalidReference, err.Unwrap())
	})

	t.Run("NewInvalidReferenceErrorWithCause", func(t *testing.T) {
		cause := errors.New("lookup failed")
		err := errs.NewInvalidReferenceErrorWithCause("locationID", "LOC-404", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid reference: param is: locationID, ID is: LOC-404 (cause: lookup failed)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidReference, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("orderID", cause)

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: orderID (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("text", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customer")

		assert.Equal(t, "customer", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customer", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("customer", cause)

		assert.Equal(t, "customer", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customer (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrObjectAlreadyExists)
		require.Error(t, errs.ErrInvalidReference)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "invalid reference", errs.ErrInvalidReference.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		notFoundErr := errs.NewObjectNotFoundError("productID", "PROD-001")
		require.ErrorIs(t, notFoundErr, errs.ErrObjectNotFound)

		alreadyExistsErr := errs.NewObjectAlreadyExistsError("productID", "PROD-001")
		require.ErrorIs(t, alreadyExistsErr, errs.ErrObjectAlreadyExists)

		invalidRefErr := errs.NewInvalidReferenceError("locationID", "LOC-404")
		require.ErrorIs(t, invalidRefErr, errs.ErrInvalidReference)

		valueInvalidErr := errs.NewValueIsInvalidError("quantity")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueRequiredErr := errs.NewValueIsRequiredError("customer")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)
	})
}
