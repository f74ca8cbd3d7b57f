package errs_test

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "42")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("identity service returned 404")
		err := errs.NewObjectNotFoundErrorWithCause("vendor", "v-1", cause)

		assert.Equal(t,
			"object not found: param is: vendor, ID is: v-1 (cause: identity service returned 404)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Run("value is required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("items")

		assert.Equal(t, "value is required: items", err.Error())
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("value is invalid with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("pickupTime", errors.New("cannot parse \"tomorrow\""))

		assert.Equal(t, "value is invalid: pickupTime (cause: cannot parse \"tomorrow\")", err.Error())
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("value is out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("out of range strips newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "line one\nline two", 0, 10)

		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("non validation errors are not classified as validation", func(t *testing.T) {
		assert.False(t, errs.IsValidation(errs.NewObjectNotFoundError("order", "1")))
		assert.False(t, errs.IsValidation(errs.NewInsufficientBalanceError("10", "20")))
	})
}

func TestLedgerAndLifecycleErrors(t *testing.T) {
	t.Run("invalid transition", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("order", "picked_up", "out_for_delivery")

		assert.Equal(t,
			"transition is not allowed: order cannot move from picked_up to out_for_delivery",
			err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		err := errs.NewInsufficientBalanceError("100", "150")

		assert.Equal(t, "insufficient balance: balance 100 is less than 150", err.Error())
		require.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("version conflict", func(t *testing.T) {
		err := errs.NewVersionConflictError("wallet", "w-1", 3, 4)

		assert.Equal(t, "version conflict: wallet w-1 expected version 3, found 4", err.Error())
		require.ErrorIs(t, err, errs.ErrVersionConflict)
	})

	t.Run("forbidden", func(t *testing.T) {
		err := errs.NewActionIsForbiddenError("assign vendor", "customer")

		assert.Equal(t, "action is forbidden: customer may not assign vendor", err.Error())
		require.ErrorIs(t, err, errs.ErrActionIsForbidden)
	})
}

func TestStoreError(t *testing.T) {
	t.Run("keeps both sentinel and cause in the chain", func(t *testing.T) {
		err := errs.NewStoreError("update wallet", context.DeadlineExceeded)

		require.ErrorIs(t, err, errs.ErrStore)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, "store failure: update wallet (cause: context deadline exceeded)", err.Error())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewStoreError("commit", nil)

		require.ErrorIs(t, err, errs.ErrStore)
		assert.Equal(t, "store failure: commit", err.Error())
	})

	t.Run("errors.As finds the typed error through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("adjust wallet"), errs.NewStoreError("lock wallet", nil))

		var storeErr *errs.StoreError
		require.ErrorAs(t, wrapped, &storeErr)
		assert.Equal(t, "lock wallet", storeErr.Operation)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "transition is not allowed", errs.ErrInvalidTransition.Error())
	assert.Equal(t, "insufficient balance", errs.ErrInsufficientBalance.Error())
	assert.Equal(t, "version conflict", errs.ErrVersionConflict.Error())
	assert.Equal(t, "action is forbidden", errs.ErrActionIsForbidden.Error())
	assert.Equal(t, "store failure", errs.ErrStore.Error())
}
