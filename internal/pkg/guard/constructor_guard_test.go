package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("settlement query not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errCommandNotConstructed := errors.New("payoutCommand must be created via newPayoutCommand")

	type payoutCommand struct {
		vendor string
		guard  guard.ConstructorGuard
	}

	newPayoutCommand := func(vendor string) (payoutCommand, error) {
		if vendor == "" {
			return payoutCommand{}, errors.New("vendor is required")
		}
		return payoutCommand{vendor: vendor, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		cmd, err := newPayoutCommand("vendor-1")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCommandNotConstructed))
	})

	t.Run("failed_constructor_returns_invalid_zero_value", func(t *testing.T) {
		cmd, err := newPayoutCommand("")

		require.Error(t, err)
		assert.ErrorIs(t, cmd.guard.Validate(errCommandNotConstructed), errCommandNotConstructed)
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		cmd := payoutCommand{vendor: "vendor-1"}

		assert.Equal(t, errCommandNotConstructed, cmd.guard.Validate(errCommandNotConstructed))
	})
}
