package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("new identifiers are valid and distinct", func(t *testing.T) {
		a, b := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("round trips through string and bytes", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(id))

		raw := id.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, restored.IsEqual(id))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("order-1")

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("rejects the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID

		assert.True(t, id.IsZero())
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("optional conversions", func(t *testing.T) {
		none, err := kernel.OptionalUUID(nil)
		require.NoError(t, err)
		assert.Nil(t, none)
		assert.Nil(t, kernel.RawUUID(nil))

		id := kernel.NewUUID()
		restored, err := kernel.OptionalUUID(kernel.RawUUID(&id))
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.True(t, restored.IsEqual(id))
	})
}
