package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []commands.ItemInput {
	return []commands.ItemInput{{CatalogItemID: kernel.NewUUID(), Quantity: 2, Condition: "stain", Images: []string{"/uploads/1.jpg"}}}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	actor := kernel.MustActor(kernel.RoleCustomer, customerID)

	cmd, err := commands.NewCreateOrderCommand(actor, customerID, validItems(), "2024-01-01T00:00:00Z", "Express 24h", "150.5", "29ABCDE1234F1Z5")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.Express24h, cmd.Tier())
	assert.Equal(t, "150.50", cmd.TotalAmount().String())
	assert.Len(t, cmd.Items(), 1)
	assert.True(t, cmd.CustomerID().IsEqual(customerID))
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	customerID := kernel.NewUUID()

	_, err := commands.NewCreateOrderCommand(adminActor(), customerID, nil, "2024-01-01T00:00:00Z", "Standard", "10", "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_InvalidInputIsJoined(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(adminActor(), kernel.NewUUID(),
		[]commands.ItemInput{{CatalogItemID: kernel.NewUUID(), Quantity: 0}}, "", "Overnight", "-5", "")

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "items[0]")
	assert.Contains(t, err.Error(), "serviceTier")
}

func TestNewCreateOrderCommand_CustomerOrdersForSomeoneElse(t *testing.T) {
	actor := kernel.MustActor(kernel.RoleCustomer, kernel.NewUUID())

	_, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), validItems(), "2024-01-01T00:00:00Z", "Standard", "10", "")

	require.ErrorIs(t, err, errs.ErrActionIsForbidden)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
