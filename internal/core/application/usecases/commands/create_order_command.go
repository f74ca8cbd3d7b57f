package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemInput is one line of a checkout request.
type ItemInput struct {
	CatalogItemID kernel.UUID
	Quantity      int
	Condition     string
	Images        []string
}

// CreateOrderCommand represents a customer checkout.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, customerID, []ItemInput{{
//	    CatalogItemID: shirtID, Quantity: 3, Condition: "collar stain",
//	}}, "2024-01-01T09:00:00Z", "Express 24h", "450.00", "")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	customerID  kernel.UUID
	items       []order.Item
	pickupTime  string
	tier        order.ServiceTier
	totalAmount kernel.Money
	gstNumber   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw checkout input. A customer may only
// order for themselves; admins may order on behalf of anyone.
func NewCreateOrderCommand(
	actor kernel.Actor,
	customerID kernel.UUID,
	items []ItemInput,
	pickupTime, serviceTier, totalAmount, gstNumber string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		pickupTime: pickupTime,
		gstNumber:  gstNumber,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor, customerID),
		cmd.setItems(items),
		cmd.setTier(serviceTier),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor { return c.actor }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) Tier() order.ServiceTier { return c.tier }
func (c CreateOrderCommand) TotalAmount() kernel.Money { return c.totalAmount }
func (c CreateOrderCommand) GSTNumber() string { return c.gstNumber }

// PickupTime returns the raw pickup timestamp; the handler parses it.
func (c CreateOrderCommand) PickupTime() string { return c.pickupTime }

func (c CreateOrderCommand) Items() []order.Item {
	out := make([]order.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor, customerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if !actor.IsAdmin() && !actor.Is(kernel.RoleCustomer, customerID) {
		return actor.Forbid("create order")
	}

	c.actor = actor
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var errList []error
	items := make([]order.Item, 0, len(inputs))
	for i, in := range inputs {
		item, err := order.NewItem(in.CatalogItemID, in.Quantity, in.Condition, in.Images)
		if err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTier(s string) error {
	tier, err := order.ParseServiceTier(s)
	if err != nil {
		return err
	}
	c.tier = tier
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(s string) error {
	amount, err := kernel.MoneyFromString(s)
	if err != nil {
		return err
	}
	c.totalAmount = amount
	return nil
}
