package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAdjustWalletCommandIsNotConstructed = errors.New(
	"AdjustWalletCommand must be created via NewAdjustWalletCommand constructor",
)

// AdjustWalletCommand credits or debits a customer's wallet.
//
// Example:
//
//	cmd, err := NewAdjustWalletCommand(admin, customerID, "100.00", "credit", "topup", 0)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientBalance) {
//	    // debit larger than the balance, nothing was written
//	}
type AdjustWalletCommand struct { //nolint:recvcheck //using for validation
	actor           kernel.Actor
	customerID      kernel.UUID
	amount          kernel.Money
	direction       wallet.Direction
	note            string
	expectedVersion int64

	guard guard.ConstructorGuard
}

func NewAdjustWalletCommand(
	actor kernel.Actor,
	customerID kernel.UUID,
	amount, direction, note string,
	expectedVersion int64,
) (AdjustWalletCommand, error) {
	cmd := AdjustWalletCommand{
		note:            note,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor, customerID),
		cmd.setAmount(amount),
		cmd.setDirection(direction),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return AdjustWalletCommand{}, err
	}
	return cmd, nil
}

func (c AdjustWalletCommand) Validate() error {
	return c.guard.Validate(ErrAdjustWalletCommandIsNotConstructed)
}

func (c AdjustWalletCommand) Actor() kernel.Actor { return c.actor }
func (c AdjustWalletCommand) CustomerID() kernel.UUID { return c.customerID }
func (c AdjustWalletCommand) Amount() kernel.Money { return c.amount }
func (c AdjustWalletCommand) Direction() wallet.Direction { return c.direction }
func (c AdjustWalletCommand) Note() string { return c.note }
func (c AdjustWalletCommand) ExpectedVersion() int64 { return c.expectedVersion }

func (c *AdjustWalletCommand) setActor(actor kernel.Actor, customerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.actor = actor
	c.customerID = customerID
	return nil
}

func (c *AdjustWalletCommand) setAmount(s string) error {
	amount, err := kernel.MoneyFromString(s)
	if err != nil {
		return err
	}
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("amount", errors.New("must be greater than 0"))
	}
	c.amount = amount
	return nil
}

func (c *AdjustWalletCommand) setDirection(s string) error {
	direction, err := wallet.ParseDirection(s)
	if err != nil {
		return err
	}
	c.direction = direction
	return nil
}

func (c *AdjustWalletCommand) setExpectedVersion(v int64) error {
	if v < 0 {
		return errs.NewValueIsOutOfRangeError("expectedVersion", v, 0, "unbounded")
	}
	return nil
}
