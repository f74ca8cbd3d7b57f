package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrCreateWalletCommandIsNotConstructed = errors.New(
	"GetOrCreateWalletCommand must be created via NewGetOrCreateWalletCommand constructor",
)

// GetOrCreateWalletCommand opens a customer's wallet, creating it on first use.
type GetOrCreateWalletCommand struct {
	actor      kernel.Actor
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrCreateWalletCommand(actor kernel.Actor, customerID kernel.UUID) (GetOrCreateWalletCommand, error) {
	if err := actor.Validate(); err != nil {
		return GetOrCreateWalletCommand{}, err
	}
	if err := customerID.Validate(); err != nil {
		return GetOrCreateWalletCommand{}, errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if err := wallet.CheckAccess(actor, customerID); err != nil {
		return GetOrCreateWalletCommand{}, err
	}
	return GetOrCreateWalletCommand{
		actor:      actor,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c GetOrCreateWalletCommand) Validate() error {
	return c.guard.Validate(ErrGetOrCreateWalletCommandIsNotConstructed)
}

func (c GetOrCreateWalletCommand) Actor() kernel.Actor { return c.actor }
func (c GetOrCreateWalletCommand) CustomerID() kernel.UUID { return c.customerID }
