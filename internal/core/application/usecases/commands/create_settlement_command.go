package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateSettlementCommandIsNotConstructed = errors.New(
	"CreateSettlementCommand must be created via NewCreateSettlementCommand constructor",
)

// CreateSettlementCommand records a payout owed to a vendor.
type CreateSettlementCommand struct {
	actor    kernel.Actor
	vendorID kernel.UUID
	amount   kernel.Money
	note     string

	guard guard.ConstructorGuard
}

func NewCreateSettlementCommand(actor kernel.Actor, vendorID kernel.UUID, amount, note string) (CreateSettlementCommand, error) {
	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := vendorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("vendorId", err))
	}
	money, err := kernel.MoneyFromString(amount)
	if err != nil {
		errList = append(errList, err)
	} else if money.IsZero() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("must be greater than 0")))
	}
	if err = errors.Join(errList...); err != nil {
		return CreateSettlementCommand{}, err
	}

	return CreateSettlementCommand{
		actor:    actor,
		vendorID: vendorID,
		amount:   money,
		note:     note,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSettlementCommand) Validate() error {
	return c.guard.Validate(ErrCreateSettlementCommandIsNotConstructed)
}

func (c CreateSettlementCommand) Actor() kernel.Actor { return c.actor }
func (c CreateSettlementCommand) VendorID() kernel.UUID { return c.vendorID }
func (c CreateSettlementCommand) Amount() kernel.Money { return c.amount }
func (c CreateSettlementCommand) Note() string { return c.note }
