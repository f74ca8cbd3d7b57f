package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrMarkSettlementPaidCommandIsNotConstructed = errors.New(
	"MarkSettlementPaidCommand must be created via NewMarkSettlementPaidCommand constructor",
)

type MarkSettlementPaidCommand struct {
	actor           kernel.Actor
	settlementID    kernel.UUID
	expectedVersion int64

	guard guard.ConstructorGuard
}

func NewMarkSettlementPaidCommand(actor kernel.Actor, settlementID kernel.UUID, expectedVersion int64) (MarkSettlementPaidCommand, error) {
	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := settlementID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("settlementId", err))
	}
	if expectedVersion < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("expectedVersion", expectedVersion, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return MarkSettlementPaidCommand{}, err
	}

	return MarkSettlementPaidCommand{
		actor:           actor,
		settlementID:    settlementID,
		expectedVersion: expectedVersion,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c MarkSettlementPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkSettlementPaidCommandIsNotConstructed)
}

func (c MarkSettlementPaidCommand) Actor() kernel.Actor { return c.actor }
func (c MarkSettlementPaidCommand) SettlementID() kernel.UUID { return c.settlementID }
func (c MarkSettlementPaidCommand) ExpectedVersion() int64 { return c.expectedVersion }
