package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand records a payment received outside the marketplace.
type MarkOrderPaidCommand struct {
	orderRef

	guard guard.ConstructorGuard
}

func NewMarkOrderPaidCommand(actor kernel.Actor, orderID kernel.UUID, expectedVersion int64) (MarkOrderPaidCommand, error) {
	ref, err := newOrderRef(actor, orderID, expectedVersion)
	if err != nil {
		return MarkOrderPaidCommand{}, err
	}
	return MarkOrderPaidCommand{orderRef: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}
