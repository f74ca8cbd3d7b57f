package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateProgressCommandIsNotConstructed = errors.New(
	"UpdateProgressCommand must be created via NewUpdateProgressCommand constructor",
)

// UpdateProgressCommand moves an order forward along the vendor steps
// (picked_up -> processing -> out_for_delivery).
type UpdateProgressCommand struct {
	orderRef
	status order.Status

	guard guard.ConstructorGuard
}

func NewUpdateProgressCommand(actor kernel.Actor, orderID kernel.UUID, status string, expectedVersion int64) (UpdateProgressCommand, error) {
	ref, refErr := newOrderRef(actor, orderID, expectedVersion)
	next, statusErr := order.ParseStatus(status)
	if err := errors.Join(refErr, statusErr); err != nil {
		return UpdateProgressCommand{}, err
	}
	return UpdateProgressCommand{orderRef: ref, status: next, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProgressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProgressCommandIsNotConstructed)
}

func (c UpdateProgressCommand) Status() order.Status { return c.status }
