package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand is the admin override. It sets any valid status and is
// not checked against the transition graph.
type SetOrderStatusCommand struct {
	orderRef
	status order.Status

	guard guard.ConstructorGuard
}

func NewSetOrderStatusCommand(actor kernel.Actor, orderID kernel.UUID, status string, expectedVersion int64) (SetOrderStatusCommand, error) {
	ref, refErr := newOrderRef(actor, orderID, expectedVersion)
	next, statusErr := order.ParseStatus(status)
	if err := errors.Join(refErr, statusErr); err != nil {
		return SetOrderStatusCommand{}, err
	}
	return SetOrderStatusCommand{orderRef: ref, status: next, guard: guard.NewConstructorGuard()}, nil
}

func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) Status() order.Status { return c.status }
