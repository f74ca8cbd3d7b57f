package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand attaches a rider to an active order without changing its status.
type AssignRiderCommand struct {
	orderRef
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(actor kernel.Actor, orderID, riderID kernel.UUID, expectedVersion int64) (AssignRiderCommand, error) {
	ref, refErr := newOrderRef(actor, orderID, expectedVersion)
	var riderErr error
	if err := riderID.Validate(); err != nil {
		riderErr = errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}
	if err := errors.Join(refErr, riderErr); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		orderRef: ref,
		riderID:  riderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) RiderID() kernel.UUID { return c.riderID }
