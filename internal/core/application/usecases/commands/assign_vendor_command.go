package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAssignVendorCommandIsNotConstructed = errors.New(
	"AssignVendorCommand must be created via NewAssignVendorCommand constructor",
)

// AssignVendorCommand hands a pending order to a vendor.
type AssignVendorCommand struct {
	orderRef
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignVendorCommand(actor kernel.Actor, orderID, vendorID kernel.UUID, expectedVersion int64) (AssignVendorCommand, error) {
	ref, refErr := newOrderRef(actor, orderID, expectedVersion)
	var vendorErr error
	if err := vendorID.Validate(); err != nil {
		vendorErr = errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	if err := errors.Join(refErr, vendorErr); err != nil {
		return AssignVendorCommand{}, err
	}

	return AssignVendorCommand{
		orderRef: ref,
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignVendorCommand) Validate() error {
	return c.guard.Validate(ErrAssignVendorCommandIsNotConstructed)
}

func (c AssignVendorCommand) VendorID() kernel.UUID { return c.vendorID }
