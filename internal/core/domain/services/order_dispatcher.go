package services

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// ErrVendorIsNotApproved is returned when an admin tries to dispatch an order
// to a vendor whose profile has not been approved yet.
var ErrVendorIsNotApproved = errors.New("vendor is not approved")

// Vendor is what the dispatcher needs to know about a fulfillment partner.
// It is resolved by the identity collaborator before dispatch.
type Vendor struct {
	ID       kernel.UUID
	Approved bool
}

// OrderDispatcher assigns pending orders to vendors.
//
// Business rules:
//   - the order must be valid and pending
//   - the vendor must exist and be approved
//   - only admins dispatch
//
// Example usage:
//
//	dispatcher := NewOrderDispatcher()
//	vendor, _ := directory.Vendor(ctx, vendorID)
//	if err := dispatcher.Dispatch(actor, o, vendor, time.Now()); err != nil {
//	    return err
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch validates both sides and moves the order to pickup_assigned.
func (d OrderDispatcher) Dispatch(actor kernel.Actor, o *order.Order, vendor Vendor, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := vendor.ID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	if !vendor.Approved {
		return errs.NewValueIsInvalidErrorWithCause("vendorId", ErrVendorIsNotApproved)
	}
	return o.AssignVendor(actor, vendor.ID, now)
}
