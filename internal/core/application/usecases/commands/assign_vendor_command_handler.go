package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// AssignVendorCommandHandler resolves the vendor through the identity
// directory, then dispatches the order to it.
//
// Example:
//
//	handler := NewAssignVendorCommandHandler(uowFactory, directory)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // order or vendor is missing
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order is no longer pending
//	}
type AssignVendorCommandHandler struct {
	uowFactory OrderUoWFactory
	vendors    ports.VendorDirectory
}

func NewAssignVendorCommandHandler(uowFactory OrderUoWFactory, vendors ports.VendorDirectory) AssignVendorCommandHandler {
	return AssignVendorCommandHandler{
		uowFactory: uowFactory,
		vendors:    vendors,
	}
}

func (h AssignVendorCommandHandler) Handle(ctx context.Context, cmd AssignVendorCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Actor().IsAdmin() {
		return nil, cmd.Actor().Forbid("assign vendor")
	}

	vendor, err := h.vendors.Vendor(ctx, cmd.VendorID())
	if err != nil {
		return nil, err
	}

	dispatcher := services.NewOrderDispatcher()
	return mutateOrder(ctx, h.uowFactory, cmd.orderRef, func(o *order.Order) error {
		return dispatcher.Dispatch(cmd.Actor(), o, vendor, time.Now().UTC())
	})
}
