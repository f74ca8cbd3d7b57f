package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

type AssignRiderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAssignRiderCommandHandler(uowFactory OrderUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{uowFactory: uowFactory}
}

func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return mutateOrder(ctx, h.uowFactory, cmd.orderRef, func(o *order.Order) error {
		return o.AssignRider(cmd.Actor(), cmd.RiderID(), time.Now().UTC())
	})
}
