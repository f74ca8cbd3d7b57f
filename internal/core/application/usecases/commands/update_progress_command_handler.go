package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

type UpdateProgressCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateProgressCommandHandler(uowFactory OrderUoWFactory) UpdateProgressCommandHandler {
	return UpdateProgressCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProgressCommandHandler) Handle(ctx context.Context, cmd UpdateProgressCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return mutateOrder(ctx, h.uowFactory, cmd.orderRef, func(o *order.Order) error {
		return o.UpdateProgress(cmd.Actor(), cmd.Status(), time.Now().UTC())
	})
}
