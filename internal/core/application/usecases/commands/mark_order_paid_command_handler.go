package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{uowFactory: uowFactory}
}

func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return mutateOrder(ctx, h.uowFactory, cmd.orderRef, func(o *order.Order) error {
		return o.MarkPaid(cmd.Actor(), time.Now().UTC())
	})
}
