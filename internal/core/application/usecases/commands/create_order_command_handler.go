package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler places a new pending order. The submitted total
// goes through the price verifier before it is stored.
type CreateOrderCommandHandler struct {
	uowFactory    OrderUoWFactory
	priceVerifier ports.PriceVerifier
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, priceVerifier ports.PriceVerifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:    uowFactory,
		priceVerifier: priceVerifier,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	pickup, err := order.ParsePickupTime(cmd.PickupTime())
	if err != nil {
		return nil, err
	}

	total, err := h.priceVerifier.Verify(ctx, services.PriceCheck{
		Items:       cmd.Items(),
		Tier:        cmd.Tier(),
		TotalAmount: cmd.TotalAmount(),
	})
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.Items(),
		pickup,
		cmd.Tier(),
		total,
		cmd.GSTNumber(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
