package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// ResolveIssueCommandHandler clears the issue flag. Resolving an order with
// no open issue succeeds and writes nothing.
type ResolveIssueCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewResolveIssueCommandHandler(uowFactory OrderUoWFactory) ResolveIssueCommandHandler {
	return ResolveIssueCommandHandler{uowFactory: uowFactory}
}

func (h ResolveIssueCommandHandler) Handle(ctx context.Context, cmd ResolveIssueCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ExpectVersion(cmd.ExpectedVersion()); err != nil {
		return nil, err
	}

	resolved, err := o.ResolveIssue(cmd.Actor(), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !resolved {
		return o, nil
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
