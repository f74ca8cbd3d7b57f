package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// orderRef is the part shared by every command that mutates an existing order:
// who acts, on which order, and optionally which version they read.
type orderRef struct {
	actor           kernel.Actor
	orderID         kernel.UUID
	expectedVersion int64
}

func newOrderRef(actor kernel.Actor, orderID kernel.UUID, expectedVersion int64) (orderRef, error) {
	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderId", err))
	}
	if expectedVersion < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("expectedVersion", expectedVersion, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return orderRef{}, err
	}
	return orderRef{actor: actor, orderID: orderID, expectedVersion: expectedVersion}, nil
}

func (r orderRef) Actor() kernel.Actor { return r.actor }
func (r orderRef) OrderID() kernel.UUID { return r.orderID }
func (r orderRef) ExpectedVersion() int64 { return r.expectedVersion }

// mutateOrder loads the order under a row lock, checks the caller's version,
// applies mutate and writes the result in one transaction.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	ref orderRef,
	mutate func(o *order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, ref.orderID)
	if err != nil {
		return nil, err
	}

	if err = o.ExpectVersion(ref.expectedVersion); err != nil {
		return nil, err
	}

	if err = mutate(o); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("update order %s: %w", o.ID(), err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
