package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/settlement"
)

type MarkSettlementPaidCommandHandler struct {
	uowFactory SettlementUoWFactory
}

func NewMarkSettlementPaidCommandHandler(uowFactory SettlementUoWFactory) MarkSettlementPaidCommandHandler {
	return MarkSettlementPaidCommandHandler{uowFactory: uowFactory}
}

func (h MarkSettlementPaidCommandHandler) Handle(ctx context.Context, cmd MarkSettlementPaidCommand) (*settlement.Settlement, error) {
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

	repo := uow.SettlementRepository()
	s, err := repo.GetForUpdate(ctx, cmd.SettlementID())
	if err != nil {
		return nil, err
	}

	if err = s.ExpectVersion(cmd.ExpectedVersion()); err != nil {
		return nil, err
	}

	if err = s.MarkPaid(cmd.Actor(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
