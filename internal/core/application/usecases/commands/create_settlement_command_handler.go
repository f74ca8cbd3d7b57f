package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/settlement"
	"marketplace/internal/core/ports"
)

// CreateSettlementCommandHandler creates a pending payout. The vendor must be
// known to the identity directory; approval is not required.
type CreateSettlementCommandHandler struct {
	uowFactory SettlementUoWFactory
	vendors    ports.VendorDirectory
}

func NewCreateSettlementCommandHandler(uowFactory SettlementUoWFactory, vendors ports.VendorDirectory) CreateSettlementCommandHandler {
	return CreateSettlementCommandHandler{uowFactory: uowFactory, vendors: vendors}
}

func (h CreateSettlementCommandHandler) Handle(ctx context.Context, cmd CreateSettlementCommand) (*settlement.Settlement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if !cmd.Actor().IsAdmin() {
		return nil, cmd.Actor().Forbid("create settlement")
	}

	if _, err := h.vendors.Vendor(ctx, cmd.VendorID()); err != nil {
		return nil, err
	}

	s, err := settlement.NewSettlement(cmd.VendorID(), cmd.Amount(), cmd.Note(), time.Now().UTC())
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

	if err = uow.SettlementRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
