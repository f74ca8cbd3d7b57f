package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/wallet"
)

// GetOrCreateWalletCommandHandler is idempotent: repeated calls return the same wallet.
type GetOrCreateWalletCommandHandler struct {
	uowFactory WalletUoWFactory
}

func NewGetOrCreateWalletCommandHandler(uowFactory WalletUoWFactory) GetOrCreateWalletCommandHandler {
	return GetOrCreateWalletCommandHandler{uowFactory: uowFactory}
}

func (h GetOrCreateWalletCommandHandler) Handle(ctx context.Context, cmd GetOrCreateWalletCommand) (*wallet.Wallet, error) {
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

	w, err := uow.WalletRepository().GetOrCreateForUpdate(ctx, cmd.CustomerID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return w, nil
}
