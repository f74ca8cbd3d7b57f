package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/wallet"
)

// AdjustWalletResult is the wallet after the adjustment and the log entry it produced.
type AdjustWalletResult struct {
	Wallet      *wallet.Wallet
	Transaction wallet.Transaction
}

// AdjustWalletCommandHandler applies a credit or debit. The wallet row is
// locked for the whole read-check-write sequence so concurrent adjustments on
// the same wallet serialize; the balance update and the transaction insert
// commit together or not at all.
type AdjustWalletCommandHandler struct {
	uowFactory WalletUoWFactory
}

func NewAdjustWalletCommandHandler(uowFactory WalletUoWFactory) AdjustWalletCommandHandler {
	return AdjustWalletCommandHandler{uowFactory: uowFactory}
}

func (h AdjustWalletCommandHandler) Handle(ctx context.Context, cmd AdjustWalletCommand) (AdjustWalletResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdjustWalletResult{}, err
	}
	if !cmd.Actor().IsAdmin() {
		return AdjustWalletResult{}, cmd.Actor().Forbid("adjust wallet")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdjustWalletResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	repo := uow.WalletRepository()
	w, err := repo.GetOrCreateForUpdate(ctx, cmd.CustomerID(), now)
	if err != nil {
		return AdjustWalletResult{}, err
	}

	if err = w.ExpectVersion(cmd.ExpectedVersion()); err != nil {
		return AdjustWalletResult{}, err
	}

	tx, err := w.Adjust(cmd.Actor(), cmd.Amount(), cmd.Direction(), cmd.Note(), now)
	if err != nil {
		return AdjustWalletResult{}, err
	}

	if err = repo.Update(ctx, w); err != nil {
		return AdjustWalletResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdjustWalletResult{}, err
	}

	return AdjustWalletResult{Wallet: w, Transaction: tx}, nil
}
