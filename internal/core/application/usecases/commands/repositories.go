// Package commands contains business operations that modify system state.
// Every command follows the same pattern: constructor validation, a unit of
// work transaction, a domain mutation and a conditional write.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each family of handlers touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	SettlementRepoFactory interface {
		SettlementRepository() ports.SettlementRepository
	}

	// OrderUoW manages transactions for order lifecycle operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// WalletUoW manages transactions for wallet balance operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   w, err := uow.WalletRepository().GetOrCreateForUpdate(ctx, customerID, now)
	//   // ... adjust and update
	//
	//   err = uow.Commit(ctx)
	WalletUoW interface {
		TxManager
		WalletRepoFactory
	}

	WalletUoWFactory interface {
		Create() WalletUoW
	}

	// SettlementUoW manages transactions for vendor payout operations.
	SettlementUoW interface {
		TxManager
		SettlementRepoFactory
	}

	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
