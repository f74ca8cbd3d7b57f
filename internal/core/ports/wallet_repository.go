package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
)

// WalletRepository defines the persistence contract for customer wallets.
type WalletRepository interface {
	// GetOrCreateForUpdate returns the customer's wallet with its row locked,
	// creating an empty one first when none exists. Concurrent first calls for
	// the same customer end up with the same wallet.
	GetOrCreateForUpdate(ctx context.Context, customerID kernel.UUID, now time.Time) (*wallet.Wallet, error)

	// Update writes the new balance and inserts the transactions appended since
	// load, conditional on the loaded version.
	Update(ctx context.Context, aggregate *wallet.Wallet) error
}
