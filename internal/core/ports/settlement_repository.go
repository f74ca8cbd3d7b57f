package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settlement"
)

// SettlementRepository defines the persistence contract for vendor settlements.
type SettlementRepository interface {
	Add(ctx context.Context, aggregate *settlement.Settlement) error

	// Update is conditional on the loaded version.
	Update(ctx context.Context, aggregate *settlement.Settlement) error

	// GetForUpdate locks the settlement row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error)
}
