package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their items and item images.
type OrderRepository interface {
	// Add persists a new order with its items and images.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable fields of an order. The write is
	// conditional on the version the order was loaded with; a concurrent
	// writer makes it fail with errs.ErrVersionConflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
