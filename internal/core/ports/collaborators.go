package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/ddd"
)

// VendorDirectory resolves vendors owned by the identity service.
// An unknown vendor yields errs.ErrObjectNotFound.
type VendorDirectory interface {
	Vendor(ctx context.Context, id kernel.UUID) (services.Vendor, error)
}

// PriceVerifier checks the total submitted with a new order and returns the
// amount to store.
type PriceVerifier interface {
	Verify(ctx context.Context, check services.PriceCheck) (kernel.Money, error)
}

// EventPublisher delivers committed domain events to other services.
type EventPublisher interface {
	Publish(ctx context.Context, events ...ddd.DomainEvent) error
}
