package services

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// PriceCheck is the input of a price verification: what the customer ordered
// and the total the storefront computed.
type PriceCheck struct {
	Items       []order.Item
	Tier        order.ServiceTier
	TotalAmount kernel.Money
}

// TrustedPriceVerifier accepts every submitted total. It is the default until a
// catalog-backed verifier exists.
type TrustedPriceVerifier struct{}

func NewTrustedPriceVerifier() TrustedPriceVerifier {
	return TrustedPriceVerifier{}
}

func (TrustedPriceVerifier) Verify(_ context.Context, check PriceCheck) (kernel.Money, error) {
	return check.TotalAmount, nil
}
