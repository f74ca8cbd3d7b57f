package services

import (
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Quote is what the storefront shows before checkout.
type Quote struct {
	Tier         order.ServiceTier
	PickupTime   time.Time
	DeliveryTime time.Time
	Multiplier   decimal.Decimal
}

// QuoteDelivery computes the delivery date and price multiplier for tier.
func QuoteDelivery(tier order.ServiceTier, pickup time.Time) (Quote, error) {
	if err := tier.Validate(); err != nil {
		return Quote{}, err
	}
	return Quote{
		Tier:         tier,
		PickupTime:   pickup,
		DeliveryTime: tier.DeliveryTime(pickup),
		Multiplier:   tier.PriceMultiplier(),
	}, nil
}
