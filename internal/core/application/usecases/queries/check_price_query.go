package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrCheckPriceQueryIsNotConstructed = errors.New(
	"CheckPriceQuery must be created via NewCheckPriceQuery constructor",
)

// CheckPriceQuery quotes the delivery date and price multiplier for a tier.
// It needs no actor and no storage.
type CheckPriceQuery struct {
	pickupTime time.Time
	tier       order.ServiceTier

	guard guard.ConstructorGuard
}

func NewCheckPriceQuery(pickupTime, serviceTier string) (CheckPriceQuery, error) {
	pickup, pickupErr := order.ParsePickupTime(pickupTime)
	tier, tierErr := order.ParseServiceTier(serviceTier)
	if err := errors.Join(pickupErr, tierErr); err != nil {
		return CheckPriceQuery{}, err
	}
	return CheckPriceQuery{
		pickupTime: pickup,
		tier:       tier,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q CheckPriceQuery) Validate() error {
	return q.guard.Validate(ErrCheckPriceQueryIsNotConstructed)
}
