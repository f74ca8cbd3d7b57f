package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
)

type CheckPriceQueryHandler struct{}

func NewCheckPriceQueryHandler() CheckPriceQueryHandler {
	return CheckPriceQueryHandler{}
}

func (h CheckPriceQueryHandler) Handle(_ context.Context, query CheckPriceQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}
	return services.QuoteDelivery(query.tier, query.pickupTime)
}
