package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetSettlementStatsQueryIsNotConstructed = errors.New(
	"GetSettlementStatsQuery must be created via NewGetSettlementStatsQuery constructor",
)

// GetSettlementStatsQuery summarizes all settlements by status. Admin only.
type GetSettlementStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSettlementStatsQuery(actor kernel.Actor) (GetSettlementStatsQuery, error) {
	if err := requireAdmin(actor, "read settlement stats"); err != nil {
		return GetSettlementStatsQuery{}, err
	}
	return GetSettlementStatsQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q GetSettlementStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettlementStatsQueryIsNotConstructed)
}

type GetSettlementStatsQueryResponse struct {
	Pending StatusTotal
	Paid    StatusTotal
}
