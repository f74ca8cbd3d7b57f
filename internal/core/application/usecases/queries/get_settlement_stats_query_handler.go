package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetSettlementStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetSettlementStatsQueryHandler(db *gorm.DB) GetSettlementStatsQueryHandler {
	return GetSettlementStatsQueryHandler{db: db}
}

func (h GetSettlementStatsQueryHandler) Handle(ctx context.Context, query GetSettlementStatsQuery) (GetSettlementStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettlementStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM settlements
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetSettlementStatsQueryResponse{}, errs.NewStoreError("select settlement stats", err)
	}
	defer rows.Close()

	totals, err := scanStatusTotals(rows)
	if err != nil {
		return GetSettlementStatsQueryResponse{}, errs.NewStoreError("scan settlement stats", err)
	}
	return GetSettlementStatsQueryResponse{Pending: totals[0], Paid: totals[1]}, nil
}
