package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminDashboardQueryHandler struct {
	db *gorm.DB
}

func NewAdminDashboardQueryHandler(db *gorm.DB) AdminDashboardQueryHandler {
	return AdminDashboardQueryHandler{db: db}
}

func (h AdminDashboardQueryHandler) Handle(ctx context.Context, query AdminDashboardQuery) (AdminDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AdminDashboardQueryResponse{}, err
	}

	start, end := dayBounds(query.AsOf())
	var resp AdminDashboardQueryResponse
	var revenue decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= ? AND created_at < ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE has_issue),
			COALESCE(SUM(total_amount) FILTER (WHERE payment_status = ?), 0)
		FROM orders
	`, start, end,
		order.Pending.String(), order.Processing.String(), order.Delivered.String(),
		order.Paid.String(),
	).Row().Scan(
		&resp.TotalOrders,
		&resp.TodayOrders,
		&resp.PendingOrders,
		&resp.ProcessingOrders,
		&resp.DeliveredOrders,
		&resp.IssueOrders,
		&revenue,
	)
	if err != nil {
		return AdminDashboardQueryResponse{}, errs.NewStoreError("select admin dashboard", err)
	}

	if resp.Revenue, err = kernel.NewMoney(revenue); err != nil {
		return AdminDashboardQueryResponse{}, err
	}
	return resp, nil
}
