package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/settlement"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendorDashboardQueryHandler struct {
	db *gorm.DB
}

func NewVendorDashboardQueryHandler(db *gorm.DB) VendorDashboardQueryHandler {
	return VendorDashboardQueryHandler{db: db}
}

func (h VendorDashboardQueryHandler) Handle(ctx context.Context, query VendorDashboardQuery) (VendorDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return VendorDashboardQueryResponse{}, err
	}

	vendorID := query.VendorID().Bytes()
	start, end := dayBounds(query.AsOf())

	var resp VendorDashboardQueryResponse
	var earnings, pending, paid decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= ? AND created_at < ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(total_amount) FILTER (WHERE payment_status = ?), 0),
			(SELECT COALESCE(SUM(amount), 0) FROM settlements WHERE vendor_id = ? AND status = ?),
			(SELECT COALESCE(SUM(amount), 0) FROM settlements WHERE vendor_id = ? AND status = ?)
		FROM orders
		WHERE vendor_id = ?
	`, start, end,
		order.Pending.String(), order.Processing.String(), order.Delivered.String(),
		order.Paid.String(),
		vendorID, settlement.Pending.String(),
		vendorID, settlement.Paid.String(),
		vendorID,
	).Row().Scan(
		&resp.TotalOrders,
		&resp.TodayOrders,
		&resp.PendingOrders,
		&resp.ProcessingOrders,
		&resp.CompletedOrders,
		&earnings,
		&pending,
		&paid,
	)
	if err != nil {
		return VendorDashboardQueryResponse{}, errs.NewStoreError("select vendor dashboard", err)
	}

	resp.CompletionRate = services.CompletionRate(resp.CompletedOrders, resp.TotalOrders)
	if resp.Earnings, err = kernel.NewMoney(earnings); err != nil {
		return VendorDashboardQueryResponse{}, err
	}
	if resp.PendingSettlements, err = kernel.NewMoney(pending); err != nil {
		return VendorDashboardQueryResponse{}, err
	}
	if resp.PaidSettlements, err = kernel.NewMoney(paid); err != nil {
		return VendorDashboardQueryResponse{}, err
	}
	return resp, nil
}
