package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListVendorOrders handles GET /api/v1/vendors/{vendorId}/orders.
func (s *Server) ListVendorOrders(ctx echo.Context, vendorId openapi_types.UUID, params ListVendorOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := toID("vendorId", vendorId)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := toOrderStatus(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListVendorOrdersQuery(actor, id, status, toDay(params.Day), toPage(params.Limit, params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.ListVendorOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, presentOrderViews(views))
}

// GetVendorDashboard handles GET /api/v1/vendors/{vendorId}/dashboard.
func (s *Server) GetVendorDashboard(ctx echo.Context, vendorId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := toID("vendorId", vendorId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewVendorDashboardQuery(actor, id, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}
	d, err := s.queries.VendorDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, VendorDashboard{
		TotalOrders:        d.TotalOrders,
		TodayOrders:        d.TodayOrders,
		PendingOrders:      d.PendingOrders,
		ProcessingOrders:   d.ProcessingOrders,
		CompletedOrders:    d.CompletedOrders,
		CompletionRate:     d.CompletionRate,
		Earnings:           d.Earnings.String(),
		PendingSettlements: d.PendingSettlements.String(),
		PaidSettlements:    d.PaidSettlements.String(),
	})
}

// GetAdminDashboard handles GET /api/v1/reports/dashboard.
func (s *Server) GetAdminDashboard(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewAdminDashboardQuery(actor, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}
	d, err := s.queries.AdminDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, AdminDashboard{
		TotalOrders:      d.TotalOrders,
		TodayOrders:      d.TodayOrders,
		PendingOrders:    d.PendingOrders,
		ProcessingOrders: d.ProcessingOrders,
		DeliveredOrders:  d.DeliveredOrders,
		IssueOrders:      d.IssueOrders,
		Revenue:          d.Revenue.String(),
	})
}

// GetOrdersByDay handles GET /api/v1/reports/orders-by-day.
func (s *Server) GetOrdersByDay(ctx echo.Context, params GetOrdersByDayParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	vendorID, err := toOptionalID(params.VendorId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewOrdersByDayQuery(actor, vendorID, params.From.Time, params.To.Time)
	if err != nil {
		return s.fail(ctx, err)
	}
	days, err := s.queries.OrdersByDay.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := make([]DayTotal, 0, len(days))
	for _, d := range days {
		resp = append(resp, DayTotal{
			Day:    openapi_types.Date{Time: d.Day},
			Count:  d.Count,
			Amount: d.Amount.String(),
		})
	}
	return ctx.JSON(http.StatusOK, resp)
}
