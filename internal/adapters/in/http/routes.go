package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists one method per operation in openapi.yaml.
type ServerInterface interface {
	CheckPrice(ctx echo.Context, params CheckPriceParams) error

	CreateOrder(ctx echo.Context) error
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	ListOrdersWithIssues(ctx echo.Context, params PageParams) error
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	AssignVendor(ctx echo.Context, orderId openapi_types.UUID) error
	AssignRider(ctx echo.Context, orderId openapi_types.UUID) error
	AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error
	UpdateProgress(ctx echo.Context, orderId openapi_types.UUID) error
	SetOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	MarkOrderPaid(ctx echo.Context, orderId openapi_types.UUID) error
	ReportIssue(ctx echo.Context, orderId openapi_types.UUID) error
	ResolveIssue(ctx echo.Context, orderId openapi_types.UUID) error

	ListVendorOrders(ctx echo.Context, vendorId openapi_types.UUID, params ListVendorOrdersParams) error
	GetVendorEarnings(ctx echo.Context, vendorId openapi_types.UUID, params GetVendorEarningsParams) error
	GetVendorDashboard(ctx echo.Context, vendorId openapi_types.UUID) error

	GetWallet(ctx echo.Context, customerId openapi_types.UUID, params PageParams) error
	AdjustWallet(ctx echo.Context, customerId openapi_types.UUID) error

	CreateSettlement(ctx echo.Context) error
	ListSettlements(ctx echo.Context, params ListSettlementsParams) error
	GetSettlementStats(ctx echo.Context) error
	MarkSettlementPaid(ctx echo.Context, settlementId openapi_types.UUID) error

	GetAdminDashboard(ctx echo.Context) error
	GetOrdersByDay(ctx echo.Context, params GetOrdersByDayParams) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/api/v1/price", w.CheckPrice)

	router.POST("/api/v1/orders", w.CreateOrder)
	router.GET("/api/v1/orders", w.ListOrders)
	router.GET("/api/v1/orders/issues", w.ListOrdersWithIssues)
	router.GET("/api/v1/orders/:orderId", w.GetOrder)
	router.POST("/api/v1/orders/:orderId/vendor", w.AssignVendor)
	router.POST("/api/v1/orders/:orderId/rider", w.AssignRider)
	router.POST("/api/v1/orders/:orderId/accept", w.AcceptOrder)
	router.POST("/api/v1/orders/:orderId/progress", w.UpdateProgress)
	router.PUT("/api/v1/orders/:orderId/status", w.SetOrderStatus)
	router.POST("/api/v1/orders/:orderId/payment", w.MarkOrderPaid)
	router.POST("/api/v1/orders/:orderId/issue", w.ReportIssue)
	router.DELETE("/api/v1/orders/:orderId/issue", w.ResolveIssue)

	router.GET("/api/v1/vendors/:vendorId/orders", w.ListVendorOrders)
	router.GET("/api/v1/vendors/:vendorId/earnings", w.GetVendorEarnings)
	router.GET("/api/v1/vendors/:vendorId/dashboard", w.GetVendorDashboard)

	router.GET("/api/v1/customers/:customerId/wallet", w.GetWallet)
	router.POST("/api/v1/customers/:customerId/wallet/adjustments", w.AdjustWallet)

	router.POST("/api/v1/settlements", w.CreateSettlement)
	router.GET("/api/v1/settlements", w.ListSettlements)
	router.GET("/api/v1/settlements/stats", w.GetSettlementStats)
	router.POST("/api/v1/settlements/:settlementId/paid", w.MarkSettlementPaid)

	router.GET("/api/v1/reports/dashboard", w.GetAdminDashboard)
	router.GET("/api/v1/reports/orders-by-day", w.GetOrdersByDay)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func bindPage(ctx echo.Context, limit, offset **int) error {
	if err := bindQuery(ctx, "limit", false, limit); err != nil {
		return err
	}
	return bindQuery(ctx, "offset", false, offset)
}

func (w *ServerInterfaceWrapper) CheckPrice(ctx echo.Context) error {
	var params CheckPriceParams
	if err := bindQuery(ctx, "pickupTime", true, &params.PickupTime); err != nil {
		return err
	}
	if err := bindQuery(ctx, "serviceTier", true, &params.ServiceTier); err != nil {
		return err
	}
	return w.Handler.CheckPrice(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	for name, dest := range map[string]any{
		"status":     &params.Status,
		"vendorId":   &params.VendorId,
		"customerId": &params.CustomerId,
		"day":        &params.Day,
		"hasIssue":   &params.HasIssue,
	} {
		if err := bindQuery(ctx, name, false, dest); err != nil {
			return err
		}
	}
	if err := bindPage(ctx, &params.Limit, &params.Offset); err != nil {
		return err
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) ListOrdersWithIssues(ctx echo.Context) error {
	var params PageParams
	if err := bindPage(ctx, &params.Limit, &params.Offset); err != nil {
		return err
	}
	return w.Handler.ListOrdersWithIssues(ctx, params)
}

func (w *ServerInterfaceWrapper) orderRoute(ctx echo.Context, next func(echo.Context, openapi_types.UUID) error) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return next(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	return w.orderRoute(ctx, w.Handler.GetOrder)
}

func (w *ServerInterfaceWrapper) AssignVendor(ctx echo.Context) error {
	return w.orderRoute(ctx, w.Handler.AssignVendor)
}

func (w *ServerInterfaceWrapper) AssignRider(ctx echo.Context) error {
	return w.orderRoute(ctx, w.Handler.AssignRider)
}

func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	return w.orderRoute(ctx, w.Handler.AcceptOrder)
}

func (w *ServerInterfaceWrapper) UpdateProgress(ctx echo.Context) error {
	return w.orderRoute(ctx, w.Handler.UpdateProgress)
}

func (w *ServerInterfaceWrapper) SetOrderStatus(ctx echo.Context) error {
	return w.orderRoute(ctx, w.Handler.SetOrderStatus)
}

func (w *ServerInterfaceWrapper) MarkOrderPaid(ctx echo.Context) error {
	return w.orderRoute(ctx, w.Handler.MarkOrderPaid)
}

func (w *ServerInterfaceWrapper) ReportIssue(ctx echo.Context) error {
	return w.orderRoute(ctx, w.Handler.ReportIssue)
}

func (w *ServerInterfaceWrapper) ResolveIssue(ctx echo.Context) error {
	return w.orderRoute(ctx, w.Handler.ResolveIssue)
}

func (w *ServerInterfaceWrapper) ListVendorOrders(ctx echo.Context) error {
	vendorId, err := bindPathUUID(ctx, "vendorId")
	if err != nil {
		return err
	}
	var params ListVendorOrdersParams
	if err = bindQuery(ctx, "status", false, &params.Status); err != nil {
		return err
	}
	if err = bindQuery(ctx, "day", false, &params.Day); err != nil {
		return err
	}
	if err = bindPage(ctx, &params.Limit, &params.Offset); err != nil {
		return err
	}
	return w.Handler.ListVendorOrders(ctx, vendorId, params)
}

func (w *ServerInterfaceWrapper) GetVendorEarnings(ctx echo.Context) error {
	vendorId, err := bindPathUUID(ctx, "vendorId")
	if err != nil {
		return err
	}
	var params GetVendorEarningsParams
	if err = bindQuery(ctx, "from", false, &params.From); err != nil {
		return err
	}
	if err = bindQuery(ctx, "to", false, &params.To); err != nil {
		return err
	}
	if err = bindQuery(ctx, "status", false, &params.Status); err != nil {
		return err
	}
	return w.Handler.GetVendorEarnings(ctx, vendorId, params)
}

func (w *ServerInterfaceWrapper) GetVendorDashboard(ctx echo.Context) error {
	vendorId, err := bindPathUUID(ctx, "vendorId")
	if err != nil {
		return err
	}
	return w.Handler.GetVendorDashboard(ctx, vendorId)
}

func (w *ServerInterfaceWrapper) GetWallet(ctx echo.Context) error {
	customerId, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}
	var params PageParams
	if err = bindPage(ctx, &params.Limit, &params.Offset); err != nil {
		return err
	}
	return w.Handler.GetWallet(ctx, customerId, params)
}

func (w *ServerInterfaceWrapper) AdjustWallet(ctx echo.Context) error {
	customerId, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.AdjustWallet(ctx, customerId)
}

func (w *ServerInterfaceWrapper) CreateSettlement(ctx echo.Context) error {
	return w.Handler.CreateSettlement(ctx)
}

func (w *ServerInterfaceWrapper) ListSettlements(ctx echo.Context) error {
	var params ListSettlementsParams
	if err := bindQuery(ctx, "status", false, &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "vendorId", false, &params.VendorId); err != nil {
		return err
	}
	if err := bindPage(ctx, &params.Limit, &params.Offset); err != nil {
		return err
	}
	return w.Handler.ListSettlements(ctx, params)
}

func (w *ServerInterfaceWrapper) GetSettlementStats(ctx echo.Context) error {
	return w.Handler.GetSettlementStats(ctx)
}

func (w *ServerInterfaceWrapper) MarkSettlementPaid(ctx echo.Context) error {
	settlementId, err := bindPathUUID(ctx, "settlementId")
	if err != nil {
		return err
	}
	return w.Handler.MarkSettlementPaid(ctx, settlementId)
}

func (w *ServerInterfaceWrapper) GetAdminDashboard(ctx echo.Context) error {
	return w.Handler.GetAdminDashboard(ctx)
}

func (w *ServerInterfaceWrapper) GetOrdersByDay(ctx echo.Context) error {
	var params GetOrdersByDayParams
	if err := bindQuery(ctx, "from", true, &params.From); err != nil {
		return err
	}
	if err := bindQuery(ctx, "to", true, &params.To); err != nil {
		return err
	}
	if err := bindQuery(ctx, "vendorId", false, &params.VendorId); err != nil {
		return err
	}
	return w.Handler.GetOrdersByDay(ctx, params)
}
