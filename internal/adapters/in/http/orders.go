package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toID(name string, raw openapi_types.UUID) (kernel.UUID, error) {
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return id, nil
}

func toOptionalID(raw *openapi_types.UUID) (*kernel.UUID, error) {
	return kernel.OptionalUUID(raw)
}

func toDay(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	day := d.Time
	return &day
}

func toPage(limit, offset *int) queries.Page {
	var page queries.Page
	if limit != nil {
		page.Limit = *limit
	}
	if offset != nil {
		page.Offset = *offset
	}
	return page
}

func toOrderStatus(raw *string) (*order.Status, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := order.ParseStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// CheckPrice handles GET /api/v1/price - quotes the delivery date for a tier.
func (s *Server) CheckPrice(ctx echo.Context, params CheckPriceParams) error {
	query, err := queries.NewCheckPriceQuery(params.PickupTime, params.ServiceTier)
	if err != nil {
		return s.fail(ctx, err)
	}
	quote, err := s.queries.CheckPrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Quote{
		ServiceTier:     quote.Tier.String(),
		PickupTime:      quote.PickupTime,
		DeliveryTime:    quote.DeliveryTime,
		PriceMultiplier: quote.Multiplier.String(),
	})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	customerID, err := toID("customerId", body.CustomerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		catalogID, err := toID("catalogItemId", item.CatalogItemId)
		if err != nil {
			return s.fail(ctx, err)
		}
		items = append(items, commands.ItemInput{
			CatalogItemID: catalogID,
			Quantity:      item.Quantity,
			Condition:     item.Condition,
			Images:        item.Images,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(actor, customerID, items, body.PickupTime, body.ServiceTier, body.TotalAmount, body.GstNumber)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, presentOrder(o))
}

// ListOrders handles GET /api/v1/orders - the admin order listing.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := toOrderStatus(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	vendorID, err := toOptionalID(params.VendorId)
	if err != nil {
		return s.fail(ctx, err)
	}
	customerID, err := toOptionalID(params.CustomerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	filter := queries.OrderFilter{
		Status:     status,
		VendorID:   vendorID,
		CustomerID: customerID,
		Day:        toDay(params.Day),
		HasIssue:   params.HasIssue,
	}

	query, err := queries.NewListOrdersQuery(actor, filter, toPage(params.Limit, params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, presentOrderViews(views))
}

// ListOrdersWithIssues handles GET /api/v1/orders/issues - the dispute queue.
func (s *Server) ListOrdersWithIssues(ctx echo.Context, params PageParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewOrdersWithIssuesQuery(actor, toPage(params.Limit, params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.OrdersWithIssues.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, presentOrderViews(views))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, id, err := s.orderTarget(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, presentOrderView(view))
}

// AssignVendor handles POST /api/v1/orders/{orderId}/vendor.
func (s *Server) AssignVendor(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, id, err := s.orderTarget(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body AssignVendor
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	vendorID, err := toID("vendorId", body.VendorId)
	if err != nil {
		return s.fail(ctx, err)
	}
	version, err := expectedVersion(ctx, body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignVendorCommand(actor, id, vendorID, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx)(s.commands.AssignVendor.Handle(ctx.Request().Context(), cmd))
}

// AssignRider handles POST /api/v1/orders/{orderId}/rider.
func (s *Server) AssignRider(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, id, err := s.orderTarget(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body AssignRider
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	riderID, err := toID("riderId", body.RiderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	version, err := expectedVersion(ctx, body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignRiderCommand(actor, id, riderID, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx)(s.commands.AssignRider.Handle(ctx.Request().Context(), cmd))
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, id, err := s.orderTarget(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	version, err := expectedVersion(ctx, nil)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAcceptOrderCommand(actor, id, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx)(s.commands.AcceptOrder.Handle(ctx.Request().Context(), cmd))
}

// UpdateProgress handles POST /api/v1/orders/{orderId}/progress.
func (s *Server) UpdateProgress(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, id, err := s.orderTarget(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	version, err := expectedVersion(ctx, body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewUpdateProgressCommand(actor, id, body.Status, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx)(s.commands.UpdateProgress.Handle(ctx.Request().Context(), cmd))
}

// SetOrderStatus handles PUT /api/v1/orders/{orderId}/status - the admin override.
func (s *Server) SetOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, id, err := s.orderTarget(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body StatusChange
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	version, err := expectedVersion(ctx, body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSetOrderStatusCommand(actor, id, body.Status, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx)(s.commands.SetOrderStatus.Handle(ctx.Request().Context(), cmd))
}

// MarkOrderPaid handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) MarkOrderPaid(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, id, err := s.orderTarget(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	version, err := expectedVersion(ctx, nil)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewMarkOrderPaidCommand(actor, id, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx)(s.commands.MarkOrderPaid.Handle(ctx.Request().Context(), cmd))
}

// ReportIssue handles POST /api/v1/orders/{orderId}/issue.
func (s *Server) ReportIssue(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, id, err := s.orderTarget(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body NewIssue
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	version, err := expectedVersion(ctx, body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewReportIssueCommand(actor, id, body.Category, body.Note, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx)(s.commands.ReportIssue.Handle(ctx.Request().Context(), cmd))
}

// ResolveIssue handles DELETE /api/v1/orders/{orderId}/issue.
func (s *Server) ResolveIssue(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, id, err := s.orderTarget(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	version, err := expectedVersion(ctx, nil)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewResolveIssueCommand(actor, id, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondOrder(ctx)(s.commands.ResolveIssue.Handle(ctx.Request().Context(), cmd))
}

func (s *Server) orderTarget(ctx echo.Context, orderId openapi_types.UUID) (kernel.Actor, kernel.UUID, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}
	id, err := toID("orderId", orderId)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}
	return actor, id, nil
}

func (s *Server) respondOrder(ctx echo.Context) func(*order.Order, error) error {
	return func(o *order.Order, err error) error {
		if err != nil {
			return s.fail(ctx, err)
		}
		return ctx.JSON(http.StatusOK, presentOrder(o))
	}
}
