package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/settlement"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toSettlementStatus(raw *string) (*settlement.Status, error) {
	if raw == nil {
		return nil, nil
	}
	status, err := settlement.ParseStatus(*raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// CreateSettlement handles POST /api/v1/settlements - records a vendor payout.
func (s *Server) CreateSettlement(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body NewSettlement
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	vendorID, err := toID("vendorId", body.VendorId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateSettlementCommand(actor, vendorID, body.Amount, body.Note)
	if err != nil {
		return s.fail(ctx, err)
	}
	created, err := s.commands.CreateSettlement.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, presentSettlement(created))
}

// ListSettlements handles GET /api/v1/settlements.
func (s *Server) ListSettlements(ctx echo.Context, params ListSettlementsParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := toSettlementStatus(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	vendorID, err := toOptionalID(params.VendorId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListSettlementsQuery(actor, status, vendorID, toPage(params.Limit, params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.ListSettlements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, presentSettlementViews(views))
}

// GetSettlementStats handles GET /api/v1/settlements/stats.
func (s *Server) GetSettlementStats(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetSettlementStatsQuery(actor)
	if err != nil {
		return s.fail(ctx, err)
	}
	stats, err := s.queries.GetSettlementStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, SettlementStats{
		Pending: presentStatusTotal(stats.Pending),
		Paid:    presentStatusTotal(stats.Paid),
	})
}

// MarkSettlementPaid handles POST /api/v1/settlements/{settlementId}/paid.
func (s *Server) MarkSettlementPaid(ctx echo.Context, settlementId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := toID("settlementId", settlementId)
	if err != nil {
		return s.fail(ctx, err)
	}
	version, err := expectedVersion(ctx, nil)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkSettlementPaidCommand(actor, id, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	paid, err := s.commands.MarkSettlementPaid.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, presentSettlement(paid))
}

// GetVendorEarnings handles GET /api/v1/vendors/{vendorId}/earnings.
func (s *Server) GetVendorEarnings(ctx echo.Context, vendorId openapi_types.UUID, params GetVendorEarningsParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := toID("vendorId", vendorId)
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := toSettlementStatus(params.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetVendorEarningsQuery(actor, id, queries.DateRange{From: params.From, To: params.To}, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	earnings, err := s.queries.GetVendorEarnings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	summary := make([]StatusTotal, 0, len(earnings.Summary))
	for _, total := range earnings.Summary {
		summary = append(summary, presentStatusTotal(total))
	}
	return ctx.JSON(http.StatusOK, VendorEarnings{
		Settlements: presentSettlementViews(earnings.Settlements),
		Summary:     summary,
	})
}
