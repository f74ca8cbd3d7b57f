package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetWallet handles GET /api/v1/customers/{customerId}/wallet. The wallet is
// opened on first access, then read back with its newest transactions.
func (s *Server) GetWallet(ctx echo.Context, customerId openapi_types.UUID, params PageParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := toID("customerId", customerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewGetOrCreateWalletCommand(actor, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if _, err = s.commands.GetOrCreateWallet.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetWalletQuery(actor, id, toPage(params.Limit, params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.GetWallet.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, presentWalletView(view))
}

// AdjustWallet handles POST /api/v1/customers/{customerId}/wallet/adjustments.
func (s *Server) AdjustWallet(ctx echo.Context, customerId openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := toID("customerId", customerId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var body WalletAdjustment
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	version, err := expectedVersion(ctx, body.ExpectedVersion)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdjustWalletCommand(actor, id, body.Amount, body.Type, body.Note, version)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.commands.AdjustWallet.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, AdjustmentResult{
		Balance:     result.Wallet.Balance().String(),
		Transaction: presentTransaction(result.Transaction),
		Version:     result.Wallet.Version(),
	})
}
