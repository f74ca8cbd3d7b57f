package http

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/settlement"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/core/domain/services"
)

// Handler is the shape shared by every command and query handler.
type Handler[Req, Resp any] interface {
	Handle(ctx context.Context, req Req) (Resp, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

func (f HandlerFunc[Req, Resp]) Handle(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}

// Commands groups the handlers that modify state.
type Commands struct {
	CreateOrder        Handler[commands.CreateOrderCommand, *order.Order]
	AssignVendor       Handler[commands.AssignVendorCommand, *order.Order]
	AssignRider        Handler[commands.AssignRiderCommand, *order.Order]
	AcceptOrder        Handler[commands.AcceptOrderCommand, *order.Order]
	UpdateProgress     Handler[commands.UpdateProgressCommand, *order.Order]
	SetOrderStatus     Handler[commands.SetOrderStatusCommand, *order.Order]
	MarkOrderPaid      Handler[commands.MarkOrderPaidCommand, *order.Order]
	ReportIssue        Handler[commands.ReportIssueCommand, *order.Order]
	ResolveIssue       Handler[commands.ResolveIssueCommand, *order.Order]
	GetOrCreateWallet  Handler[commands.GetOrCreateWalletCommand, *wallet.Wallet]
	AdjustWallet       Handler[commands.AdjustWalletCommand, commands.AdjustWalletResult]
	CreateSettlement   Handler[commands.CreateSettlementCommand, *settlement.Settlement]
	MarkSettlementPaid Handler[commands.MarkSettlementPaidCommand, *settlement.Settlement]
}

// Queries groups the read-only handlers.
type Queries struct {
	CheckPrice         Handler[queries.CheckPriceQuery, services.Quote]
	GetOrder           Handler[queries.GetOrderQuery, queries.OrderView]
	ListOrders         Handler[queries.ListOrdersQuery, []queries.OrderView]
	ListVendorOrders   Handler[queries.ListVendorOrdersQuery, []queries.OrderView]
	OrdersWithIssues   Handler[queries.OrdersWithIssuesQuery, []queries.OrderView]
	GetVendorEarnings  Handler[queries.GetVendorEarningsQuery, queries.GetVendorEarningsQueryResponse]
	GetSettlementStats Handler[queries.GetSettlementStatsQuery, queries.GetSettlementStatsQueryResponse]
	ListSettlements    Handler[queries.ListSettlementsQuery, []queries.SettlementView]
	AdminDashboard     Handler[queries.AdminDashboardQuery, queries.AdminDashboardQueryResponse]
	VendorDashboard    Handler[queries.VendorDashboardQuery, queries.VendorDashboardQueryResponse]
	OrdersByDay        Handler[queries.OrdersByDayQuery, []queries.DayTotal]
	GetWallet          Handler[queries.GetWalletQuery, queries.WalletView]
}

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
	now      func() time.Time
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds Commands, qs Queries, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		commands: cmds,
		queries:  qs,
		logger:   logger.With("component", "http"),
		now:      time.Now,
	}
}
