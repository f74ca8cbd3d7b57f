package cmd

import (
	"log/slog"
	"net/http"
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/identity"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

// systemActorID identifies the scheduler when it runs admin-only reports.
var systemActorID = kernel.MustUUIDFromString("00000000-0000-4000-8000-000000000001")

type CompositionRoot struct {
	config          Config
	gormDB          *gorm.DB
	uowFactory      *postgres.GormUnitOfWorkFactory
	vendorDirectory ports.VendorDirectory
	priceVerifier   ports.PriceVerifier
	logger          *slog.Logger
}

// NewCompositionRoot wires adapters around one gorm handle. publisher may be
// nil, in which case committed events are dropped.
func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	var directory ports.VendorDirectory = identity.TrustingVendorDirectory{}
	if config.IdentityServiceURL != "" {
		directory = identity.NewHTTPVendorDirectory(config.IdentityServiceURL, &http.Client{Timeout: 5 * time.Second})
	}
	return CompositionRoot{
		config:          config,
		gormDB:          gormDB,
		uowFactory:      postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		vendorDirectory: directory,
		priceVerifier:   services.NewTrustedPriceVerifier(),
		logger:          logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) walletUoWFactory() commands.WalletUoWFactory {
	return FuncWalletUoWFactory(func() commands.WalletUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.priceVerifier)
}

func (c *CompositionRoot) CreateAssignVendorCommandHandler() commands.AssignVendorCommandHandler {
	return commands.NewAssignVendorCommandHandler(c.orderUoWFactory(), c.vendorDirectory)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProgressCommandHandler() commands.UpdateProgressCommandHandler {
	return commands.NewUpdateProgressCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() commands.ReportIssueCommandHandler {
	return commands.NewReportIssueCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateResolveIssueCommandHandler() commands.ResolveIssueCommandHandler {
	return commands.NewResolveIssueCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrCreateWalletCommandHandler() commands.GetOrCreateWalletCommandHandler {
	return commands.NewGetOrCreateWalletCommandHandler(c.walletUoWFactory())
}

func (c *CompositionRoot) CreateAdjustWalletCommandHandler() commands.AdjustWalletCommandHandler {
	return commands.NewAdjustWalletCommandHandler(c.walletUoWFactory())
}

func (c *CompositionRoot) CreateCreateSettlementCommandHandler() commands.CreateSettlementCommandHandler {
	return commands.NewCreateSettlementCommandHandler(c.settlementUoWFactory(), c.vendorDirectory)
}

func (c *CompositionRoot) CreateMarkSettlementPaidCommandHandler() commands.MarkSettlementPaidCommandHandler {
	return commands.NewMarkSettlementPaidCommandHandler(c.settlementUoWFactory())
}

func (c *CompositionRoot) CreateGetSettlementStatsQueryHandler() queries.GetSettlementStatsQueryHandler {
	return queries.NewGetSettlementStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAdminDashboardQueryHandler() queries.AdminDashboardQueryHandler {
	return queries.NewAdminDashboardQueryHandler(c.gormDB)
}

// CreateHTTPServer binds every use case to its HTTP operation.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Commands{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AssignVendor:       c.CreateAssignVendorCommandHandler(),
		AssignRider:        c.CreateAssignRiderCommandHandler(),
		AcceptOrder:        c.CreateAcceptOrderCommandHandler(),
		UpdateProgress:     c.CreateUpdateProgressCommandHandler(),
		SetOrderStatus:     c.CreateSetOrderStatusCommandHandler(),
		MarkOrderPaid:      c.CreateMarkOrderPaidCommandHandler(),
		ReportIssue:        c.CreateReportIssueCommandHandler(),
		ResolveIssue:       c.CreateResolveIssueCommandHandler(),
		GetOrCreateWallet:  c.CreateGetOrCreateWalletCommandHandler(),
		AdjustWallet:       c.CreateAdjustWalletCommandHandler(),
		CreateSettlement:   c.CreateCreateSettlementCommandHandler(),
		MarkSettlementPaid: c.CreateMarkSettlementPaidCommandHandler(),
	}, httpin.Queries{
		CheckPrice:         queries.NewCheckPriceQueryHandler(),
		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:         queries.NewListOrdersQueryHandler(c.gormDB),
		ListVendorOrders:   queries.NewListVendorOrdersQueryHandler(c.gormDB),
		OrdersWithIssues:   queries.NewOrdersWithIssuesQueryHandler(c.gormDB),
		GetVendorEarnings:  queries.NewGetVendorEarningsQueryHandler(c.gormDB),
		GetSettlementStats: c.CreateGetSettlementStatsQueryHandler(),
		ListSettlements:    queries.NewListSettlementsQueryHandler(c.gormDB),
		AdminDashboard:     c.CreateAdminDashboardQueryHandler(),
		VendorDashboard:    queries.NewVendorDashboardQueryHandler(c.gormDB),
		OrdersByDay:        queries.NewOrdersByDayQueryHandler(c.gormDB),
		GetWallet:          queries.NewGetWalletQueryHandler(c.gormDB),
	}, c.logger)
}

// CreateJobManager schedules the read-only digests under the system actor.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetSettlementStatsQueryHandler(),
		c.CreateAdminDashboardQueryHandler(),
		kernel.MustActor(kernel.RoleAdmin, systemActorID),
		jobs.Schedules{
			SettlementDigest: c.config.SettlementDigestCron,
			IssueDigest:      c.config.IssueDigestCron,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWalletUoWFactory func() commands.WalletUoW

func (f FuncWalletUoWFactory) Create() commands.WalletUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
