package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgresadapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/wallet"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/ddd"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *MockEventPublisher
	factory   ports.UnitOfWorkFactory
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.Require().NoError(postgresadapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, postgresadapter.Tables...))
	suite.publisher = new(MockEventPublisher)
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, nil)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), 1, "", nil)
	suite.Require().NoError(err)
	pickup := time.Now().UTC().Add(24 * time.Hour)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, pickup,
		order.Standard, kernel.MustMoney("100"), "", time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishesEventsAfterCommit() {
	ctx := context.Background()
	o := suite.newOrder()

	suite.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []ddd.DomainEvent) bool {
		if len(events) != 1 {
			return false
		}
		changed, ok := events[0].(order.ChangedEvent)
		return ok && changed.Reason == "created" && changed.OrderID.IsEqual(o.ID())
	})).Return(nil).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
	suite.Require().NoError(uow.Commit(ctx))

	suite.publisher.AssertExpectations(suite.T())
	suite.Empty(o.DomainEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishFailureKeepsData() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWritesAndEvents() {
	ctx := context.Background()
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(o.DomainEvents())
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultipleRepositoriesShareTransaction() {
	ctx := context.Background()
	admin := kernel.MustActor(kernel.RoleAdmin, kernel.NewUUID())
	o := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	w, err := uow.WalletRepository().GetOrCreateForUpdate(ctx, o.CustomerID(), time.Now().UTC())
	suite.Require().NoError(err)
	_, err = w.Adjust(admin, kernel.MustMoney("25"), wallet.Credit, "goodwill", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WalletRepository().Update(ctx, w))
	suite.Require().NoError(uow.Rollback(ctx))

	var wallets int64
	suite.Require().NoError(suite.db.Table("wallets").Count(&wallets).Error)
	suite.Equal(int64(0), wallets)
	var orders int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orders).Error)
	suite.Equal(int64(0), orders)
}

type walletUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f walletUoWFactory) Create() commands.WalletUoW {
	return f.factory.Create()
}

func (suite *UnitOfWorkIntegrationTestSuite) TestAdjustWallet_ConcurrentDebitsSerialize() {
	ctx := context.Background()
	admin := kernel.MustActor(kernel.RoleAdmin, kernel.NewUUID())
	customerID := kernel.NewUUID()
	handler := commands.NewAdjustWalletCommandHandler(walletUoWFactory{factory: suite.factory})

	topUp, err := commands.NewAdjustWalletCommand(admin, customerID, "100", "credit", "topup", 0)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, topUp)
	suite.Require().NoError(err)

	const debits = 8
	results := make([]error, debits)
	var wg sync.WaitGroup
	for i := range debits {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewAdjustWalletCommand(admin, customerID, "100", "debit", "", 0)
			if cmdErr != nil {
				results[i] = cmdErr
				return
			}
			_, results[i] = handler.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, errs.ErrInsufficientBalance)
	}
	suite.Equal(1, succeeded)

	var balance decimal.Decimal
	suite.Require().NoError(suite.db.Raw(
		"SELECT balance FROM wallets WHERE customer_id = ?", customerID.Bytes()).Scan(&balance).Error)
	suite.Equal("0.00", balance.StringFixed(2))

	var debitRows int64
	suite.Require().NoError(suite.db.Raw(`
		SELECT COUNT(*) FROM wallet_transactions t
		JOIN wallets w ON w.id = t.wallet_id
		WHERE w.customer_id = ? AND t.type = ?`, customerID.Bytes(), string(wallet.Debit)).Scan(&debitRows).Error)
	suite.Equal(int64(1), debitRows)
}
