package orderrepo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(orderrepo.Models()...))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "order_item_images", "order_items", "orders"))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	first, err := order.NewItem(kernel.NewUUID(), 2, "collar stain", []string{"/uploads/a.jpg", "/uploads/b.jpg"})
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), 1, "", nil)
	suite.Require().NoError(err)

	pickup := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{first, second},
		pickup, order.Express48h, kernel.MustMoney("799.50"), "27ABCDE1234F1Z5", pickup.Add(-time.Hour))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) admin() kernel.Actor {
	return kernel.MustActor(kernel.RoleAdmin, kernel.NewUUID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsItemsAndImages() {
	ctx := context.Background()
	o := suite.newOrder()

	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Equal(int64(1), o.Version())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(o.ID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.Unpaid, loaded.PaymentStatus())
	suite.Equal(order.Express48h, loaded.Tier())
	suite.Equal("799.50", loaded.TotalAmount().String())
	suite.Equal("27ABCDE1234F1Z5", loaded.GSTNumber())
	suite.True(loaded.DeliveryTime().Equal(o.DeliveryTime()))
	suite.Empty(loaded.DomainEvents())

	suite.Require().Len(loaded.Items(), 2)
	suite.True(loaded.Items()[0].ID().IsEqual(o.Items()[0].ID()))
	suite.Equal([]string{"/uploads/a.jpg", "/uploads/b.jpg"}, loaded.Items()[0].Images())
	suite.Equal("collar stain", loaded.Items()[0].Condition())
	suite.Empty(loaded.Items()[1].Images())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_StoreError() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	again, err := order.RestoreOrder(order.RestoreParams{
		ID:            o.ID(),
		CustomerID:    o.CustomerID(),
		Items:         []order.Item{suite.newOrder().Items()[1]},
		PickupTime:    o.PickupTime(),
		DeliveryTime:  o.DeliveryTime(),
		Tier:          o.Tier(),
		TotalAmount:   o.TotalAmount(),
		PaymentStatus: order.Unpaid,
		Status:        order.Pending,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	})
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, again)
	suite.Require().ErrorIs(err, errs.ErrStore)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsMutableFields() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	now := time.Now().UTC()
	vendorID, riderID := kernel.NewUUID(), kernel.NewUUID()
	suite.Require().NoError(o.AssignVendor(suite.admin(), vendorID, now))
	suite.Require().NoError(o.AssignRider(suite.admin(), riderID, now))
	suite.Require().NoError(o.MarkPaid(suite.admin(), now))
	issue, err := order.NewIssue("late", "two days late")
	suite.Require().NoError(err)
	suite.Require().NoError(o.ReportIssue(kernel.MustActor(kernel.RoleCustomer, o.CustomerID()), issue, now))

	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Equal(int64(2), o.Version())

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PickupAssigned, loaded.Status())
	suite.Equal(order.Paid, loaded.PaymentStatus())
	suite.True(loaded.VendorID().IsEqual(vendorID))
	suite.True(loaded.RiderID().IsEqual(riderID))
	suite.Require().True(loaded.HasIssue())
	suite.Equal("late", loaded.Issue().Category())
	suite.Equal("two days late", loaded.Issue().Note())
	suite.Equal(int64(2), loaded.Version())
	suite.Len(loaded.Items(), 2)

	_, err = loaded.ResolveIssue(suite.admin(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(reloaded.HasIssue())
	suite.Nil(reloaded.Issue())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Conflict() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	now := time.Now().UTC()
	suite.Require().NoError(first.AssignVendor(suite.admin(), kernel.NewUUID(), now))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.AssignRider(suite.admin(), kernel.NewUUID(), now))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrVersionConflict)
	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(stored.RiderID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing_NotFound() {
	o := suite.newOrder()

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_SerializesWriters() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	vendorID := kernel.NewUUID()
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = suite.db.Transaction(func(tx *gorm.DB) error {
				repo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
				locked, err := repo.GetForUpdate(ctx, o.ID())
				if err != nil {
					return err
				}
				if err := locked.AssignVendor(suite.admin(), vendorID, time.Now().UTC()); err != nil {
					return err
				}
				return repo.Update(ctx, locked)
			})
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrInvalidTransition):
			rejected++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, rejected)

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(2), stored.Version())
}
