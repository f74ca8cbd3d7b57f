package settlementrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/settlementrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settlement"
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

type SettlementRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *settlementrepo.GormSettlementRepository
	tracker    *MockAggregateTracker
}

func TestSettlementRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(SettlementRepositoryIntegrationTestSuite))
}

func (suite *SettlementRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
	suite.Require().NoError(db.AutoMigrate(settlementrepo.Models()...))
}

func (suite *SettlementRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db, "settlements"))
	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = settlementrepo.NewGormSettlementRepository(suite.db, suite.tracker)
}

func (suite *SettlementRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SettlementRepositoryIntegrationTestSuite) TestAddAndMarkPaid() {
	ctx := context.Background()
	s, err := settlement.NewSettlement(kernel.NewUUID(), kernel.MustMoney("1200.40"), "march payout", time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, s))
	suite.Equal(int64(1), s.Version())

	locked, err := suite.repository.GetForUpdate(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(settlement.Pending, locked.Status())
	suite.Nil(locked.PaidAt())
	suite.Equal("1200.40", locked.Amount().String())
	suite.Equal("march payout", locked.Note())

	paidAt := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
	suite.Require().NoError(locked.MarkPaid(kernel.MustActor(kernel.RoleAdmin, kernel.NewUUID()), paidAt))
	suite.Require().NoError(suite.repository.Update(ctx, locked))

	reloaded, err := suite.repository.GetForUpdate(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(settlement.Paid, reloaded.Status())
	suite.Require().NotNil(reloaded.PaidAt())
	suite.True(paidAt.Equal(*reloaded.PaidAt()))
	suite.Equal(int64(2), reloaded.Version())
}

func (suite *SettlementRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Conflict() {
	ctx := context.Background()
	admin := kernel.MustActor(kernel.RoleAdmin, kernel.NewUUID())
	s, err := settlement.NewSettlement(kernel.NewUUID(), kernel.MustMoney("10"), "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, s))

	a, err := suite.repository.GetForUpdate(ctx, s.ID())
	suite.Require().NoError(err)
	b, err := suite.repository.GetForUpdate(ctx, s.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(a.MarkPaid(admin, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, a))
	suite.Require().NoError(b.MarkPaid(admin, time.Now().UTC()))

	suite.Require().ErrorIs(suite.repository.Update(ctx, b), errs.ErrVersionConflict)
}

func (suite *SettlementRepositoryIntegrationTestSuite) TestGetForUpdate_NotFound() {
	_, err := suite.repository.GetForUpdate(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
