package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settlement"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func settlementUoW() (*MockSettlementRepository, *MockUoW, *MockSettlementUoWFactory) {
	repo := new(MockSettlementRepository)
	uow := new(MockUoW)
	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("SettlementRepository").Return(repo)
	uow.On("Rollback", mock.Anything).Return(nil)
	return repo, uow, factory
}

func TestCreateSettlementCommandHandler(t *testing.T) {
	t.Run("creates a pending settlement", func(t *testing.T) {
		repo, uow, factory := settlementUoW()
		vendorID := kernel.NewUUID()
		directory := new(MockVendorDirectory)
		directory.On("Vendor", mock.Anything, vendorID).Return(services.Vendor{ID: vendorID}, nil).Once()
		repo.On("Add", mock.Anything, mock.AnythingOfType("*settlement.Settlement")).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()

		cmd, err := commands.NewCreateSettlementCommand(adminActor(), vendorID, "1500", "march")
		require.NoError(t, err)
		got, err := commands.NewCreateSettlementCommandHandler(factory, directory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, settlement.Pending, got.Status())
		assert.Equal(t, "1500.00", got.Amount().String())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		_, _, factory := settlementUoW()
		vendorID := kernel.NewUUID()
		directory := new(MockVendorDirectory)
		directory.On("Vendor", mock.Anything, vendorID).Return(services.Vendor{}, errs.NewObjectNotFoundError("vendor", vendorID.String()))

		cmd, err := commands.NewCreateSettlementCommand(adminActor(), vendorID, "10", "")
		require.NoError(t, err)
		_, err = commands.NewCreateSettlementCommandHandler(factory, directory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("amount must be positive", func(t *testing.T) {
		_, err := commands.NewCreateSettlementCommand(adminActor(), kernel.NewUUID(), "0", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("vendors cannot create settlements", func(t *testing.T) {
		_, _, factory := settlementUoW()
		vendorID := kernel.NewUUID()

		cmd, err := commands.NewCreateSettlementCommand(kernel.MustActor(kernel.RoleVendor, vendorID), vendorID, "10", "")
		require.NoError(t, err)
		_, err = commands.NewCreateSettlementCommandHandler(factory, new(MockVendorDirectory)).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrActionIsForbidden)
	})
}

func TestMarkSettlementPaidCommandHandler(t *testing.T) {
	t.Run("second call fails and keeps paidAt", func(t *testing.T) {
		repo, uow, factory := settlementUoW()
		s, err := settlement.NewSettlement(kernel.NewUUID(), kernel.MustMoney("70"), "", time.Now())
		require.NoError(t, err)
		repo.On("GetForUpdate", mock.Anything, s.ID()).Return(s, nil)
		repo.On("Update", mock.Anything, s).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()
		h := commands.NewMarkSettlementPaidCommandHandler(factory)

		cmd, err := commands.NewMarkSettlementPaidCommand(adminActor(), s.ID(), 0)
		require.NoError(t, err)
		got, err := h.Handle(t.Context(), cmd)
		require.NoError(t, err)
		require.NotNil(t, got.PaidAt())
		paidAt := *got.PaidAt()

		_, err = h.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, paidAt, *s.PaidAt())
		repo.AssertNumberOfCalls(t, "Update", 1)
	})

	t.Run("begin failure", func(t *testing.T) {
		uow := new(MockUoW)
		factory := new(MockSettlementUoWFactory)
		factory.On("Create").Return(uow)
		uow.On("Begin", mock.Anything).Return(errors.New("connection refused"))

		cmd, err := commands.NewMarkSettlementPaidCommand(adminActor(), kernel.NewUUID(), 0)
		require.NoError(t, err)
		_, err = commands.NewMarkSettlementPaidCommandHandler(factory).Handle(t.Context(), cmd)

		require.Error(t, err)
		uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})
}
