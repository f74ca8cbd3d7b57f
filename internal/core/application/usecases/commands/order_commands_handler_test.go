package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type OrderCommandsSuite struct {
	suite.Suite

	repo    *MockOrderRepository
	uow     *MockUoW
	factory *MockOrderUoWFactory
	order   *order.Order
	admin   kernel.Actor
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsSuite))
}

func (s *OrderCommandsSuite) SetupTest() {
	s.repo = new(MockOrderRepository)
	s.uow = new(MockUoW)
	s.factory = new(MockOrderUoWFactory)
	s.order = pendingOrder(kernel.NewUUID())
	s.admin = adminActor()

	s.factory.On("Create").Return(s.uow)
	s.uow.On("Begin", mock.Anything).Return(nil)
	s.uow.On("OrderRepository").Return(s.repo)
	s.uow.On("Rollback", mock.Anything).Return(nil)
	s.repo.On("GetForUpdate", mock.Anything, s.order.ID()).Return(s.order, nil)
}

func (s *OrderCommandsSuite) expectWrite() {
	s.repo.On("Update", mock.Anything, s.order).Return(nil).Once()
	s.uow.On("Commit", mock.Anything).Return(nil).Once()
}

func (s *OrderCommandsSuite) assertNoWrite() {
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *OrderCommandsSuite) vendorDirectory(v services.Vendor, err error) *MockVendorDirectory {
	d := new(MockVendorDirectory)
	d.On("Vendor", mock.Anything, v.ID).Return(v, err)
	return d
}

func (s *OrderCommandsSuite) TestAssignVendor_Success() {
	vendor := services.Vendor{ID: kernel.NewUUID(), Approved: true}
	s.expectWrite()

	cmd, err := commands.NewAssignVendorCommand(s.admin, s.order.ID(), vendor.ID, 1)
	s.Require().NoError(err)
	got, err := commands.NewAssignVendorCommandHandler(s.factory, s.vendorDirectory(vendor, nil)).Handle(s.T().Context(), cmd)

	s.Require().NoError(err)
	s.Equal(order.PickupAssigned, got.Status())
	s.True(got.VendorID().IsEqual(vendor.ID))
	s.repo.AssertExpectations(s.T())
	s.uow.AssertExpectations(s.T())
}

func (s *OrderCommandsSuite) TestAssignVendor_UnknownVendor() {
	vendor := services.Vendor{ID: kernel.NewUUID()}
	directory := s.vendorDirectory(vendor, errs.NewObjectNotFoundError("vendor", vendor.ID.String()))

	cmd, err := commands.NewAssignVendorCommand(s.admin, s.order.ID(), vendor.ID, 0)
	s.Require().NoError(err)
	_, err = commands.NewAssignVendorCommandHandler(s.factory, directory).Handle(s.T().Context(), cmd)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.factory.AssertNotCalled(s.T(), "Create")
}

func (s *OrderCommandsSuite) TestAssignVendor_NotPending() {
	s.Require().NoError(s.order.SetStatus(s.admin, order.Processing, s.order.CreatedAt()))
	vendor := services.Vendor{ID: kernel.NewUUID(), Approved: true}

	cmd, err := commands.NewAssignVendorCommand(s.admin, s.order.ID(), vendor.ID, 0)
	s.Require().NoError(err)
	_, err = commands.NewAssignVendorCommandHandler(s.factory, s.vendorDirectory(vendor, nil)).Handle(s.T().Context(), cmd)

	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	s.assertNoWrite()
}

func (s *OrderCommandsSuite) TestAssignVendor_ForbiddenForVendors() {
	vendorID := kernel.NewUUID()
	directory := new(MockVendorDirectory)

	cmd, err := commands.NewAssignVendorCommand(kernel.MustActor(kernel.RoleVendor, vendorID), s.order.ID(), vendorID, 0)
	s.Require().NoError(err)
	_, err = commands.NewAssignVendorCommandHandler(s.factory, directory).Handle(s.T().Context(), cmd)

	s.Require().ErrorIs(err, errs.ErrActionIsForbidden)
	directory.AssertNotCalled(s.T(), "Vendor", mock.Anything, mock.Anything)
}

func (s *OrderCommandsSuite) TestStaleVersionIsRejected() {
	cmd, err := commands.NewAssignRiderCommand(s.admin, s.order.ID(), kernel.NewUUID(), 7)
	s.Require().NoError(err)

	_, err = commands.NewAssignRiderCommandHandler(s.factory).Handle(s.T().Context(), cmd)

	s.Require().ErrorIs(err, errs.ErrVersionConflict)
	s.Nil(s.order.RiderID())
	s.assertNoWrite()
}

func (s *OrderCommandsSuite) TestAcceptAndProgress() {
	vendorID := kernel.NewUUID()
	s.Require().NoError(s.order.AssignVendor(s.admin, vendorID, s.order.CreatedAt()))
	vendor := kernel.MustActor(kernel.RoleVendor, vendorID)
	s.repo.On("Update", mock.Anything, s.order).Return(nil)
	s.uow.On("Commit", mock.Anything).Return(nil)

	accept, err := commands.NewAcceptOrderCommand(vendor, s.order.ID(), 0)
	s.Require().NoError(err)
	got, err := commands.NewAcceptOrderCommandHandler(s.factory).Handle(s.T().Context(), accept)
	s.Require().NoError(err)
	s.Equal(order.PickedUp, got.Status())

	skip, err := commands.NewUpdateProgressCommand(vendor, s.order.ID(), "out_for_delivery", 0)
	s.Require().NoError(err)
	_, err = commands.NewUpdateProgressCommandHandler(s.factory).Handle(s.T().Context(), skip)
	s.Require().ErrorIs(err, errs.ErrInvalidTransition)

	next, err := commands.NewUpdateProgressCommand(vendor, s.order.ID(), "processing", 0)
	s.Require().NoError(err)
	got, err = commands.NewUpdateProgressCommandHandler(s.factory).Handle(s.T().Context(), next)
	s.Require().NoError(err)
	s.Equal(order.Processing, got.Status())
	s.repo.AssertNumberOfCalls(s.T(), "Update", 2)
}

func (s *OrderCommandsSuite) TestAcceptByAnotherVendorIsForbidden() {
	s.Require().NoError(s.order.AssignVendor(s.admin, kernel.NewUUID(), s.order.CreatedAt()))

	cmd, err := commands.NewAcceptOrderCommand(kernel.MustActor(kernel.RoleVendor, kernel.NewUUID()), s.order.ID(), 0)
	s.Require().NoError(err)
	_, err = commands.NewAcceptOrderCommandHandler(s.factory).Handle(s.T().Context(), cmd)

	s.Require().ErrorIs(err, errs.ErrActionIsForbidden)
	s.assertNoWrite()
}

func (s *OrderCommandsSuite) TestSetOrderStatusOverride() {
	s.expectWrite()

	cmd, err := commands.NewSetOrderStatusCommand(s.admin, s.order.ID(), "delivered", 1)
	s.Require().NoError(err)
	got, err := commands.NewSetOrderStatusCommandHandler(s.factory).Handle(s.T().Context(), cmd)

	s.Require().NoError(err)
	s.Equal(order.Delivered, got.Status())
}

func (s *OrderCommandsSuite) TestReportAndResolveIssue() {
	s.repo.On("Update", mock.Anything, s.order).Return(nil)
	s.uow.On("Commit", mock.Anything).Return(nil)
	customer := kernel.MustActor(kernel.RoleCustomer, s.order.CustomerID())

	report, err := commands.NewReportIssueCommand(customer, s.order.ID(), "missing", "one sock missing", 0)
	s.Require().NoError(err)
	got, err := commands.NewReportIssueCommandHandler(s.factory).Handle(s.T().Context(), report)
	s.Require().NoError(err)
	s.True(got.HasIssue())

	resolve, err := commands.NewResolveIssueCommand(s.admin, s.order.ID(), 0)
	s.Require().NoError(err)
	got, err = commands.NewResolveIssueCommandHandler(s.factory).Handle(s.T().Context(), resolve)
	s.Require().NoError(err)
	s.False(got.HasIssue())
	s.Equal(order.Pending, got.Status())
}

func (s *OrderCommandsSuite) TestResolveWithoutIssueWritesNothing() {
	cmd, err := commands.NewResolveIssueCommand(s.admin, s.order.ID(), 0)
	s.Require().NoError(err)

	got, err := commands.NewResolveIssueCommandHandler(s.factory).Handle(s.T().Context(), cmd)

	s.Require().NoError(err)
	s.False(got.HasIssue())
	s.assertNoWrite()
}

func (s *OrderCommandsSuite) TestMarkOrderPaidTwice() {
	s.expectWrite()
	cmd, err := commands.NewMarkOrderPaidCommand(s.admin, s.order.ID(), 0)
	s.Require().NoError(err)
	h := commands.NewMarkOrderPaidCommandHandler(s.factory)

	got, err := h.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)
	s.Equal(order.Paid, got.PaymentStatus())

	_, err = h.Handle(s.T().Context(), cmd)
	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
}

func (s *OrderCommandsSuite) TestOrderNotFound() {
	missing := kernel.NewUUID()
	s.repo.On("GetForUpdate", mock.Anything, missing).Return(nil, errs.NewObjectNotFoundError("order", missing.String()))

	cmd, err := commands.NewAcceptOrderCommand(s.admin, missing, 0)
	s.Require().NoError(err)
	_, err = commands.NewAcceptOrderCommandHandler(s.factory).Handle(s.T().Context(), cmd)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderCommandConstructors(t *testing.T) {
	admin := adminActor()

	t.Run("order id is required", func(t *testing.T) {
		_, err := commands.NewAcceptOrderCommand(admin, kernel.UUID{}, 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := commands.NewUpdateProgressCommand(admin, kernel.NewUUID(), "washing", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative version is rejected", func(t *testing.T) {
		_, err := commands.NewSetOrderStatusCommand(admin, kernel.NewUUID(), "pending", -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("issue needs category and note", func(t *testing.T) {
		_, err := commands.NewReportIssueCommand(admin, kernel.NewUUID(), "damaged", "", 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value commands are not constructed", func(t *testing.T) {
		assert.ErrorIs(t, commands.AssignVendorCommand{}.Validate(), commands.ErrAssignVendorCommandIsNotConstructed)
		assert.ErrorIs(t, commands.AssignRiderCommand{}.Validate(), commands.ErrAssignRiderCommandIsNotConstructed)
		assert.ErrorIs(t, commands.AcceptOrderCommand{}.Validate(), commands.ErrAcceptOrderCommandIsNotConstructed)
		assert.ErrorIs(t, commands.UpdateProgressCommand{}.Validate(), commands.ErrUpdateProgressCommandIsNotConstructed)
		assert.ErrorIs(t, commands.SetOrderStatusCommand{}.Validate(), commands.ErrSetOrderStatusCommandIsNotConstructed)
		assert.ErrorIs(t, commands.ReportIssueCommand{}.Validate(), commands.ErrReportIssueCommandIsNotConstructed)
		assert.ErrorIs(t, commands.ResolveIssueCommand{}.Validate(), commands.ErrResolveIssueCommandIsNotConstructed)
		assert.ErrorIs(t, commands.MarkOrderPaidCommand{}.Validate(), commands.ErrMarkOrderPaidCommandIsNotConstructed)
	})
}
