package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrVendorDashboardQueryIsNotConstructed = errors.New(
	"VendorDashboardQuery must be created via NewVendorDashboardQuery constructor",
)

type VendorDashboardQuery struct {
	vendorID kernel.UUID
	asOf     time.Time

	guard guard.ConstructorGuard
}

func NewVendorDashboardQuery(actor kernel.Actor, vendorID kernel.UUID, asOf time.Time) (VendorDashboardQuery, error) {
	if err := requireVendorScope(actor, vendorID, "read vendor dashboard"); err != nil {
		return VendorDashboardQuery{}, err
	}
	return VendorDashboardQuery{vendorID: vendorID, asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

func (q VendorDashboardQuery) Validate() error {
	return q.guard.Validate(ErrVendorDashboardQueryIsNotConstructed)
}

func (q VendorDashboardQuery) VendorID() kernel.UUID { return q.vendorID }
func (q VendorDashboardQuery) AsOf() time.Time       { return q.asOf }

type VendorDashboardQueryResponse struct {
	TotalOrders      int64
	TodayOrders      int64
	PendingOrders    int64
	ProcessingOrders int64
	CompletedOrders  int64
	// CompletionRate is a whole percentage of delivered orders.
	CompletionRate     int64
	Earnings           kernel.Money
	PendingSettlements kernel.Money
	PaidSettlements    kernel.Money
}
