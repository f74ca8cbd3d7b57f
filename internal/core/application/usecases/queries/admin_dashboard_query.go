package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAdminDashboardQueryIsNotConstructed = errors.New(
	"AdminDashboardQuery must be created via NewAdminDashboardQuery constructor",
)

// AdminDashboardQuery counts orders platform-wide. asOf picks the "today" bucket.
type AdminDashboardQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewAdminDashboardQuery(actor kernel.Actor, asOf time.Time) (AdminDashboardQuery, error) {
	if err := requireAdmin(actor, "read admin dashboard"); err != nil {
		return AdminDashboardQuery{}, err
	}
	return AdminDashboardQuery{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

func (q AdminDashboardQuery) Validate() error {
	return q.guard.Validate(ErrAdminDashboardQueryIsNotConstructed)
}

func (q AdminDashboardQuery) AsOf() time.Time { return q.asOf }

type AdminDashboardQueryResponse struct {
	TotalOrders      int64
	TodayOrders      int64
	PendingOrders    int64
	ProcessingOrders int64
	DeliveredOrders  int64
	IssueOrders      int64
	// Revenue sums the totals of paid orders.
	Revenue kernel.Money
}
