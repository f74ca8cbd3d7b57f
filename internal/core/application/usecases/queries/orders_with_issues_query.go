package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrOrdersWithIssuesQueryIsNotConstructed = errors.New(
	"OrdersWithIssuesQuery must be created via NewOrdersWithIssuesQuery constructor",
)

// OrdersWithIssuesQuery is the admin dispute queue, most recently touched first.
type OrdersWithIssuesQuery struct {
	page Page

	guard guard.ConstructorGuard
}

func NewOrdersWithIssuesQuery(actor kernel.Actor, page Page) (OrdersWithIssuesQuery, error) {
	if err := requireAdmin(actor, "list orders with issues"); err != nil {
		return OrdersWithIssuesQuery{}, err
	}
	normalized, err := page.normalize()
	if err != nil {
		return OrdersWithIssuesQuery{}, err
	}
	return OrdersWithIssuesQuery{page: normalized, guard: guard.NewConstructorGuard()}, nil
}

func (q OrdersWithIssuesQuery) Validate() error {
	return q.guard.Validate(ErrOrdersWithIssuesQueryIsNotConstructed)
}

func (q OrdersWithIssuesQuery) Page() Page { return q.page }
