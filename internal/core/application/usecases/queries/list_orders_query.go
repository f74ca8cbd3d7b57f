package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter narrows an order listing. Nil fields are not applied. Day
// matches orders created on that UTC calendar day.
type OrderFilter struct {
	Status     *order.Status
	VendorID   *kernel.UUID
	CustomerID *kernel.UUID
	Day        *time.Time
	HasIssue   *bool
}

func (f OrderFilter) validate() error {
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	if f.VendorID != nil {
		if err := f.VendorID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("vendorId", err)
		}
	}
	if f.CustomerID != nil {
		if err := f.CustomerID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
	}
	return nil
}

// ListOrdersQuery is the admin listing, newest first.
type ListOrdersQuery struct {
	actor  kernel.Actor
	filter OrderFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor kernel.Actor, filter OrderFilter, page Page) (ListOrdersQuery, error) {
	if err := requireAdmin(actor, "list orders"); err != nil {
		return ListOrdersQuery{}, err
	}
	normalized, pageErr := page.normalize()
	if err := errors.Join(filter.validate(), pageErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor:  actor,
		filter: filter,
		page:   normalized,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() OrderFilter { return q.filter }
func (q ListOrdersQuery) Page() Page          { return q.page }
