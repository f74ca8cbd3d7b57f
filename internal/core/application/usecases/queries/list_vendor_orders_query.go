package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrListVendorOrdersQueryIsNotConstructed = errors.New(
	"ListVendorOrdersQuery must be created via NewListVendorOrdersQuery constructor",
)

// ListVendorOrdersQuery lists the orders assigned to one vendor, newest first.
type ListVendorOrdersQuery struct {
	vendorID kernel.UUID
	status   *order.Status
	day      *time.Time
	page     Page

	guard guard.ConstructorGuard
}

func NewListVendorOrdersQuery(actor kernel.Actor, vendorID kernel.UUID, status *order.Status, day *time.Time, page Page) (ListVendorOrdersQuery, error) {
	if err := requireVendorScope(actor, vendorID, "list vendor orders"); err != nil {
		return ListVendorOrdersQuery{}, err
	}
	var statusErr error
	if status != nil {
		statusErr = status.Validate()
	}
	normalized, pageErr := page.normalize()
	if err := errors.Join(statusErr, pageErr); err != nil {
		return ListVendorOrdersQuery{}, err
	}

	return ListVendorOrdersQuery{
		vendorID: vendorID,
		status:   status,
		day:      day,
		page:     normalized,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListVendorOrdersQueryIsNotConstructed)
}

func (q ListVendorOrdersQuery) VendorID() kernel.UUID { return q.vendorID }
func (q ListVendorOrdersQuery) Status() *order.Status { return q.status }
func (q ListVendorOrdersQuery) Day() *time.Time       { return q.day }
func (q ListVendorOrdersQuery) Page() Page            { return q.page }
