package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MaxReportDays bounds the orders-by-day window.
const MaxReportDays = 366

var ErrOrdersByDayQueryIsNotConstructed = errors.New(
	"OrdersByDayQuery must be created via NewOrdersByDayQuery constructor",
)

// OrdersByDayQuery buckets orders by UTC creation day over [from, to], both
// days inclusive. With a vendor it covers only that vendor's orders.
type OrdersByDayQuery struct {
	vendorID *kernel.UUID
	from     time.Time
	to       time.Time

	guard guard.ConstructorGuard
}

func NewOrdersByDayQuery(actor kernel.Actor, vendorID *kernel.UUID, from, to time.Time) (OrdersByDayQuery, error) {
	var accessErr error
	if vendorID == nil {
		accessErr = requireAdmin(actor, "read orders by day")
	} else {
		accessErr = requireVendorScope(actor, *vendorID, "read orders by day")
	}
	if accessErr != nil {
		return OrdersByDayQuery{}, accessErr
	}

	fromDay, _ := dayBounds(from)
	toDay, _ := dayBounds(to)
	var fromErr, toErr error
	if from.IsZero() {
		fromErr = errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		toErr = errs.NewValueIsRequiredError("to")
	}
	if err := errors.Join(fromErr, toErr); err != nil {
		return OrdersByDayQuery{}, err
	}
	days := int(toDay.Sub(fromDay).Hours()/24) + 1
	if days < 1 || days > MaxReportDays {
		return OrdersByDayQuery{}, errs.NewValueIsOutOfRangeError("days", days, 1, MaxReportDays)
	}

	return OrdersByDayQuery{
		vendorID: vendorID,
		from:     fromDay,
		to:       toDay,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q OrdersByDayQuery) Validate() error {
	return q.guard.Validate(ErrOrdersByDayQueryIsNotConstructed)
}

// DayTotal is one bucket. Days without orders are omitted.
type DayTotal struct {
	Day    time.Time
	Count  int64
	Amount kernel.Money
}
