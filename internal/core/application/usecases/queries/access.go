package queries

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

func requireAdmin(actor kernel.Actor, action string) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if !actor.IsAdmin() {
		return actor.Forbid(action)
	}
	return nil
}

// requireVendorScope lets admins read any vendor and vendors read themselves.
func requireVendorScope(actor kernel.Actor, vendorID kernel.UUID, action string) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}
	if actor.IsAdmin() || actor.Is(kernel.RoleVendor, vendorID) {
		return nil
	}
	return actor.Forbid(action)
}

// Page is a limit/offset window. A zero limit means DefaultLimit.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalize() (Page, error) {
	if p.Limit < 0 || p.Limit > MaxLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", p.Limit, 0, MaxLimit)
	}
	if p.Offset < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("offset", p.Offset, 0, "unbounded")
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	return p, nil
}

// dayBounds returns [start of day, start of next day) in UTC.
func dayBounds(day time.Time) (time.Time, time.Time) {
	y, m, d := day.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
