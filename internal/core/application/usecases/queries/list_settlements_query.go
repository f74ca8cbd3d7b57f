package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settlement"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListSettlementsQueryIsNotConstructed = errors.New(
	"ListSettlementsQuery must be created via NewListSettlementsQuery constructor",
)

// ListSettlementsQuery is the admin payout list, newest first.
type ListSettlementsQuery struct {
	status   *settlement.Status
	vendorID *kernel.UUID
	page     Page

	guard guard.ConstructorGuard
}

func NewListSettlementsQuery(actor kernel.Actor, status *settlement.Status, vendorID *kernel.UUID, page Page) (ListSettlementsQuery, error) {
	if err := requireAdmin(actor, "list settlements"); err != nil {
		return ListSettlementsQuery{}, err
	}
	var statusErr, vendorErr error
	if status != nil {
		_, statusErr = settlement.ParseStatus(status.String())
	}
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			vendorErr = errs.NewValueIsInvalidErrorWithCause("vendorId", err)
		}
	}
	normalized, pageErr := page.normalize()
	if err := errors.Join(statusErr, vendorErr, pageErr); err != nil {
		return ListSettlementsQuery{}, err
	}

	return ListSettlementsQuery{
		status:   status,
		vendorID: vendorID,
		page:     normalized,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListSettlementsQuery) Validate() error {
	return q.guard.Validate(ErrListSettlementsQueryIsNotConstructed)
}
