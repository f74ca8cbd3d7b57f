package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/settlement"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorEarningsQueryIsNotConstructed = errors.New(
	"GetVendorEarningsQuery must be created via NewGetVendorEarningsQuery constructor",
)

// DateRange is a creation-time window inclusive of both bounds. Either bound
// may be nil.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r DateRange) validate() error {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return errs.NewValueIsOutOfRangeError("to", r.To.Format(time.RFC3339), r.From.Format(time.RFC3339), "unbounded")
	}
	return nil
}

// GetVendorEarningsQuery returns a vendor's settlements and per-status totals.
type GetVendorEarningsQuery struct {
	vendorID kernel.UUID
	period   DateRange
	status   *settlement.Status

	guard guard.ConstructorGuard
}

func NewGetVendorEarningsQuery(actor kernel.Actor, vendorID kernel.UUID, period DateRange, status *settlement.Status) (GetVendorEarningsQuery, error) {
	if err := requireVendorScope(actor, vendorID, "read vendor earnings"); err != nil {
		return GetVendorEarningsQuery{}, err
	}
	var statusErr error
	if status != nil {
		_, statusErr = settlement.ParseStatus(status.String())
	}
	if err := errors.Join(period.validate(), statusErr); err != nil {
		return GetVendorEarningsQuery{}, err
	}

	return GetVendorEarningsQuery{
		vendorID: vendorID,
		period:   period,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetVendorEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorEarningsQueryIsNotConstructed)
}

func (q GetVendorEarningsQuery) VendorID() kernel.UUID      { return q.vendorID }
func (q GetVendorEarningsQuery) Period() DateRange          { return q.period }
func (q GetVendorEarningsQuery) Status() *settlement.Status { return q.status }

type GetVendorEarningsQueryResponse struct {
	Settlements []SettlementView
	Summary     []StatusTotal
}
