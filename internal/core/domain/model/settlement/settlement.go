package settlement

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const MaxNoteLength = 500

var (
	ErrSettlementIsNotConstructed = errors.New("Settlement must be created via NewSettlement or RestoreSettlement")
)

// Settlement is an amount owed to a vendor.
type Settlement struct {
	id        kernel.UUID
	vendorID  kernel.UUID
	amount    kernel.Money
	status    Status
	note      string
	paidAt    *time.Time
	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// NewSettlement creates a pending settlement. Amount must be positive.
func NewSettlement(vendorID kernel.UUID, amount kernel.Money, note string, now time.Time) (*Settlement, error) {
	note = strings.TrimSpace(note)

	var errList []error
	if err := vendorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("vendorId", err))
	}
	if amount.IsZero() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("must be greater than 0")))
	}
	if len(note) > MaxNoteLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("note length", len(note), 0, MaxNoteLength))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Settlement{
		id:            kernel.NewUUID(),
		vendorID:      vendorID,
		amount:        amount,
		status:        Pending,
		note:          note,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreParams carries persisted state into RestoreSettlement.
type RestoreParams struct {
	ID        kernel.UUID
	VendorID  kernel.UUID
	Amount    kernel.Money
	Status    Status
	Note      string
	PaidAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int64
}

func RestoreSettlement(p RestoreParams) (*Settlement, error) {
	_, statusErr := ParseStatus(string(p.Status))
	if err := errors.Join(p.ID.Validate(), p.VendorID.Validate(), statusErr); err != nil {
		return nil, err
	}
	return &Settlement{
		id:            p.ID,
		vendorID:      p.VendorID,
		amount:        p.Amount,
		status:        p.Status,
		note:          p.Note,
		paidAt:        p.PaidAt,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		version:       p.Version,
		isConstructed: true,
	}, nil
}

func (s *Settlement) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettlementIsNotConstructed
	}
	return nil
}

func (s *Settlement) ID() kernel.UUID { return s.id }
func (s *Settlement) VendorID() kernel.UUID { return s.vendorID }
func (s *Settlement) Amount() kernel.Money { return s.amount }
func (s *Settlement) Status() Status { return s.status }
func (s *Settlement) Note() string { return s.note }
func (s *Settlement) PaidAt() *time.Time { return s.paidAt }
func (s *Settlement) CreatedAt() time.Time { return s.createdAt }
func (s *Settlement) UpdatedAt() time.Time { return s.updatedAt }
func (s *Settlement) Version() int64 { return s.version }

func (s *Settlement) ExpectVersion(expected int64) error {
	if expected != 0 && expected != s.version {
		return errs.NewVersionConflictError("settlement", s.id.String(), expected, s.version)
	}
	return nil
}

func (s *Settlement) MarkPersisted(version int64) {
	s.version = version
}

// MarkPaid moves pending -> paid. A second call fails and keeps PaidAt.
func (s *Settlement) MarkPaid(actor kernel.Actor, now time.Time) error {
	if !actor.IsAdmin() {
		return actor.Forbid("mark settlement paid")
	}
	if s.status != Pending {
		return errs.NewInvalidTransitionError("settlement", s.status.String(), Paid.String())
	}

	paidAt := now
	s.status = Paid
	s.paidAt = &paidAt
	s.updatedAt = now
	return nil
}
