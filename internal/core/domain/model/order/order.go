package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/ddd"
	"marketplace/internal/pkg/errs"
)

// MaxGSTNumberLength is the length of an Indian GSTIN.
const MaxGSTNumberLength = 15

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the fulfillment lifecycle.
//
// Invariants:
//   - at least one item; items are immutable after creation
//   - deliveryTime = pickupTime + tier offset
//   - totalAmount >= 0
//   - issue category and note exist iff HasIssue()
//   - version only grows; the repository bumps it on every successful update
type Order struct {
	ddd.BaseAggregate

	id            kernel.UUID
	customerID    kernel.UUID
	vendorID      *kernel.UUID
	riderID       *kernel.UUID
	items         []Item
	pickupTime    time.Time
	deliveryTime  time.Time
	tier          ServiceTier
	totalAmount   kernel.Money
	paymentStatus PaymentStatus
	status        Status
	issue         *Issue
	gstNumber     string
	createdAt     time.Time
	updatedAt     time.Time
	version       int64

	isConstructed bool
}

// NewOrder creates a pending, unpaid order. The total comes from the catalog
// collaborator and is taken as submitted; see services.PriceVerifier.
func NewOrder(
	id, customerID kernel.UUID,
	items []Item,
	pickupTime time.Time,
	tier ServiceTier,
	totalAmount kernel.Money,
	gstNumber string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		tier:          tier,
		totalAmount:   totalAmount,
		paymentStatus: Unpaid,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setItems(items),
		o.setTier(tier),
		o.setPickupTime(pickupTime),
		o.setGSTNumber(gstNumber),
	); err != nil {
		return nil, err
	}

	o.deliveryTime = tier.DeliveryTime(pickupTime)
	o.raiseChanged("created", now)
	return o, nil
}

// RestoreParams carries persisted state into RestoreOrder.
type RestoreParams struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	VendorID      *kernel.UUID
	RiderID       *kernel.UUID
	Items         []Item
	PickupTime    time.Time
	DeliveryTime  time.Time
	Tier          ServiceTier
	TotalAmount   kernel.Money
	PaymentStatus PaymentStatus
	Status        Status
	Issue         *Issue
	GSTNumber     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

// RestoreOrder rebuilds an order from storage without raising events.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		vendorID:      p.VendorID,
		riderID:       p.RiderID,
		deliveryTime:  p.DeliveryTime,
		totalAmount:   p.TotalAmount,
		paymentStatus: p.PaymentStatus,
		issue:         p.Issue,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		version:       p.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCustomer(p.CustomerID),
		o.setItems(p.Items),
		o.setTier(p.Tier),
		o.setPickupTime(p.PickupTime),
		o.setGSTNumber(p.GSTNumber),
		o.setStatus(p.Status),
	); err != nil {
		return nil, err
	}
	if _, err := ParsePaymentStatus(string(p.PaymentStatus)); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) CustomerID() kernel.UUID { return o.customerID }
func (o *Order) VendorID() *kernel.UUID { return o.vendorID }
func (o *Order) RiderID() *kernel.UUID { return o.riderID }
func (o *Order) PickupTime() time.Time { return o.pickupTime }
func (o *Order) DeliveryTime() time.Time { return o.deliveryTime }
func (o *Order) Tier() ServiceTier { return o.tier }
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Status() Status { return o.status }
func (o *Order) GSTNumber() string { return o.gstNumber }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) Version() int64 { return o.version }
func (o *Order) HasIssue() bool { return o.issue != nil }
func (o *Order) Issue() *Issue { return o.issue }
func (o *Order) IsEqual(other *Order) bool { return other != nil && o.id.IsEqual(other.id) }

func (o *Order) isAssignedVendor(a kernel.Actor) bool {
	return o.vendorID != nil && a.Is(kernel.RoleVendor, *o.vendorID)
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// ExpectVersion rejects a write based on a stale read. A zero expected version skips the check.
func (o *Order) ExpectVersion(expected int64) error {
	if expected != 0 && expected != o.version {
		return errs.NewVersionConflictError("order", o.id.String(), expected, o.version)
	}
	return nil
}

// MarkPersisted records the version written by the repository.
func (o *Order) MarkPersisted(version int64) {
	o.version = version
}

// AssignVendor is an admin action: pending -> pickup_assigned.
func (o *Order) AssignVendor(actor kernel.Actor, vendorID kernel.UUID, now time.Time) error {
	if !actor.IsAdmin() {
		return actor.Forbid("assign vendor")
	}
	if err := vendorID.Validate(); err != nil {
		return err
	}
	next, err := o.status.AssignVendor()
	if err != nil {
		return err
	}

	o.vendorID = &vendorID
	o.status = next
	o.touch("vendor_assigned", now)
	return nil
}

// AssignRider is an admin action allowed in any non-terminal status. The status is unchanged.
func (o *Order) AssignRider(actor kernel.Actor, riderID kernel.UUID, now time.Time) error {
	if !actor.IsAdmin() {
		return actor.Forbid("assign rider")
	}
	if err := riderID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError("order", o.status.String(), "rider assignment")
	}

	o.riderID = &riderID
	o.touch("rider_assigned", now)
	return nil
}

// Accept is the assigned vendor confirming pickup: pickup_assigned -> picked_up.
func (o *Order) Accept(actor kernel.Actor, now time.Time) error {
	if !actor.IsAdmin() && !o.isAssignedVendor(actor) {
		return actor.Forbid("accept order")
	}
	next, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = next
	o.touch("accepted", now)
	return nil
}

// UpdateProgress is the assigned vendor reporting processing or out_for_delivery.
func (o *Order) UpdateProgress(actor kernel.Actor, next Status, now time.Time) error {
	if !actor.IsAdmin() && !o.isAssignedVendor(actor) {
		return actor.Forbid("update order progress")
	}
	status, err := o.status.Advance(next)
	if err != nil {
		return err
	}

	o.status = status
	o.touch("progress_updated", now)
	return nil
}

// SetStatus is the admin override: any valid status, no transition graph.
func (o *Order) SetStatus(actor kernel.Actor, status Status, now time.Time) error {
	if !actor.IsAdmin() {
		return actor.Forbid("override order status")
	}
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.touch("status_overridden", now)
	return nil
}

// MarkPaid records that payment was received outside the core.
func (o *Order) MarkPaid(actor kernel.Actor, now time.Time) error {
	if !actor.IsAdmin() {
		return actor.Forbid("mark order paid")
	}
	if o.paymentStatus == Paid {
		return errs.NewInvalidTransitionError("order payment", string(Unpaid), string(Paid))
	}

	o.paymentStatus = Paid
	o.touch("payment_received", now)
	return nil
}

// ReportIssue raises the dispute flag in any status. The customer who placed
// the order, its assigned vendor and admins may report.
func (o *Order) ReportIssue(actor kernel.Actor, issue Issue, now time.Time) error {
	if !actor.IsAdmin() && !actor.Is(kernel.RoleCustomer, o.customerID) && !o.isAssignedVendor(actor) {
		return actor.Forbid("report issue")
	}
	if issue.category == "" {
		return errs.NewValueIsRequiredError("issue")
	}

	o.issue = &issue
	o.touch("issue_reported", now)
	return nil
}

// ResolveIssue clears the dispute flag. It reports false and changes nothing
// when no issue is open.
func (o *Order) ResolveIssue(actor kernel.Actor, now time.Time) (bool, error) {
	if !actor.IsAdmin() {
		return false, actor.Forbid("resolve issue")
	}
	if o.issue == nil {
		return false, nil
	}

	o.issue = nil
	o.touch("issue_resolved", now)
	return true, nil
}

func (o *Order) touch(reason string, now time.Time) {
	o.updatedAt = now
	o.raiseChanged(reason, now)
}

func (o *Order) raiseChanged(reason string, now time.Time) {
	o.RaiseDomainEvent(ChangedEvent{
		OrderID:       o.id,
		Reason:        reason,
		Status:        o.status,
		PaymentStatus: o.paymentStatus,
		VendorID:      o.vendorID,
		HasIssue:      o.HasIssue(),
		At:            now,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTier(tier ServiceTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	o.tier = tier
	return nil
}

func (o *Order) setPickupTime(pickup time.Time) error {
	if pickup.IsZero() {
		return errs.NewValueIsRequiredError("pickupTime")
	}
	o.pickupTime = pickup
	return nil
}

func (o *Order) setGSTNumber(gst string) error {
	gst = strings.TrimSpace(gst)
	if len(gst) > MaxGSTNumberLength {
		return errs.NewValueIsInvalidErrorWithCause("gstNumber", fmt.Errorf("%d characters exceed %d", len(gst), MaxGSTNumberLength))
	}
	o.gstNumber = gst
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
