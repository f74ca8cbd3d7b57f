package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the primary fulfillment state of an order.
type Status int

const (
	Unknown Status = iota
	Pending
	PickupAssigned
	PickedUp
	Processing
	OutForDelivery
	Delivered
)

var statusNames = map[Status]string{
	Pending:        "pending",
	PickupAssigned: "pickup_assigned",
	PickedUp:       "picked_up",
	Processing:     "processing",
	OutForDelivery: "out_for_delivery",
	Delivered:      "delivered",
}

// progressSteps are the only moves a vendor may report through UpdateProgress.
var progressSteps = map[Status]Status{
	PickedUp:   Processing,
	Processing: OutForDelivery,
}

// AllStatuses lists valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, PickupAssigned, PickedUp, Processing, OutForDelivery, Delivered}
}

// ParseStatus maps the wire name ("pickup_assigned") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further primary transitions exist.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// AssignVendor moves pending -> pickup_assigned.
func (s Status) AssignVendor() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), PickupAssigned.String())
	}
	return PickupAssigned, nil
}

// Accept moves pickup_assigned -> picked_up.
func (s Status) Accept() (Status, error) {
	if s != PickupAssigned {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), PickedUp.String())
	}
	return PickedUp, nil
}

// Advance allows picked_up -> processing and processing -> out_for_delivery only.
func (s Status) Advance(next Status) (Status, error) {
	if allowed, ok := progressSteps[s]; !ok || allowed != next {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}
