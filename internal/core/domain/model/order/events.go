package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// OrderChangedEventName is the name published on the order-changed topic.
const OrderChangedEventName = "order.changed"

// ChangedEvent is raised by every committed order mutation.
type ChangedEvent struct {
	OrderID       kernel.UUID
	Reason        string
	Status        Status
	PaymentStatus PaymentStatus
	VendorID      *kernel.UUID
	HasIssue      bool
	At            time.Time
}

func (e ChangedEvent) EventName() string { return OrderChangedEventName }
func (e ChangedEvent) AggregateID() string { return e.OrderID.String() }
func (e ChangedEvent) OccurredAt() time.Time { return e.At }
