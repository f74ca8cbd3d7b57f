// Package ddd holds the small building blocks shared by aggregates: domain
// events and the base that records them until the unit of work commits.
package ddd

import "time"

// DomainEvent is a fact produced by an aggregate mutation.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// AggregateRoot is implemented by every aggregate tracked by the unit of work.
type AggregateRoot interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregate collects events raised during one business operation.
type BaseAggregate struct {
	events []DomainEvent
}

// RaiseDomainEvent appends an event to the pending list.
func (a *BaseAggregate) RaiseDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// DomainEvents returns a copy of the pending events.
func (a *BaseAggregate) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(a.events))
	copy(out, a.events)
	return out
}

// ClearDomainEvents drops pending events once they were dispatched.
func (a *BaseAggregate) ClearDomainEvents() {
	a.events = nil
}
