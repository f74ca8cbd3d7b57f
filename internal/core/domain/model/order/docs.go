// Package order implements the Order aggregate and its lifecycle state machine.
//
// Primary status flow:
//
//	pending ──> pickup_assigned ──> picked_up ──> processing ──> out_for_delivery ──> delivered
//
// Who moves an order:
//   - admin assigns the vendor (pending -> pickup_assigned) and riders
//   - the assigned vendor accepts (pickup_assigned -> picked_up) and reports progress
//     (picked_up -> processing -> out_for_delivery)
//   - admin may force any status through SetStatus, bypassing the graph
//
// The issue flag is orthogonal to the status: it can be raised and resolved in any
// status, including delivered, and never changes the primary status.
//
// Orders are never deleted. Every mutation bumps UpdatedAt and raises an
// OrderChanged domain event that the unit of work dispatches after commit.
package order
