// Package kernel provides the value objects shared by the order, wallet and
// settlement aggregates: UUID identifiers, Money amounts and the Actor that
// performs an operation.
package kernel
