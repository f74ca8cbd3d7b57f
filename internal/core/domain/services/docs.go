// Package services provides domain services that coordinate business rules
// which do not belong to a single aggregate.
//
// The package includes:
//   - OrderDispatcher: hands a pending order to an approved vendor
//   - PriceVerifier implementations: the hook that checks a submitted order total
//   - Quote: delivery date and price multiplier for a service tier
//   - CompletionRate: the vendor dashboard percentage
package services
