// Package wallet implements the customer Wallet aggregate and its append-only
// transaction log.
//
// A wallet belongs to exactly one customer and is created lazily with a zero
// balance. Its balance never goes below zero: a debit larger than the balance
// fails with an insufficient balance error and leaves both the balance and the
// log untouched. Every successful Adjust yields one Transaction that the
// repository inserts in the same database transaction as the balance update.
package wallet
