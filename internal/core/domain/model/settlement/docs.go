// Package settlement implements vendor payout records.
//
// A settlement is created pending by an admin and moves once to paid. The
// paid transition stamps PaidAt and cannot be repeated or undone.
package settlement
