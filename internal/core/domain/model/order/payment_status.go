package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

type PaymentStatus string

const (
	Unpaid PaymentStatus = "unpaid"
	Paid   PaymentStatus = "paid"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch p := PaymentStatus(s); p {
	case Unpaid, Paid:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a valid payment status", s))
	}
}

func (p PaymentStatus) String() string { return string(p) }
