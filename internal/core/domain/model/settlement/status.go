package settlement

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

type Status string

const (
	Pending Status = "pending"
	Paid    Status = "paid"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case Pending, Paid:
		return st, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a settlement status", s))
	}
}

func (s Status) String() string { return string(s) }
