package wallet

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Direction tells whether a transaction adds to or takes from the balance.
type Direction string

const (
	Credit Direction = "credit"
	Debit  Direction = "debit"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case Credit, Debit:
		return d, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is neither credit nor debit", s))
	}
}

func (d Direction) String() string { return string(d) }
