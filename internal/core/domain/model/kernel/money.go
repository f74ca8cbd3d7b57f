package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for every amount.
const MoneyScale = 2

// MaxMoney is the largest amount a single stored value can hold.
var MaxMoney = decimal.RequireFromString("999999999999.99")

// Money is a non-negative amount with at most MoneyScale fractional digits.
// The zero value is 0.00.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney accepts zero and positive amounts. Sub-cent digits are rejected,
// never rounded away.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	if !amount.Round(MoneyScale).Equal(amount) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than %d fractional digits", amount, MoneyScale))
	}
	return Money{amount: amount.Round(MoneyScale)}, nil
}

// NewPositiveMoney accepts amounts strictly greater than zero.
func NewPositiveMoney(amount decimal.Decimal) (Money, error) {
	m, err := NewMoney(amount)
	if err != nil {
		return Money{}, err
	}
	if m.IsZero() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	return m, nil
}

// MoneyFromString parses an incoming amount such as "149.90". Inputs above
// MaxMoney are out of range.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	m, err := NewMoney(d)
	if err != nil {
		return Money{}, err
	}
	if m.ExceedsMax() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", m.String(), "0.00", MaxMoney.StringFixed(MoneyScale))
	}
	return m, nil
}

// MustMoney is meant for tests and constants.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub fails when other exceeds m; callers translate that into their own error kind.
func (m Money) Sub(other Money) (Money, error) {
	if m.LessThan(other) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", other.String(), "0.00", m.String())
	}
	return Money{amount: m.amount.Sub(other.amount)}, nil
}

func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor).Round(MoneyScale)}
}

// ExceedsMax reports whether m no longer fits a stored amount. Aggregated sums
// may legitimately exceed it.
func (m Money) ExceedsMax() bool {
	return m.amount.GreaterThan(MaxMoney)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
