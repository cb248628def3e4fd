package kernel

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, MoneyFromString or MoneyFromFloat")

// Money is a non-negative monetary amount with two decimal places.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps a decimal amount. Negative amounts and amounts finer than
// a cent are rejected; the amount is never rounded.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	if !amount.Equal(amount.Round(2)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s has more than two decimal places", amount.String()),
		)
	}
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses amounts such as "75.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// MoneyFromFloat converts a float amount using its shortest decimal form,
// so 2.25 is accepted and 2.255 is not.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float for presentation layers.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// Times multiplies the amount by a non-negative count.
func (m Money) Times(n int) Money {
	if n < 0 {
		n = 0
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))), guard: guard.NewConstructorGuard()}
}

// IsEqual compares amounts numerically, so 15 equals 15.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
