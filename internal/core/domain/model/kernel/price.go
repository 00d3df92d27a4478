package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Price is a non-negative decimal amount in UAH. The zero value is a valid zero price.
type Price struct {
	amount decimal.Decimal
}

// ZeroPrice returns a price of 0 UAH.
func ZeroPrice() Price {
	return Price{amount: decimal.Zero}
}

// NewPrice creates a Price from a decimal amount. Negative amounts are rejected.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", amount))
	}
	return Price{amount: amount}, nil
}

// ParsePrice parses a decimal string such as "5123.4567".
func ParsePrice(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// MustPrice is NewPrice for whole amounts known to be valid, e.g. in tests and fixtures.
func MustPrice(amount int64) Price {
	p, err := NewPrice(decimal.NewFromInt(amount))
	if err != nil {
		panic(err)
	}
	return p
}

// Add returns the sum of both prices.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount)}
}

// Decimal returns the underlying amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// IsEqual compares amounts numerically, so 200 equals 200.00.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String renders the amount without trailing zeros, e.g. "1420" or "5123.4567".
func (p Price) String() string {
	return p.amount.String()
}
