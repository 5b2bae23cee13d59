package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	lakh  = decimal.NewFromInt(100000)
	crore = decimal.NewFromInt(10000000)
	kilo  = decimal.NewFromInt(1000)
)

// Money represents a rupee amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to whole rupees, halves toward +Inf
func (m Money) Round() Money {
	return Money{m.Decimal.Add(decimal.NewFromFloat(0.5)).Floor()}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Abs returns the absolute amount
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// String returns the amount grouped in the Indian system without decimals (12,34,567)
func (m Money) String() string {
	r := m.Round()
	digits := r.Decimal.Abs().StringFixed(0)
	grouped := groupIndian(digits)
	if r.Decimal.IsNegative() {
		return "-" + grouped
	}
	return grouped
}

// Format formats the amount with the rupee sign (₹12,34,567)
func (m Money) Format() string {
	if m.Round().Decimal.IsNegative() {
		return "-₹" + m.Abs().String()
	}
	return "₹" + m.String()
}

// Short abbreviates large amounts as crore (Cr), lakh (L) or thousand (K)
func (m Money) Short() string {
	abs := m.Decimal.Abs()
	switch {
	case abs.GreaterThanOrEqual(crore):
		return m.Decimal.Div(crore).StringFixed(2) + " Cr"
	case abs.GreaterThanOrEqual(lakh):
		return m.Decimal.Div(lakh).StringFixed(2) + "L"
	case abs.GreaterThanOrEqual(kilo):
		return m.Decimal.Div(kilo).StringFixed(1) + "K"
	default:
		return m.String()
	}
}

// groupIndian inserts separators after the last three digits and then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}

// Min returns the minimum of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b.Decimal) {
		return a
	}
	return b
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b.Decimal) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}
