package calculation

import "github.com/shopspring/decimal"

var (
	one    = decimal.NewFromInt(1)
	half   = decimal.NewFromFloat(0.5)
	twelve = decimal.NewFromInt(12)
)

// RoundHalfUp rounds to the nearest whole rupee with halves going toward +Inf,
// so -2.5 becomes -2 and 2.5 becomes 3.
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// powInt raises base to a non-negative integer power by repeated multiplication.
// Negative exponents are treated as zero periods.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := one
	for i := 0; i < exp; i++ {
		result = result.Mul(base)
	}
	return result
}

// GrowthFactor returns (1+rate)^periods.
func GrowthFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	return powInt(one.Add(rate), periods)
}

// FutureValue compounds principal at rate for the given number of periods.
func FutureValue(principal, rate decimal.Decimal, periods int) decimal.Decimal {
	return principal.Mul(GrowthFactor(rate, periods))
}

// AnnuityFutureValue is the future value of an ordinary annuity paying
// payment at the end of each period. A zero rate degenerates to payment*periods.
func AnnuityFutureValue(payment, ratePerPeriod decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	if ratePerPeriod.IsZero() {
		return payment.Mul(decimal.NewFromInt(int64(periods)))
	}
	growth := GrowthFactor(ratePerPeriod, periods).Sub(one)
	return payment.Mul(growth.Div(ratePerPeriod))
}

// tenureYears converts months to whole years rounding half up (42 -> 4, 50 -> 4, 90 -> 8).
func tenureYears(months int) int {
	n := months + 6
	q := n / 12
	if n%12 != 0 && n < 0 {
		q--
	}
	return q
}
