package calculation

import (
	"github.com/shopspring/decimal"
)

// LoanTerms summarises a fixed-rate amortizing loan.
type LoanTerms struct {
	Principal     decimal.Decimal `json:"principal"`
	AnnualRate    decimal.Decimal `json:"annual_rate"`
	TermMonths    int             `json:"term_months"`
	Installment   decimal.Decimal `json:"installment"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

// ComputeInstallment returns the level monthly payment (EMI) for a loan.
// It returns zero for a non-positive principal or term and falls back to
// straight-line repayment when the monthly rate is zero.
func ComputeInstallment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || termMonths <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	r := annualRate.Div(twelve)
	if r.IsZero() {
		return principal.Div(n)
	}
	growth := GrowthFactor(r, termMonths)
	denominator := growth.Sub(one)
	if denominator.IsZero() {
		// only reachable with a monthly rate of -2 and an even term
		return principal.Div(n)
	}
	return principal.Mul(r).Mul(growth).Div(denominator)
}

// SummarizeLoan computes the installment and lifetime cost of a loan.
func SummarizeLoan(principal, annualRate decimal.Decimal, termMonths int) LoanTerms {
	emi := ComputeInstallment(principal, annualRate, termMonths)
	totalPaid := emi.Mul(decimal.NewFromInt(int64(termMonths)))
	return LoanTerms{
		Principal:     principal,
		AnnualRate:    annualRate,
		TermMonths:    termMonths,
		Installment:   emi,
		TotalPaid:     totalPaid,
		TotalInterest: totalPaid.Sub(principal),
	}
}
