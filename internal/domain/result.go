package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionResult is the immutable output of one lease vs buy projection.
// Yearly sequences all have MaxYears entries; year N is at index N-1.
type ProjectionResult struct {
	PerquisiteMonthly   decimal.Decimal `json:"perquisite_monthly"`
	PerquisiteAnnual    decimal.Decimal `json:"perquisite_annual"`
	AnnualLeaseRental   decimal.Decimal `json:"annual_lease_rental"`
	AnnualFuelAllowance decimal.Decimal `json:"annual_fuel_allowance"`
	LeaseTenureYears    int             `json:"lease_tenure_years"`
	LoanTenureYears     int             `json:"loan_tenure_years"`
	MaxYears            int             `json:"max_years"`
	AnnualRunning       decimal.Decimal `json:"annual_running"`

	// Tax comparison
	NetTaxableWithout decimal.Decimal `json:"net_taxable_without"`
	NetTaxableWith    decimal.Decimal `json:"net_taxable_with"`
	TaxableReduction  decimal.Decimal `json:"taxable_reduction"`
	BuyTax            TaxResult       `json:"buy_tax"`
	LeaseTax          TaxResult       `json:"lease_tax"`
	AnnualTaxSaving   decimal.Decimal `json:"annual_tax_saving"`
	MonthlyTaxSaving  decimal.Decimal `json:"monthly_tax_saving"`

	// Loan
	DownPayment   decimal.Decimal `json:"down_payment"`
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	EMI           decimal.Decimal `json:"emi"`
	TotalInterest decimal.Decimal `json:"total_interest"`

	// Opportunity cost and reinvested savings
	DownPaymentFutureValue decimal.Decimal `json:"down_payment_future_value"`
	OpportunityCost        decimal.Decimal `json:"opportunity_cost"`
	EffectiveMonthlyLease  decimal.Decimal `json:"effective_monthly_lease"`
	EffectiveMonthlyBuy    decimal.Decimal `json:"effective_monthly_buy"`
	MonthlySaving          decimal.Decimal `json:"monthly_saving"`
	SIPFutureValue         decimal.Decimal `json:"sip_future_value"`

	// Year-by-year (rounded to whole rupees)
	LeaseYears      []decimal.Decimal `json:"lease_years"`
	BuyYears        []decimal.Decimal `json:"buy_years"`
	LeaseCumulative []decimal.Decimal `json:"lease_cumulative"`
	BuyCumulative   []decimal.Decimal `json:"buy_cumulative"`

	// Headline totals
	ResaleValue   decimal.Decimal `json:"resale_value"`
	LeaseTotal    decimal.Decimal `json:"lease_total"`
	BuyTotalGross decimal.Decimal `json:"buy_total_gross"`
	BuyTotalNet   decimal.Decimal `json:"buy_total_net"`
	BreakEvenYear *int            `json:"break_even_year"`
}

// Saving is how much cheaper leasing is than buying net of resale (negative when buying wins).
func (r ProjectionResult) Saving() decimal.Decimal {
	return r.BuyTotalNet.Sub(r.LeaseTotal)
}

// LeaseWins reports whether the lease total is strictly below the net buy total.
func (r ProjectionResult) LeaseWins() bool {
	return r.BuyTotalNet.GreaterThan(r.LeaseTotal)
}

// YearlySavings returns buy minus lease cost for each projected year.
func (r ProjectionResult) YearlySavings() []decimal.Decimal {
	out := make([]decimal.Decimal, len(r.LeaseYears))
	for i, l := range r.LeaseYears {
		b := decimal.Zero
		if i < len(r.BuyYears) {
			b = r.BuyYears[i]
		}
		out[i] = b.Sub(l)
	}
	return out
}

// TotalTaxSavingOverLease is the annual tax saving accumulated over the lease tenure.
func (r ProjectionResult) TotalTaxSavingOverLease() decimal.Decimal {
	return r.AnnualTaxSaving.Mul(decimal.NewFromInt(int64(r.LeaseTenureYears)))
}

// HasBreakEven reports whether the cumulative lease cost overtook the net buy cost.
func (r ProjectionResult) HasBreakEven() bool { return r.BreakEvenYear != nil }
