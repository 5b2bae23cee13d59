package calculation

import (
	"fmt"

	"github.com/rpgo/carlease-calculator/internal/domain"
	money "github.com/rpgo/carlease-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Verdict is the headline recommendation derived from a projection.
type Verdict struct {
	LeaseWins                 bool            `json:"lease_wins"`
	Saving                    decimal.Decimal `json:"saving"`
	Years                     int             `json:"years"`
	AnnualTaxSaving           decimal.Decimal `json:"annual_tax_saving"`
	MonthlyTaxSaving          decimal.Decimal `json:"monthly_tax_saving"`
	TotalTaxSavingLeasePeriod decimal.Decimal `json:"total_tax_saving_lease_period"`
	Summary                   string          `json:"summary"`
}

// AnalyzeResult builds the verdict shown at the top of every report.
func AnalyzeResult(r domain.ProjectionResult) Verdict {
	saving := r.Saving()
	v := Verdict{
		LeaseWins:                 r.LeaseWins(),
		Saving:                    saving,
		Years:                     r.MaxYears,
		AnnualTaxSaving:           r.AnnualTaxSaving,
		MonthlyTaxSaving:          r.MonthlyTaxSaving,
		TotalTaxSavingLeasePeriod: r.TotalTaxSavingOverLease(),
	}
	if v.LeaseWins {
		v.Summary = fmt.Sprintf("Lease is the better option. You save ₹%s over %d years. Tax saving of ₹%s/year. Resale value of ₹%s already deducted from buy cost.",
			money.NewMoneyFromDecimal(saving).Short(), r.MaxYears,
			money.NewMoneyFromDecimal(r.AnnualTaxSaving).Short(),
			money.NewMoneyFromDecimal(r.ResaleValue).Short())
	} else {
		v.Summary = fmt.Sprintf("Buying is the better option. Buying saves you ₹%s over %d years after accounting for ₹%s resale value.",
			money.NewMoneyFromDecimal(saving.Abs()).Short(), r.MaxYears,
			money.NewMoneyFromDecimal(r.ResaleValue).Short())
	}
	return v
}

// CostComponent is one labelled bar in a cost composition chart.
type CostComponent struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// CostComposition splits each side's total into its main drivers.
type CostComposition struct {
	Lease []CostComponent `json:"lease"`
	Buy   []CostComponent `json:"buy"`
}

// ComposeCosts breaks the lease and buy totals into their components
// using un-inflated annual figures.
func ComposeCosts(in domain.ProjectionInput, r domain.ProjectionResult) CostComposition {
	leaseYears := decimal.NewFromInt(int64(r.LeaseTenureYears))
	postLeaseYears := decimal.NewFromInt(int64(r.MaxYears - r.LeaseTenureYears))
	loanYears := decimal.NewFromInt(int64(r.LoanTenureYears))
	months := decimal.NewFromInt(int64(in.LoanTenureMonths))

	lease := []CostComponent{
		{Label: "Lease Rental (total)", Value: r.AnnualLeaseRental.Mul(leaseYears)},
		{Label: "Fuel Allowance (CTC)", Value: r.AnnualFuelAllowance.Mul(leaseYears)},
		{Label: "Tax Saving (back to you)", Value: r.AnnualTaxSaving.Mul(leaseYears)},
		{Label: "Buyback", Value: in.BuybackPrice},
	}
	if r.MaxYears > r.LeaseTenureYears {
		lease = append(lease, CostComponent{
			Label: fmt.Sprintf("Running Costs (Yr %d-%d)", r.LeaseTenureYears+1, r.MaxYears),
			Value: r.AnnualRunning.Mul(postLeaseYears),
		})
	}

	buy := []CostComponent{
		{Label: "Down Payment", Value: r.DownPayment},
		{Label: "Total EMI", Value: r.EMI.Mul(months)},
		{Label: "Interest to Bank", Value: r.TotalInterest},
		{Label: fmt.Sprintf("Running Costs (%d yrs)", r.LoanTenureYears), Value: r.AnnualRunning.Mul(loanYears)},
		{Label: "(-) Resale Value", Value: r.ResaleValue},
	}
	return CostComposition{Lease: lease, Buy: buy}
}
