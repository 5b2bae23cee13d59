package output

import (
	"fmt"

	"github.com/rpgo/carlease-calculator/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered when a report carries none.
var DefaultAssumptions = []string{
	"Tax slabs: New Regime FY 2025-26, held constant over the horizon",
	"Tenures are rounded to whole years (round(months / 12))",
	"Running costs (insurance, maintenance, fuel) inflate annually from year 2",
	"While leased, fuel is covered by the allowance; only the excess is paid out of pocket",
	"Down payment opportunity cost compounds annually over the full horizon",
	"Resale value is recovered once at the end of the horizon",
}

// GenerateAssumptions creates the assumptions list from actual input values.
func GenerateAssumptions(in domain.ProjectionInput, r domain.ProjectionResult) []string {
	return []string{
		fmt.Sprintf("Tax: slab-wise on net taxable income plus %s cess; standard deduction %s",
			FormatRate(in.CessRate), FormatCurrency(in.StandardDeduction)),
		fmt.Sprintf("Perquisite: %s/month added back to taxable income (%s)",
			FormatCurrency(r.PerquisiteMonthly), in.EngineCategory.Label()),
		fmt.Sprintf("Lease tenure %d months modelled as %d years; loan tenure %d months as %d years",
			in.LeaseTenureMonths, r.LeaseTenureYears, in.LoanTenureMonths, r.LoanTenureYears),
		fmt.Sprintf("Running costs inflate at %s a year from year 2", FormatRate(in.InflationRate)),
		fmt.Sprintf("Down payment opportunity cost compounds at %s a year over %d years",
			FormatRate(in.InvestReturn), r.MaxYears),
		fmt.Sprintf("Buyback of %s paid in the final lease year; resale value of %s recovered at the end of year %d",
			FormatCurrency(in.BuybackPrice), FormatCurrency(in.ResaleValue), r.MaxYears),
	}
}
