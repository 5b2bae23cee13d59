package output

import (
	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// YearRow is one year of the lease vs buy cash flow.
type YearRow struct {
	Year            int
	Lease           decimal.Decimal
	Buy             decimal.Decimal
	Saving          decimal.Decimal
	LeaseCumulative decimal.Decimal
	BuyCumulative   decimal.Decimal
}

// BuildYearRows zips the yearly sequences of a projection.
func BuildYearRows(r domain.ProjectionResult) []YearRow {
	savings := r.YearlySavings()
	rows := make([]YearRow, len(r.LeaseYears))
	for i := range r.LeaseYears {
		rows[i] = YearRow{
			Year:            i + 1,
			Lease:           r.LeaseYears[i],
			Buy:             at(r.BuyYears, i),
			Saving:          savings[i],
			LeaseCumulative: at(r.LeaseCumulative, i),
			BuyCumulative:   at(r.BuyCumulative, i),
		}
	}
	return rows
}

// TaxRow compares one line of the tax computation without and with the lease.
type TaxRow struct {
	Label   string
	Without decimal.Decimal
	With    decimal.Decimal
	Note    string
}

// BuildTaxComputation walks from CTC to net taxable income for both structures.
func BuildTaxComputation(in domain.ProjectionInput, r domain.ProjectionResult) []TaxRow {
	grossWith := in.CTC.Sub(r.AnnualLeaseRental).Sub(r.AnnualFuelAllowance).Add(r.PerquisiteAnnual)
	return []TaxRow{
		{Label: "Gross Salary (CTC)", Without: in.CTC, With: in.CTC, Note: "Same CTC"},
		{Label: "(-) Lease Rental", Without: decimal.Zero, With: r.AnnualLeaseRental, Note: "Deducted pre-tax"},
		{Label: "(-) Fuel Allowance", Without: decimal.Zero, With: r.AnnualFuelAllowance, Note: "Deducted pre-tax"},
		{Label: "(+) Perquisite", Without: decimal.Zero, With: r.PerquisiteAnnual, Note: "Added back as a taxable benefit"},
		{Label: "Gross Taxable", Without: in.CTC, With: grossWith},
		{Label: "(-) Standard Deduction", Without: in.StandardDeduction, With: in.StandardDeduction},
		{Label: "Net Taxable Income", Without: r.NetTaxableWithout, With: r.NetTaxableWith},
	}
}

// BuildSlabRows lists the tax paid in each slab without and with the lease.
// Slabs past the point where both computations stopped are omitted.
func BuildSlabRows(slabs domain.SlabTable, r domain.ProjectionResult) []TaxRow {
	n := len(r.BuyTax.Breakdown)
	if len(r.LeaseTax.Breakdown) > n {
		n = len(r.LeaseTax.Breakdown)
	}
	edges := slabs.LowerEdges()
	rows := make([]TaxRow, 0, n)
	for i := 0; i < n; i++ {
		label := ""
		if i < len(slabs) {
			label = SlabLabel(edges[i], slabs[i].Limit, slabs[i].Rate)
		}
		rows = append(rows, TaxRow{
			Label:   label,
			Without: breakdownTax(r.BuyTax.Breakdown, i),
			With:    breakdownTax(r.LeaseTax.Breakdown, i),
		})
	}
	return rows
}

func breakdownTax(b []domain.SlabBreakdown, i int) decimal.Decimal {
	if i < len(b) {
		return b[i].Tax
	}
	return decimal.Zero
}

func at(values []decimal.Decimal, i int) decimal.Decimal {
	if i < len(values) {
		return values[i]
	}
	return decimal.Zero
}
