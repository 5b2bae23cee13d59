package calculation

import (
	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Slabs: New Tax Regime FY 2025-26 by default, editable by the caller
//    - Each slab's limit is its width; the final slab is open-ended
//    - Slab tables are not validated here (see domain.ParseSlabTable)
//
// 2. Health & Education Cess: flat rate on the computed tax (4% default)
//
// 3. No surcharge, rebate under section 87A, or marginal relief is modelled.

// TaxCalculator computes progressive income tax against a fixed slab table.
type TaxCalculator struct {
	Slabs    domain.SlabTable
	CessRate decimal.Decimal
}

// NewTaxCalculator creates a calculator for the given slabs and cess rate.
func NewTaxCalculator(slabs domain.SlabTable, cessRate decimal.Decimal) *TaxCalculator {
	return &TaxCalculator{Slabs: slabs, CessRate: cessRate}
}

// Calculate returns the tax breakdown for a taxable income.
func (tc *TaxCalculator) Calculate(taxableIncome decimal.Decimal) domain.TaxResult {
	return ComputeTax(taxableIncome, tc.CessRate, tc.Slabs)
}

// ComputeTax walks the slab table consuming income until it runs out.
// Negative income is taxed as zero. The breakdown stops at the slab where
// income is exhausted, so its length depends on income rather than on the table.
func ComputeTax(taxableIncome, cessRate decimal.Decimal, slabs domain.SlabTable) domain.TaxResult {
	remaining := decimal.Max(taxableIncome, decimal.Zero)
	tax := decimal.Zero
	breakdown := make([]domain.SlabBreakdown, 0, len(slabs))

	for _, slab := range slabs {
		width, bounded := slab.Limit.Limit()
		if !bounded {
			width = remaining
		}
		chunk := decimal.Min(remaining, width)
		slabTax := chunk.Mul(slab.Rate)
		breakdown = append(breakdown, domain.SlabBreakdown{
			Width: slab.Limit,
			Rate:  slab.Rate,
			Chunk: chunk,
			Tax:   slabTax,
		})
		tax = tax.Add(slabTax)
		remaining = remaining.Sub(chunk)
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
	}

	cess := tax.Mul(cessRate)
	return domain.TaxResult{
		Tax:       tax,
		Cess:      cess,
		Total:     tax.Add(cess),
		Breakdown: breakdown,
	}
}
