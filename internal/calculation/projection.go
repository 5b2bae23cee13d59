package calculation

import (
	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PROJECTION ASSUMPTIONS:
//
// 1. Tenures are converted to whole years with round(months/12), so a
//    50 month lease is modelled as 4 years and a 90 month loan as 8.
//    Up to six months of cash flow can be dropped or added at the boundary.
//
// 2. Running costs (insurance, maintenance, fuel) inflate independently
//    from year 2 onward at the same inflation rate.
//
// 3. While leased, fuel is paid out of the fuel allowance; only the excess
//    of inflated fuel over the allowance is an extra outlay.
//
// 4. Resale value is a terminal asset recovered once at the end of the horizon.

// yearCosts carries the unrounded running totals through the yearly loop.
type yearCosts struct {
	leaseTotal decimal.Decimal
	buyTotal   decimal.Decimal
}

// Project runs a projection with the statutory perquisite rates and no logging.
func Project(input domain.ProjectionInput, slabs domain.SlabTable) domain.ProjectionResult {
	return NewEngine().Project(input, slabs)
}

// Project computes the full lease vs buy comparison. It never fails: every
// numeric input, including zero and negative values, yields a result.
func (e *Engine) Project(in domain.ProjectionInput, slabs domain.SlabTable) domain.ProjectionResult {
	// 1-2. Annualise perquisite, rental and allowance
	perquisiteMonthly := e.Perquisite.Monthly(in.EngineCategory)
	perquisiteAnnual := perquisiteMonthly.Mul(twelve)
	annualLeaseRental := in.LeaseRental.Mul(twelve)
	annualFuelAllow := in.FuelAllowance.Mul(twelve)

	// 3. Simulation horizon
	leaseYears := tenureYears(in.LeaseTenureMonths)
	loanYears := tenureYears(in.LoanTenureMonths)
	maxYears := leaseYears
	if loanYears > maxYears {
		maxYears = loanYears
	}
	baseAnnualRunning := in.AnnualRunningCost()

	// 4. Taxable income with and without the lease structure
	grossWith := in.CTC.Sub(annualLeaseRental).Sub(annualFuelAllow).Add(perquisiteAnnual)
	netTaxableWithout := decimal.Max(in.CTC.Sub(in.StandardDeduction), decimal.Zero)
	netTaxableWith := decimal.Max(grossWith.Sub(in.StandardDeduction), decimal.Zero)

	// 5. Tax saving (not clamped; adversarial slabs can make it negative)
	taxCalc := NewTaxCalculator(slabs, in.CessRate)
	buyTax := taxCalc.Calculate(netTaxableWithout)
	leaseTax := taxCalc.Calculate(netTaxableWith)
	annualTaxSaving := buyTax.Total.Sub(leaseTax.Total)
	monthlyTaxSaving := annualTaxSaving.Div(twelve)

	// 6. Loan
	downPayment := in.OnRoadPrice.Mul(in.DownPaymentPct)
	loan := SummarizeLoan(in.OnRoadPrice.Sub(downPayment), in.LoanRate, in.LoanTenureMonths)

	// 7. Opportunity cost of the down payment
	dpFutureValue := FutureValue(downPayment, in.InvestReturn, maxYears)
	opportunityCost := dpFutureValue.Sub(downPayment)

	// 8. Monthly saving reinvested as a SIP
	effectiveMonthlyLease := in.LeaseRental.Add(in.FuelAllowance).Sub(monthlyTaxSaving)
	effectiveMonthlyBuy := loan.Installment.Add(baseAnnualRunning.Div(twelve))
	monthlySaving := decimal.Max(effectiveMonthlyBuy.Sub(effectiveMonthlyLease), decimal.Zero)
	sipFutureValue := decimal.Zero
	if monthlySaving.IsPositive() {
		sipFutureValue = AnnuityFutureValue(monthlySaving, in.InvestReturn.Div(twelve), maxYears*12)
	}

	e.log().Debugf("horizon: lease=%dy loan=%dy max=%dy", leaseYears, loanYears, maxYears)
	e.log().Debugf("taxable without=%s with=%s saving=%s", netTaxableWithout.StringFixed(0), netTaxableWith.StringFixed(0), annualTaxSaving.StringFixed(2))

	// 9. Year-by-year cash flow
	horizon := maxYears
	if horizon < 0 {
		horizon = 0
	}
	result := domain.ProjectionResult{
		LeaseYears:      make([]decimal.Decimal, 0, horizon),
		BuyYears:        make([]decimal.Decimal, 0, horizon),
		LeaseCumulative: make([]decimal.Decimal, 0, horizon),
		BuyCumulative:   make([]decimal.Decimal, 0, horizon),
	}
	totals := yearCosts{leaseTotal: decimal.Zero, buyTotal: decimal.Zero}
	breakEven := NewBreakEvenTracker(in.ResaleValue)
	annualEMI := loan.Installment.Mul(twelve)
	inflationStep := one.Add(in.InflationRate)
	inflation := one

	for yr := 1; yr <= maxYears; yr++ {
		if yr > 1 {
			inflation = inflation.Mul(inflationStep)
		}
		yearFuel := in.Fuel.Mul(inflation)
		yearRunning := in.Insurance.Mul(inflation).Add(in.Maintenance.Mul(inflation)).Add(yearFuel)

		var leaseCost decimal.Decimal
		if yr <= leaseYears {
			leaseCost = annualLeaseRental.Add(annualFuelAllow).Sub(annualTaxSaving)
			leaseCost = leaseCost.Add(decimal.Max(yearFuel.Sub(annualFuelAllow), decimal.Zero))
			if yr == leaseYears {
				leaseCost = leaseCost.Add(in.BuybackPrice)
			}
		} else {
			leaseCost = yearRunning
		}

		buyCost := decimal.Zero
		if yr == 1 {
			buyCost = buyCost.Add(downPayment)
		}
		if yr <= loanYears {
			buyCost = buyCost.Add(annualEMI)
		}
		buyCost = buyCost.Add(yearRunning)

		totals.leaseTotal = totals.leaseTotal.Add(leaseCost)
		totals.buyTotal = totals.buyTotal.Add(buyCost)

		result.LeaseYears = append(result.LeaseYears, RoundHalfUp(leaseCost))
		result.LeaseCumulative = append(result.LeaseCumulative, RoundHalfUp(totals.leaseTotal))
		result.BuyYears = append(result.BuyYears, RoundHalfUp(buyCost))
		result.BuyCumulative = append(result.BuyCumulative, RoundHalfUp(totals.buyTotal))

		if breakEven.Observe(yr, totals.leaseTotal, totals.buyTotal) {
			e.log().Debugf("break-even in year %d", yr)
		}
	}

	// 10. Headline totals
	result.PerquisiteMonthly = perquisiteMonthly
	result.PerquisiteAnnual = perquisiteAnnual
	result.AnnualLeaseRental = annualLeaseRental
	result.AnnualFuelAllowance = annualFuelAllow
	result.LeaseTenureYears = leaseYears
	result.LoanTenureYears = loanYears
	result.MaxYears = maxYears
	result.AnnualRunning = baseAnnualRunning
	result.NetTaxableWithout = netTaxableWithout
	result.NetTaxableWith = netTaxableWith
	result.TaxableReduction = netTaxableWithout.Sub(netTaxableWith)
	result.BuyTax = buyTax
	result.LeaseTax = leaseTax
	result.AnnualTaxSaving = annualTaxSaving
	result.MonthlyTaxSaving = monthlyTaxSaving
	result.DownPayment = downPayment
	result.LoanAmount = loan.Principal
	result.EMI = loan.Installment
	result.TotalInterest = loan.TotalInterest
	result.DownPaymentFutureValue = dpFutureValue
	result.OpportunityCost = opportunityCost
	result.EffectiveMonthlyLease = effectiveMonthlyLease
	result.EffectiveMonthlyBuy = effectiveMonthlyBuy
	result.MonthlySaving = monthlySaving
	result.SIPFutureValue = sipFutureValue
	result.ResaleValue = in.ResaleValue
	result.LeaseTotal = RoundHalfUp(totals.leaseTotal)
	result.BuyTotalGross = RoundHalfUp(totals.buyTotal)
	result.BuyTotalNet = RoundHalfUp(totals.buyTotal.Sub(in.ResaleValue))
	result.BreakEvenYear = breakEven.Year()

	return result
}
