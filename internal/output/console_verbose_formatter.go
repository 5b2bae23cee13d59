package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result
	in := report.Input

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "CAR LEASE VS BUY ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "VERDICT")
	fmt.Fprintln(&buf, "=======")
	fmt.Fprintln(&buf, report.Verdict.Summary)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "  Lease Total:            %s\n", FormatCurrency(r.LeaseTotal))
	fmt.Fprintf(&buf, "  Buy Total (gross):      %s\n", FormatCurrency(r.BuyTotalGross))
	fmt.Fprintf(&buf, "  Resale Value:          -%s\n", FormatCurrency(r.ResaleValue))
	fmt.Fprintf(&buf, "  Buy Total (net):        %s\n", FormatCurrency(r.BuyTotalNet))
	fmt.Fprintf(&buf, "  Break-even:             %s\n", breakEvenText(r.BreakEvenYear))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range report.assumptions() {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TAX COMPUTATION")
	fmt.Fprintln(&buf, "===============")
	fmt.Fprintf(&buf, "%-26s %16s %16s\n", "", "WITHOUT Lease", "WITH Lease")
	for _, row := range BuildTaxComputation(in, r) {
		fmt.Fprintf(&buf, "%-26s %16s %16s\n", row.Label, FormatCurrency(row.Without), FormatCurrency(row.With))
	}
	fmt.Fprintln(&buf)
	writeSlabTable(&buf, report)

	fmt.Fprintln(&buf, "LOAN & OPPORTUNITY COST")
	fmt.Fprintln(&buf, "=======================")
	fmt.Fprintf(&buf, "  Down Payment:           %s (%s)\n", FormatCurrency(r.DownPayment), FormatRate(in.DownPaymentPct))
	fmt.Fprintf(&buf, "  Loan Amount:            %s @ %s for %d months\n", FormatCurrency(r.LoanAmount), FormatRate(in.LoanRate), in.LoanTenureMonths)
	fmt.Fprintf(&buf, "  Monthly EMI:            %s\n", FormatCurrency(r.EMI))
	fmt.Fprintf(&buf, "  Total Interest:         %s\n", FormatCurrency(r.TotalInterest))
	fmt.Fprintf(&buf, "  Opportunity Cost:       %s (down payment at %s for %d yrs)\n", FormatCurrency(r.OpportunityCost), FormatRate(in.InvestReturn), r.MaxYears)
	fmt.Fprintf(&buf, "  Effective Monthly Lease: %s\n", FormatCurrency(r.EffectiveMonthlyLease))
	fmt.Fprintf(&buf, "  Effective Monthly Buy:   %s\n", FormatCurrency(r.EffectiveMonthlyBuy))
	if r.MonthlySaving.IsPositive() {
		fmt.Fprintf(&buf, "  Monthly Saving Invested: %s -> %s after %d yrs\n", FormatCurrency(r.MonthlySaving), FormatCurrency(r.SIPFutureValue), r.MaxYears)
	}
	fmt.Fprintln(&buf)

	writeYearTable(&buf, report)

	fmt.Fprintln(&buf, "COST COMPOSITION")
	fmt.Fprintln(&buf, "================")
	fmt.Fprintln(&buf, "Lease:")
	for _, c := range report.Composition.Lease {
		fmt.Fprintf(&buf, "  %-28s %14s\n", c.Label, FormatCurrency(c.Value))
	}
	fmt.Fprintln(&buf, "Buy:")
	for _, c := range report.Composition.Buy {
		fmt.Fprintf(&buf, "  %-28s %14s\n", c.Label, FormatCurrency(c.Value))
	}
	return buf.Bytes(), nil
}

func writeSlabTable(w io.Writer, report *Report) {
	r := report.Result
	fmt.Fprintln(w, "TAX SLAB BREAKDOWN")
	fmt.Fprintln(w, "------------------")
	for _, row := range BuildSlabRows(report.Slabs, r) {
		fmt.Fprintf(w, "%-26s %16s %16s\n", row.Label, FormatCurrency(row.Without), FormatCurrency(row.With))
	}
	fmt.Fprintf(w, "%-26s %16s %16s\n", "Total Tax (before cess)", FormatCurrency(r.BuyTax.Tax), FormatCurrency(r.LeaseTax.Tax))
	fmt.Fprintf(w, "%-26s %16s %16s\n", "Cess @"+FormatRate(report.Input.CessRate), FormatCurrency(r.BuyTax.Cess), FormatCurrency(r.LeaseTax.Cess))
	fmt.Fprintf(w, "%-26s %16s %16s\n", "TOTAL TAX", FormatCurrency(r.BuyTax.Total), FormatCurrency(r.LeaseTax.Total))
	fmt.Fprintf(w, "%-26s %16s %16s\n", "ANNUAL TAX SAVING", "", FormatCurrency(r.AnnualTaxSaving))
	fmt.Fprintf(w, "%-26s %16s %16s\n", "MONTHLY TAX SAVING", "", FormatCurrency(r.MonthlyTaxSaving))
	fmt.Fprintln(w)
}

func writeYearTable(w io.Writer, report *Report) {
	fmt.Fprintln(w, "YEAR-BY-YEAR CASH FLOW")
	fmt.Fprintln(w, "======================")
	fmt.Fprintf(w, "%-6s %14s %14s %14s %16s %16s\n", "Year", "Lease", "Buy", "Saving", "Lease (cum.)", "Buy (cum.)")
	fmt.Fprintln(w, strings.Repeat("-", 85))
	for _, row := range BuildYearRows(report.Result) {
		fmt.Fprintf(w, "%-6d %14s %14s %14s %16s %16s\n", row.Year,
			FormatCurrency(row.Lease), FormatCurrency(row.Buy), FormatCurrency(row.Saving),
			FormatCurrency(row.LeaseCumulative), FormatCurrency(row.BuyCumulative))
	}
	fmt.Fprintln(w)
}
