package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result
	fmt.Fprintln(&buf, "LEASE VS BUY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Lease Total (%d yrs): %s\n", r.MaxYears, FormatCurrency(r.LeaseTotal))
	fmt.Fprintf(&buf, "Buy Total (net):     %s\n", FormatCurrency(r.BuyTotalNet))
	fmt.Fprintf(&buf, "Annual Tax Saving:   %s\n", FormatCurrency(r.AnnualTaxSaving))
	fmt.Fprintf(&buf, "Break-even:          %s\n", breakEvenText(r.BreakEvenYear))
	fmt.Fprintln(&buf)
	if report.Verdict.LeaseWins {
		fmt.Fprintf(&buf, "Recommended: Lease (saves %s)\n", FormatShort(report.Verdict.Saving))
	} else {
		fmt.Fprintf(&buf, "Recommended: Buy (saves %s)\n", FormatShort(report.Verdict.Saving.Abs()))
	}
	return buf.Bytes(), nil
}

func breakEvenText(year *int) string {
	if year == nil {
		return "never"
	}
	return fmt.Sprintf("year %d", *year)
}
