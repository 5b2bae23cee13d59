package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVSummarizer implements "The Big Picture" grid: one column per year plus a TOTAL column.
// The TOTAL column uses the headline totals, so BUY COST nets off resale.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	r := report.Result
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{""}
	for i := range r.LeaseYears {
		header = append(header, fmt.Sprintf("Year %d", i+1))
	}
	header = append(header, "TOTAL")

	rows := BuildYearRows(r)
	lease := []string{"LEASE COST"}
	buy := []string{"BUY COST"}
	saving := []string{"SAVING (Buy - Lease)"}
	for _, row := range rows {
		lease = append(lease, row.Lease.StringFixed(0))
		buy = append(buy, row.Buy.StringFixed(0))
		saving = append(saving, row.Saving.StringFixed(0))
	}
	lease = append(lease, r.LeaseTotal.StringFixed(0))
	buy = append(buy, r.BuyTotalNet.StringFixed(0))
	saving = append(saving, r.Saving().StringFixed(0))

	if err := w.WriteAll([][]string{header, lease, buy, saving}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
