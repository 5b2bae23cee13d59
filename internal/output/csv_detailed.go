package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVDetailedExporter provides one row per projected year with running totals.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "LeaseCost", "BuyCost", "Saving", "LeaseCumulative", "BuyCumulative", "BreakEven"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	be := report.Result.BreakEvenYear
	for _, yr := range BuildYearRows(report.Result) {
		row := []string{
			strconv.Itoa(yr.Year),
			yr.Lease.StringFixed(0),
			yr.Buy.StringFixed(0),
			yr.Saving.StringFixed(0),
			yr.LeaseCumulative.StringFixed(0),
			yr.BuyCumulative.StringFixed(0),
			strconv.FormatBool(be != nil && *be == yr.Year),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
