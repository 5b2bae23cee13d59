package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with an inline cumulative cost chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"short": FormatShort,
	"rate":  FormatRate,
	"neg":   func(d decimal.Decimal) bool { return d.IsNegative() },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type chartSeries struct {
	Labels []int     `json:"labels"`
	Lease  []float64 `json:"lease"`
	Buy    []float64 `json:"buy"`
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	rows := BuildYearRows(report.Result)

	chart := chartSeries{}
	for _, row := range rows {
		chart.Labels = append(chart.Labels, row.Year)
		chart.Lease = append(chart.Lease, row.LeaseCumulative.InexactFloat64())
		chart.Buy = append(chart.Buy, row.BuyCumulative.InexactFloat64())
	}

	data := struct {
		*Report
		Years          []YearRow
		TaxComputation []TaxRow
		SlabRows       []TaxRow
		AssumptionList []string
		BreakEven      string
		Chart          chartSeries
	}{
		Report:         report,
		Years:          rows,
		TaxComputation: BuildTaxComputation(report.Input, report.Result),
		SlabRows:       BuildSlabRows(report.Slabs, report.Result),
		AssumptionList: report.assumptions(),
		BreakEven:      breakEvenText(report.Result.BreakEvenYear),
		Chart:          chart,
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
