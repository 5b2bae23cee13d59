package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	pageWidth    = 297.0 // A4 landscape
	marginLeft   = 12.0
	marginRight  = 12.0
	marginTop    = 12.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight
)

var fpdfEpoch = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

// PDFFormatter renders the report as a four-section PDF: Verdict, The Big
// Picture, Assumptions and Tax Calc.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf    *fpdf.Fpdf
	report *Report
}

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	r := &pdfReport{
		pdf:    fpdf.New("L", "mm", "A4", ""),
		report: report,
	}
	r.pdf.SetTitle(report.Title, false)
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	// fixed dates and sorted catalogs keep output reproducible
	r.pdf.SetCreationDate(fpdfEpoch)
	r.pdf.SetModificationDate(fpdfEpoch)
	r.pdf.SetCatalogSort(true)

	r.addVerdict()
	r.addBigPicture()
	r.addAssumptions()
	r.addTaxCalc()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) sectionHeader(title string) {
	r.pdf.AddPage()
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.CellFormat(contentWidth, 11, pdfText(title), "", 1, "L", true, 0, "")
	r.pdf.Ln(4)
	r.pdf.SetTextColor(40, 40, 40)
}

func (r *pdfReport) row(cells []string, widths []float64, bold bool, fill bool) {
	style := ""
	if bold {
		style = "B"
	}
	r.pdf.SetFont("Arial", style, 9)
	if fill {
		r.pdf.SetFillColor(240, 248, 255)
	}
	for i, c := range cells {
		align := "R"
		if i == 0 {
			align = "L"
		}
		r.pdf.CellFormat(widths[i], 6, pdfText(c), "1", 0, align, fill, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) addVerdict() {
	res := r.report.Result
	v := r.report.Verdict
	r.sectionHeader("Verdict: Lease vs Buy")

	r.pdf.SetFont("Arial", "B", 13)
	headline := "BUY is the better option"
	if v.LeaseWins {
		headline = "LEASE is the better option"
	}
	r.pdf.CellFormat(contentWidth, 9, headline, "", 1, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.MultiCell(contentWidth, 6, pdfText(v.Summary), "", "L", false)
	r.pdf.Ln(4)

	widths := []float64{90, 50, 50}
	r.row([]string{"", "LEASE", "BUY"}, widths, true, true)
	r.row([]string{fmt.Sprintf("Total Cost (%d Years)", res.MaxYears), FormatCurrency(res.LeaseTotal), FormatCurrency(res.BuyTotalNet)}, widths, false, false)
	r.row([]string{"You save with lease", FormatCurrency(v.Saving), ""}, widths, true, false)
	r.row([]string{"Annual Tax Saving", FormatCurrency(res.AnnualTaxSaving), ""}, widths, false, false)
	r.row([]string{"Monthly Tax Saving", FormatCurrency(res.MonthlyTaxSaving), ""}, widths, false, false)
	r.row([]string{"Total Tax Saving (Lease Period)", FormatCurrency(v.TotalTaxSavingLeasePeriod), ""}, widths, false, false)
	r.row([]string{"Break-even", breakEvenText(res.BreakEvenYear), ""}, widths, false, false)
}

func (r *pdfReport) addBigPicture() {
	res := r.report.Result
	r.sectionHeader("The Big Picture: Year-by-Year Cash Flow")

	years := len(res.LeaseYears)
	labelWidth := 50.0
	colWidth := (contentWidth - labelWidth) / float64(years+1)
	if colWidth > 30 {
		colWidth = 30
	}
	widths := []float64{labelWidth}
	header := []string{""}
	for i := 0; i < years; i++ {
		widths = append(widths, colWidth)
		header = append(header, fmt.Sprintf("Year %d", i+1))
	}
	widths = append(widths, colWidth)
	header = append(header, "TOTAL")

	rows := BuildYearRows(res)
	line := func(label string, pick func(YearRow) decimal.Decimal, total decimal.Decimal) []string {
		cells := []string{label}
		for _, yr := range rows {
			cells = append(cells, pick(yr).StringFixed(0))
		}
		return append(cells, total.StringFixed(0))
	}

	r.row(header, widths, true, true)
	r.row(line("LEASE COST", func(y YearRow) decimal.Decimal { return y.Lease }, res.LeaseTotal), widths, false, false)
	r.row(line("BUY COST", func(y YearRow) decimal.Decimal { return y.Buy }, res.BuyTotalNet), widths, false, false)
	r.row(line("SAVING (Buy - Lease)", func(y YearRow) decimal.Decimal { return y.Saving }, res.Saving()), widths, true, false)
}

func (r *pdfReport) addAssumptions() {
	in := r.report.Input
	res := r.report.Result
	r.sectionHeader("All Assumptions")

	widths := []float64{90, 60}
	group := func(title string, items [][2]string) {
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.CellFormat(contentWidth, 7, title, "", 1, "L", false, 0, "")
		for _, it := range items {
			r.row([]string{it[0], it[1]}, widths, false, false)
		}
		r.pdf.Ln(2)
	}

	group("SALARY DETAILS", [][2]string{
		{"Annual CTC", FormatCurrency(in.CTC)},
		{"Standard Deduction", FormatCurrency(in.StandardDeduction)},
		{"Cess", FormatRate(in.CessRate)},
	})
	group("CAR & LEASE", [][2]string{
		{"On-Road Price", FormatCurrency(in.OnRoadPrice)},
		{"Engine Capacity", in.EngineCategory.Label()},
		{"Monthly Lease Rental", FormatCurrency(in.LeaseRental)},
		{"Fuel/Maint Allowance (monthly)", FormatCurrency(in.FuelAllowance)},
		{"Lease Tenure (months)", fmt.Sprintf("%d", in.LeaseTenureMonths)},
		{"Buyback Price", FormatCurrency(in.BuybackPrice)},
	})
	group("LOAN", [][2]string{
		{"Down Payment", fmt.Sprintf("%s (%s)", FormatCurrency(res.DownPayment), FormatRate(in.DownPaymentPct))},
		{"Loan Interest Rate", FormatRate(in.LoanRate)},
		{"Loan Tenure (months)", fmt.Sprintf("%d", in.LoanTenureMonths)},
		{"Monthly EMI", FormatCurrency(res.EMI)},
	})
	group("RUNNING COSTS (Annual) & RESALE", [][2]string{
		{"Insurance", FormatCurrency(in.Insurance)},
		{"Maintenance", FormatCurrency(in.Maintenance)},
		{"Fuel", FormatCurrency(in.Fuel)},
		{"Inflation Rate", FormatRate(in.InflationRate)},
		{"Resale Value", FormatCurrency(in.ResaleValue)},
		{"Monthly Perquisite", FormatCurrency(res.PerquisiteMonthly)},
		{"Annual Perquisite", FormatCurrency(res.PerquisiteAnnual)},
	})

	r.pdf.SetFont("Arial", "I", 9)
	for _, a := range r.report.assumptions() {
		r.pdf.MultiCell(contentWidth, 5, pdfText("• "+a), "", "L", false)
	}
}

func (r *pdfReport) addTaxCalc() {
	res := r.report.Result
	r.sectionHeader("Detailed Tax Calculation")

	widths := []float64{70, 45, 45, 70}
	r.row([]string{"", "WITHOUT Lease", "WITH Lease", "Notes"}, widths, true, true)
	for _, row := range BuildTaxComputation(r.report.Input, res) {
		r.row([]string{row.Label, FormatCurrency(row.Without), FormatCurrency(row.With), row.Note}, widths, false, false)
	}
	r.pdf.Ln(4)

	slabWidths := widths[:3]
	r.row([]string{"Slab", "Without Lease", "With Lease"}, slabWidths, true, true)
	for _, row := range BuildSlabRows(r.report.Slabs, res) {
		r.row([]string{row.Label, FormatCurrency(row.Without), FormatCurrency(row.With)}, slabWidths, false, false)
	}
	r.row([]string{"Total Tax (before cess)", FormatCurrency(res.BuyTax.Tax), FormatCurrency(res.LeaseTax.Tax)}, slabWidths, false, false)
	r.row([]string{"Cess @" + FormatRate(r.report.Input.CessRate), FormatCurrency(res.BuyTax.Cess), FormatCurrency(res.LeaseTax.Cess)}, slabWidths, false, false)
	r.row([]string{"TOTAL TAX", FormatCurrency(res.BuyTax.Total), FormatCurrency(res.LeaseTax.Total)}, slabWidths, true, false)
	r.row([]string{"ANNUAL TAX SAVING", "", FormatCurrency(res.AnnualTaxSaving)}, slabWidths, true, true)
	r.row([]string{"MONTHLY TAX SAVING", "", FormatCurrency(res.MonthlyTaxSaving)}, slabWidths, true, true)
}
