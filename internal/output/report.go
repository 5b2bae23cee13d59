package output

import (
	"github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/domain"
)

// Report bundles a projection with everything the formatters render alongside it.
type Report struct {
	Title       string                      `json:"title"`
	Input       domain.ProjectionInput      `json:"input"`
	Slabs       domain.SlabTable            `json:"slabs"`
	Result      domain.ProjectionResult     `json:"result"`
	Verdict     calculation.Verdict         `json:"verdict"`
	Composition calculation.CostComposition `json:"composition"`
	Assumptions []string                    `json:"assumptions"`
}

// NewReport derives the verdict, cost composition and assumptions for a projection.
func NewReport(in domain.ProjectionInput, slabs domain.SlabTable, result domain.ProjectionResult) *Report {
	return &Report{
		Title:       "Car Lease vs Buy Analysis",
		Input:       in,
		Slabs:       slabs,
		Result:      result,
		Verdict:     calculation.AnalyzeResult(result),
		Composition: calculation.ComposeCosts(in, result),
		Assumptions: GenerateAssumptions(in, result),
	}
}

// GenerateReport formats report and writes it to a timestamped file in dir.
func GenerateReport(report *Report, format, dir string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, report, dir)
}

func (r *Report) assumptions() []string {
	if len(r.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return r.Assumptions
}
