package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/config"
	"github.com/shopspring/decimal"
)

// TestEngineSnapshot produces a deterministic snapshot of core projection metrics.
func TestEngineSnapshot(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	res := calculation.NewEngineWithConfig(cfg).RunConfiguration(cfg)

	strs := func(values []decimal.Decimal) []string {
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = v.StringFixed(0)
		}
		return out
	}

	// Trim to stable summary fields only
	var out struct {
		LeaseTotal      string   `json:"lease_total"`
		BuyTotalGross   string   `json:"buy_total_gross"`
		BuyTotalNet     string   `json:"buy_total_net"`
		Saving          string   `json:"saving"`
		AnnualTaxSaving string   `json:"annual_tax_saving"`
		EMI             string   `json:"emi"`
		TotalInterest   string   `json:"total_interest"`
		OpportunityCost string   `json:"opportunity_cost"`
		BreakEvenYear   int      `json:"break_even_year"`
		LeaseYears      []string `json:"lease_years"`
		BuyYears        []string `json:"buy_years"`
	}
	out.LeaseTotal = res.LeaseTotal.StringFixed(0)
	out.BuyTotalGross = res.BuyTotalGross.StringFixed(0)
	out.BuyTotalNet = res.BuyTotalNet.StringFixed(0)
	out.Saving = res.Saving().StringFixed(0)
	out.AnnualTaxSaving = res.AnnualTaxSaving.StringFixed(0)
	out.EMI = res.EMI.StringFixed(2)
	out.TotalInterest = res.TotalInterest.StringFixed(0)
	out.OpportunityCost = res.OpportunityCost.StringFixed(0)
	if res.BreakEvenYear != nil {
		out.BreakEvenYear = *res.BreakEvenYear
	}
	out.LeaseYears = strs(res.LeaseYears)
	out.BuyYears = strs(res.BuyYears)
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) != string(data) {
		t.Fatalf("engine snapshot changed; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", data, golden)
	}
}
