package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeInstallment(t *testing.T) {
	tests := []struct {
		name      string
		principal decimal.Decimal
		rate      decimal.Decimal
		months    int
		expected  float64
	}{
		{"Car loan 20 lakh at 8% for 84 months", decimal.NewFromInt(2000000), decimal.NewFromFloat(0.08), 84, 31172.428805},
		{"One lakh at 12% for 12 months", decimal.NewFromInt(100000), decimal.NewFromFloat(0.12), 12, 8884.878867},
		{"Zero principal", decimal.Zero, decimal.NewFromFloat(0.08), 84, 0},
		{"Negative principal", decimal.NewFromInt(-1000), decimal.NewFromFloat(0.08), 84, 0},
		{"Zero term", decimal.NewFromInt(100000), decimal.NewFromFloat(0.08), 0, 0},
		{"Negative term", decimal.NewFromInt(100000), decimal.NewFromFloat(0.08), -12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeInstallment(tt.principal, tt.rate, tt.months)
			assert.InDelta(t, tt.expected, got.InexactFloat64(), 0.001)
		})
	}
}

func TestComputeInstallment_ZeroRateIsStraightLine(t *testing.T) {
	for _, c := range []struct {
		principal int64
		months    int
	}{{1200000, 60}, {1000, 7}, {2000000, 84}} {
		p := decimal.NewFromInt(c.principal)
		n := decimal.NewFromInt(int64(c.months))
		got := ComputeInstallment(p, decimal.Zero, c.months)
		assert.True(t, p.Div(n).Equal(got), "expected %s, got %s", p.Div(n), got)
	}
}

func TestComputeInstallment_Deterministic(t *testing.T) {
	p := decimal.NewFromInt(2000000)
	r := decimal.NewFromFloat(0.0875)
	first := ComputeInstallment(p, r, 60)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.String(), ComputeInstallment(p, r, 60).String())
	}
}

func TestComputeInstallment_PathologicalRateStaysTotal(t *testing.T) {
	// monthly rate of -2 makes (1+r)^n - 1 zero for even n
	got := ComputeInstallment(decimal.NewFromInt(1200), decimal.NewFromInt(-24), 12)
	assert.True(t, got.Equal(decimal.NewFromInt(100)))
}

func TestSummarizeLoan(t *testing.T) {
	terms := SummarizeLoan(decimal.NewFromInt(2000000), decimal.NewFromFloat(0.08), 84)
	assert.InDelta(t, 31172.428805, terms.Installment.InexactFloat64(), 0.001)
	assert.InDelta(t, 618484.019649, terms.TotalInterest.InexactFloat64(), 0.01)
	assert.True(t, terms.TotalPaid.Sub(terms.Principal).Equal(terms.TotalInterest))
}
