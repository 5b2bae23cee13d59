package calculation

import (
	"testing"

	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cess4 = decimal.NewFromFloat(0.04)

// TestComputeTax tests slab-wise tax against the FY 2025-26 new regime table
func TestComputeTax(t *testing.T) {
	slabs := domain.DefaultSlabTable()

	tests := []struct {
		name          string
		income        decimal.Decimal
		expectedTax   decimal.Decimal
		expectedTotal decimal.Decimal
		breakdownLen  int
	}{
		{
			name:          "Zero income",
			income:        decimal.Zero,
			expectedTax:   decimal.Zero,
			expectedTotal: decimal.Zero,
			breakdownLen:  1,
		},
		{
			name:          "Negative income clamps to zero",
			income:        decimal.NewFromInt(-50000),
			expectedTax:   decimal.Zero,
			expectedTotal: decimal.Zero,
			breakdownLen:  1,
		},
		{
			name:          "Inside the nil slab",
			income:        decimal.NewFromInt(350000),
			expectedTax:   decimal.Zero,
			expectedTotal: decimal.Zero,
			breakdownLen:  1,
		},
		{
			name:          "Exactly at the first boundary",
			income:        decimal.NewFromInt(400000),
			expectedTax:   decimal.Zero,
			expectedTotal: decimal.Zero,
			breakdownLen:  1,
		},
		{
			name:          "Ten lakh",
			income:        decimal.NewFromInt(1000000),
			expectedTax:   decimal.NewFromInt(40000), // 400k@5% + 200k@10%
			expectedTotal: decimal.NewFromInt(41600),
			breakdownLen:  3,
		},
		{
			name:          "Taxable income without lease",
			income:        decimal.NewFromInt(2925000),
			expectedTax:   decimal.NewFromInt(457500),
			expectedTotal: decimal.NewFromInt(475800),
			breakdownLen:  7,
		},
		{
			name:          "Taxable income with lease",
			income:        decimal.NewFromInt(2166600),
			expectedTax:   decimal.NewFromInt(241650),
			expectedTotal: decimal.NewFromInt(251316),
			breakdownLen:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeTax(tt.income, cess4, slabs)
			assert.True(t, tt.expectedTax.Equal(result.Tax), "tax: expected %s, got %s", tt.expectedTax, result.Tax)
			assert.True(t, tt.expectedTotal.Equal(result.Total), "total: expected %s, got %s", tt.expectedTotal, result.Total)
			assert.True(t, result.Tax.Mul(cess4).Equal(result.Cess))
			assert.Len(t, result.Breakdown, tt.breakdownLen)
		})
	}
}

func TestComputeTax_BreakdownSumsAreExact(t *testing.T) {
	slabs := domain.DefaultSlabTable()
	for _, income := range []int64{0, 1, 399999, 400001, 812345, 1600000, 2399999, 2400000, 2400001, 9876543} {
		result := ComputeTax(decimal.NewFromInt(income), cess4, slabs)

		chunks := decimal.Zero
		taxes := decimal.Zero
		for _, b := range result.Breakdown {
			chunks = chunks.Add(b.Chunk)
			taxes = taxes.Add(b.Tax)
		}
		assert.True(t, chunks.Equal(decimal.NewFromInt(income)), "income %d: chunks sum to %s", income, chunks)
		assert.True(t, taxes.Equal(result.Tax), "income %d: breakdown tax %s != %s", income, taxes, result.Tax)
		assert.True(t, result.TaxedIncome().Equal(chunks))
	}
}

func TestComputeTax_MonotonicInIncome(t *testing.T) {
	slabs := domain.DefaultSlabTable()
	prev := decimal.Zero
	for income := int64(0); income <= 5000000; income += 37500 {
		total := ComputeTax(decimal.NewFromInt(income), cess4, slabs).Total
		require.False(t, total.IsNegative())
		require.True(t, total.GreaterThanOrEqual(prev), "tax decreased at income %d", income)
		prev = total
	}
}

func TestComputeTax_CappedTableTaxesOnlyCapacity(t *testing.T) {
	// No unbounded row: income beyond the table's capacity goes untaxed.
	slabs := domain.SlabTable{
		{Limit: domain.Bounded(decimal.NewFromInt(100)), Rate: decimal.Zero},
		{Limit: domain.Bounded(decimal.NewFromInt(100)), Rate: decimal.NewFromFloat(0.5)},
	}
	result := ComputeTax(decimal.NewFromInt(1000), decimal.Zero, slabs)

	capacity, capped := slabs.Capacity()
	require.True(t, capped)
	assert.True(t, result.TaxedIncome().Equal(capacity))
	assert.True(t, result.Tax.Equal(decimal.NewFromInt(50)))
	assert.Len(t, result.Breakdown, 2)
}

func TestComputeTax_EmptyTable(t *testing.T) {
	result := ComputeTax(decimal.NewFromInt(1000000), cess4, nil)
	assert.True(t, result.Total.IsZero())
	assert.Empty(t, result.Breakdown)
}

func TestComputeTax_UnboundedRowStopsTheWalk(t *testing.T) {
	slabs := domain.SlabTable{
		{Limit: domain.Unbounded(), Rate: decimal.NewFromFloat(0.1)},
		{Limit: domain.Bounded(decimal.NewFromInt(100)), Rate: decimal.NewFromFloat(0.9)},
	}
	result := ComputeTax(decimal.NewFromInt(1000), decimal.Zero, slabs)
	assert.True(t, result.Tax.Equal(decimal.NewFromInt(100)))
	assert.Len(t, result.Breakdown, 1)
	assert.True(t, result.Breakdown[0].Width.IsUnbounded())
}

func TestTaxCalculator(t *testing.T) {
	calc := NewTaxCalculator(domain.DefaultSlabTable(), cess4)
	direct := ComputeTax(decimal.NewFromInt(1500000), cess4, domain.DefaultSlabTable())
	assert.Equal(t, direct, calc.Calculate(decimal.NewFromInt(1500000)))
}
