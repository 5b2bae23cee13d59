package calculation

import (
	"strings"
	"testing"

	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeResult_LeaseWins(t *testing.T) {
	v := AnalyzeResult(Project(domain.DefaultInput(), domain.DefaultSlabTable()))

	assert.True(t, v.LeaseWins)
	assert.Equal(t, 7, v.Years)
	assert.True(t, v.Saving.Equal(decimal.NewFromInt(700051)))
	assert.True(t, v.TotalTaxSavingLeasePeriod.Equal(decimal.NewFromInt(897936)))
	assert.Equal(t,
		"Lease is the better option. You save ₹7.00L over 7 years. Tax saving of ₹2.24L/year. Resale value of ₹8.00L already deducted from buy cost.",
		v.Summary)
}

func TestAnalyzeResult_BuyWins(t *testing.T) {
	in := domain.DefaultInput()
	in.LeaseRental = decimal.NewFromInt(150000)
	in.ResaleValue = decimal.Zero
	v := AnalyzeResult(Project(in, domain.DefaultSlabTable()))

	assert.False(t, v.LeaseWins)
	assert.True(t, v.Saving.IsNegative())
	assert.True(t, strings.HasPrefix(v.Summary, "Buying is the better option. Buying saves you ₹"), v.Summary)
	assert.True(t, strings.HasSuffix(v.Summary, "over 7 years after accounting for ₹0 resale value."), v.Summary)
}

func TestComposeCosts(t *testing.T) {
	in := domain.DefaultInput()
	r := Project(in, domain.DefaultSlabTable())
	c := ComposeCosts(in, r)

	require.Len(t, c.Lease, 5)
	assert.Equal(t, "Lease Rental (total)", c.Lease[0].Label)
	assert.True(t, c.Lease[0].Value.Equal(decimal.NewFromInt(2640000)))
	assert.True(t, c.Lease[1].Value.Equal(decimal.NewFromInt(480000)))
	assert.True(t, c.Lease[2].Value.Equal(decimal.NewFromInt(897936)))
	assert.True(t, c.Lease[3].Value.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, "Running Costs (Yr 5-7)", c.Lease[4].Label)
	assert.True(t, c.Lease[4].Value.Equal(decimal.NewFromInt(486000)))

	require.Len(t, c.Buy, 5)
	assert.True(t, c.Buy[0].Value.Equal(decimal.NewFromInt(500000)))
	assert.InDelta(t, 2618484.02, c.Buy[1].Value.InexactFloat64(), 0.01)
	assert.Equal(t, "Running Costs (7 yrs)", c.Buy[3].Label)
	assert.True(t, c.Buy[3].Value.Equal(decimal.NewFromInt(1134000)))
	assert.True(t, c.Buy[4].Value.Equal(decimal.NewFromInt(800000)))
}

func TestComposeCosts_NoPostLeaseYears(t *testing.T) {
	in := domain.DefaultInput()
	in.LoanTenureMonths = 48
	r := Project(in, domain.DefaultSlabTable())
	c := ComposeCosts(in, r)
	assert.Len(t, c.Lease, 4)
}
