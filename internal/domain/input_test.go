package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngineCategory(t *testing.T) {
	for raw, want := range map[string]EngineCategory{
		"below": EngineBelow, " Below ": EngineBelow, "small": EngineBelow,
		"above": EngineAbove, "ABOVE1600": EngineAbove,
	} {
		got, err := ParseEngineCategory(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseEngineCategory("hybrid")
	assert.Error(t, err)
}

func TestEngineCategory_UnmarshalText(t *testing.T) {
	var c EngineCategory
	require.NoError(t, c.UnmarshalText([]byte("above")))
	assert.Equal(t, EngineAbove, c)
	assert.Equal(t, "Above 1600cc", c.Label())
	assert.Error(t, c.UnmarshalText([]byte("v8")))
}

func TestPerquisiteRates_Monthly(t *testing.T) {
	rates := DefaultPerquisiteRates()
	assert.True(t, rates.Monthly(EngineBelow).Equal(decimal.NewFromInt(1800)))
	assert.True(t, rates.Monthly(EngineAbove).Equal(decimal.NewFromInt(2400)))
	assert.True(t, rates.Monthly("").Equal(decimal.NewFromInt(2400)))
}

func TestDefaultInput(t *testing.T) {
	in := DefaultInput()
	assert.True(t, in.AnnualRunningCost().Equal(decimal.NewFromInt(162000)))
	assert.Equal(t, 48, in.LeaseTenureMonths)
	assert.Equal(t, 84, in.LoanTenureMonths)
}

func TestConfiguration_Fallbacks(t *testing.T) {
	cfg := &Configuration{}
	assert.Len(t, cfg.SlabTable(), 7)
	assert.Equal(t, DefaultPerquisiteRates(), cfg.PerquisiteRates())

	cfg.Slabs = []SlabRow{topRow(0.1)}
	table := cfg.SlabTable()
	table[0].Rate = decimal.NewFromInt(1)
	assert.True(t, cfg.Slabs[0].Rate.Equal(decimal.NewFromFloat(0.1)), "SlabTable must copy")
}

func TestProjectionResult_Helpers(t *testing.T) {
	year := 3
	r := ProjectionResult{
		LeaseTenureYears: 4,
		AnnualTaxSaving:  decimal.NewFromInt(1000),
		LeaseYears:       []decimal.Decimal{decimal.NewFromInt(100), decimal.NewFromInt(200)},
		BuyYears:         []decimal.Decimal{decimal.NewFromInt(150), decimal.NewFromInt(100)},
		LeaseTotal:       decimal.NewFromInt(300),
		BuyTotalNet:      decimal.NewFromInt(250),
		BreakEvenYear:    &year,
	}

	assert.False(t, r.LeaseWins())
	assert.True(t, r.Saving().Equal(decimal.NewFromInt(-50)))
	assert.True(t, r.TotalTaxSavingOverLease().Equal(decimal.NewFromInt(4000)))
	assert.True(t, r.HasBreakEven())

	savings := r.YearlySavings()
	require.Len(t, savings, 2)
	assert.True(t, savings[0].Equal(decimal.NewFromInt(50)))
	assert.True(t, savings[1].Equal(decimal.NewFromInt(-100)))
}
