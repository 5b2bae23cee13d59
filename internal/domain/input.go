package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EngineCategory selects the statutory perquisite amount for the leased car.
type EngineCategory string

const (
	// EngineBelow covers cars up to 1600cc.
	EngineBelow EngineCategory = "below"
	// EngineAbove covers cars above 1600cc.
	EngineAbove EngineCategory = "above"
)

// Label returns the human readable engine capacity description.
func (c EngineCategory) Label() string {
	if c == EngineBelow {
		return "Below 1600cc"
	}
	return "Above 1600cc"
}

// UnmarshalText accepts "below"/"above" case-insensitively.
func (c *EngineCategory) UnmarshalText(text []byte) error {
	v, err := ParseEngineCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseEngineCategory converts user input to an EngineCategory.
func ParseEngineCategory(s string) (EngineCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "below", "below1600", "small":
		return EngineBelow, nil
	case "above", "above1600", "large":
		return EngineAbove, nil
	default:
		return "", fmt.Errorf("unknown engine category %q (want below or above)", s)
	}
}

// PerquisiteRates holds the fixed monthly notional benefit added back to taxable income.
type PerquisiteRates struct {
	BelowThreshold decimal.Decimal `json:"below_threshold" yaml:"below_threshold"`
	AboveThreshold decimal.Decimal `json:"above_threshold" yaml:"above_threshold"`
}

// DefaultPerquisiteRates returns the statutory monthly perquisite values.
func DefaultPerquisiteRates() PerquisiteRates {
	return PerquisiteRates{
		BelowThreshold: decimal.NewFromInt(1800),
		AboveThreshold: decimal.NewFromInt(2400),
	}
}

// Monthly returns the perquisite for the category. Anything other than
// EngineBelow is charged at the above-threshold amount.
func (p PerquisiteRates) Monthly(c EngineCategory) decimal.Decimal {
	if c == EngineBelow {
		return p.BelowThreshold
	}
	return p.AboveThreshold
}

// ProjectionInput is the full set of assumptions for one lease vs buy comparison.
// Monetary fields are in rupees; rates are fractions (0.08 = 8%).
type ProjectionInput struct {
	// Salary
	CTC               decimal.Decimal `json:"ctc" yaml:"ctc"`
	StandardDeduction decimal.Decimal `json:"std_deduction" yaml:"std_deduction"`
	CessRate          decimal.Decimal `json:"cess" yaml:"cess"`

	InvestReturn decimal.Decimal `json:"invest_return" yaml:"invest_return"`

	// Car
	OnRoadPrice    decimal.Decimal `json:"on_road_price" yaml:"on_road_price"`
	EngineCategory EngineCategory  `json:"engine_cc" yaml:"engine_cc"`

	// Lease terms
	LeaseRental       decimal.Decimal `json:"lease_rental" yaml:"lease_rental"`
	FuelAllowance     decimal.Decimal `json:"fuel_allowance" yaml:"fuel_allowance"`
	LeaseTenureMonths int             `json:"lease_tenure" yaml:"lease_tenure"`
	BuybackPrice      decimal.Decimal `json:"buyback_price" yaml:"buyback_price"`

	// Loan terms
	DownPaymentPct   decimal.Decimal `json:"down_payment_pct" yaml:"down_payment_pct"`
	LoanRate         decimal.Decimal `json:"loan_rate" yaml:"loan_rate"`
	LoanTenureMonths int             `json:"loan_tenure" yaml:"loan_tenure"`

	// Annual running costs
	Insurance   decimal.Decimal `json:"insurance" yaml:"insurance"`
	Maintenance decimal.Decimal `json:"maintenance" yaml:"maintenance"`
	Fuel        decimal.Decimal `json:"fuel" yaml:"fuel"`

	InflationRate decimal.Decimal `json:"inflation_rate" yaml:"inflation_rate"`
	ResaleValue   decimal.Decimal `json:"resale_value" yaml:"resale_value"`
}

// DefaultInput returns the reference scenario used by the calculator on first load.
func DefaultInput() ProjectionInput {
	return ProjectionInput{
		CTC:               decimal.NewFromInt(3000000),
		StandardDeduction: decimal.NewFromInt(75000),
		CessRate:          decimal.NewFromFloat(0.04),
		InvestReturn:      decimal.NewFromFloat(0.12),
		OnRoadPrice:       decimal.NewFromInt(2500000),
		EngineCategory:    EngineBelow,
		LeaseRental:       decimal.NewFromInt(55000),
		FuelAllowance:     decimal.NewFromInt(10000),
		LeaseTenureMonths: 48,
		BuybackPrice:      decimal.NewFromInt(100000),
		DownPaymentPct:    decimal.NewFromFloat(0.2),
		LoanRate:          decimal.NewFromFloat(0.08),
		LoanTenureMonths:  84,
		Insurance:         decimal.NewFromInt(45000),
		Maintenance:       decimal.NewFromInt(12000),
		Fuel:              decimal.NewFromInt(105000),
		InflationRate:     decimal.NewFromFloat(0.06),
		ResaleValue:       decimal.NewFromInt(800000),
	}
}

// AnnualRunningCost is the un-inflated yearly insurance + maintenance + fuel.
func (in ProjectionInput) AnnualRunningCost() decimal.Decimal {
	return in.Insurance.Add(in.Maintenance).Add(in.Fuel)
}
