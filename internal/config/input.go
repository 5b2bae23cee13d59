package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxTenureMonths caps lease and loan tenures at 50 years.
const MaxTenureMonths = 600

// ValidationError reports a single input field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML (or JSON) file. Fields missing
// from the file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses and validates a scenario document.
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{Input: domain.DefaultInput()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.ValidateInput(&config.Input); err != nil {
		return fmt.Errorf("input: %w", err)
	}

	if len(config.Slabs) > 0 && !config.PermissiveSlabs {
		if _, err := domain.ParseSlabTable(config.Slabs); err != nil {
			return fmt.Errorf("slabs: %w", err)
		}
	}

	if p := config.Perquisite; p != nil {
		if p.BelowThreshold.IsNegative() || p.AboveThreshold.IsNegative() {
			return &ValidationError{Field: "perquisite", Reason: "cannot be negative"}
		}
	}

	return nil
}

// ValidateInput checks the ranges of a projection input. The engine accepts
// any input; this is applied at the boundary only.
func (ip *InputParser) ValidateInput(in *domain.ProjectionInput) error {
	nonNegative := []struct {
		field string
		value decimal.Decimal
	}{
		{"ctc", in.CTC},
		{"std_deduction", in.StandardDeduction},
		{"cess", in.CessRate},
		{"on_road_price", in.OnRoadPrice},
		{"lease_rental", in.LeaseRental},
		{"fuel_allowance", in.FuelAllowance},
		{"buyback_price", in.BuybackPrice},
		{"loan_rate", in.LoanRate},
		{"insurance", in.Insurance},
		{"maintenance", in.Maintenance},
		{"fuel", in.Fuel},
		{"resale_value", in.ResaleValue},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			return &ValidationError{Field: f.field, Reason: "cannot be negative"}
		}
	}

	if in.DownPaymentPct.IsNegative() || in.DownPaymentPct.GreaterThan(decimal.NewFromInt(1)) {
		return &ValidationError{Field: "down_payment_pct", Reason: "must be between 0 and 1"}
	}
	if in.InvestReturn.LessThan(decimal.NewFromInt(-1)) {
		return &ValidationError{Field: "invest_return", Reason: "cannot be less than -100%"}
	}
	if in.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) {
		return &ValidationError{Field: "inflation_rate", Reason: "cannot be less than -10% (extreme deflation)"}
	}
	if in.LeaseTenureMonths <= 0 || in.LeaseTenureMonths > MaxTenureMonths {
		return &ValidationError{Field: "lease_tenure", Reason: fmt.Sprintf("must be between 1 and %d months", MaxTenureMonths)}
	}
	if in.LoanTenureMonths <= 0 || in.LoanTenureMonths > MaxTenureMonths {
		return &ValidationError{Field: "loan_tenure", Reason: fmt.Sprintf("must be between 1 and %d months", MaxTenureMonths)}
	}
	if in.EngineCategory != domain.EngineBelow && in.EngineCategory != domain.EngineAbove {
		return &ValidationError{Field: "engine_cc", Reason: "must be 'below' or 'above'"}
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration with the
// default inputs and an explicit copy of the default slab table.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	perq := domain.DefaultPerquisiteRates()
	return &domain.Configuration{
		Name:       "Default lease vs buy",
		Input:      domain.DefaultInput(),
		Slabs:      domain.DefaultSlabTable(),
		Perquisite: &perq,
	}
}

// SaveToFile writes a configuration as YAML.
func (ip *InputParser) SaveToFile(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
