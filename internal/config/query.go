package config

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/hjson/hjson-go/v4"
	"github.com/rpgo/carlease-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Share links carry every input as a query parameter. Keys use the
// camelCase names of the calculator's web form.
const (
	QueryCTC            = "ctc"
	QueryStdDeduction   = "stdDeduction"
	QueryCess           = "cess"
	QueryInvestReturn   = "investReturn"
	QueryOnRoadPrice    = "onRoadPrice"
	QueryEngineCC       = "engineCC"
	QueryLeaseRental    = "leaseRental"
	QueryFuelAllowance  = "fuelAllowance"
	QueryLeaseTenure    = "leaseTenure"
	QueryBuybackPrice   = "buybackPrice"
	QueryDownPaymentPct = "downPaymentPct"
	QueryLoanRate       = "loanRate"
	QueryLoanTenure     = "loanTenure"
	QueryInsurance      = "insurance"
	QueryMaintenance    = "maintenance"
	QueryFuel           = "fuel"
	QueryInflationRate  = "inflationRate"
	QueryResaleValue    = "resaleValue"
)

// leadingNumber matches the numeric prefix a lenient float parser would accept ("12abc" -> 12).
var maxQueryMonths = decimal.NewFromInt(1_000_000)

var leadingNumber = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// decimalFields maps query keys to the decimal fields they set.
func decimalFields(in *domain.ProjectionInput) map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		QueryCTC:            &in.CTC,
		QueryStdDeduction:   &in.StandardDeduction,
		QueryCess:           &in.CessRate,
		QueryInvestReturn:   &in.InvestReturn,
		QueryOnRoadPrice:    &in.OnRoadPrice,
		QueryLeaseRental:    &in.LeaseRental,
		QueryFuelAllowance:  &in.FuelAllowance,
		QueryBuybackPrice:   &in.BuybackPrice,
		QueryDownPaymentPct: &in.DownPaymentPct,
		QueryLoanRate:       &in.LoanRate,
		QueryInsurance:      &in.Insurance,
		QueryMaintenance:    &in.Maintenance,
		QueryFuel:           &in.Fuel,
		QueryInflationRate:  &in.InflationRate,
		QueryResaleValue:    &in.ResaleValue,
	}
}

func intFields(in *domain.ProjectionInput) map[string]*int {
	return map[string]*int{
		QueryLeaseTenure: &in.LeaseTenureMonths,
		QueryLoanTenure:  &in.LoanTenureMonths,
	}
}

// ParseQuery overlays share-link parameters on defaults. Unknown keys are
// ignored and values that cannot be read keep the default. Each value is
// read as a lenient JSON literal first; when that yields no number, the
// numeric prefix of the raw text is used, and a zero prefix falls back to
// the default.
func ParseQuery(values url.Values, defaults domain.ProjectionInput) domain.ProjectionInput {
	in := defaults
	decimals := decimalFields(&in)
	ints := intFields(&in)

	for key, raw := range values {
		if len(raw) == 0 {
			continue
		}
		// repeated keys: the last value wins
		value := raw[len(raw)-1]

		if key == QueryEngineCC {
			if c, ok := parseEngineValue(value); ok {
				in.EngineCategory = c
			}
			continue
		}

		d, ok := parseNumericValue(value)
		if !ok {
			continue
		}
		if field, found := decimals[key]; found {
			*field = d
		} else if field, found := ints[key]; found {
			*field = wholeMonths(d)
		}
	}
	return in
}

// wholeMonths floors a month count. Tenures become years as floor((m+6)/12),
// which gives the same result for m and floor(m), so fractional months only
// lose precision in the EMI term. Out-of-range values saturate so validation
// rejects them instead of wrapping.
func wholeMonths(d decimal.Decimal) int {
	switch {
	case d.GreaterThan(maxQueryMonths):
		return int(maxQueryMonths.IntPart())
	case d.LessThan(maxQueryMonths.Neg()):
		return -int(maxQueryMonths.IntPart())
	}
	return int(d.Floor().IntPart())
}

// EncodeQuery is the inverse of ParseQuery.
func EncodeQuery(in domain.ProjectionInput) url.Values {
	values := url.Values{}
	for key, field := range decimalFields(&in) {
		values.Set(key, field.String())
	}
	for key, field := range intFields(&in) {
		values.Set(key, decimal.NewFromInt(int64(*field)).String())
	}
	engine, _ := json.Marshal(string(in.EngineCategory))
	values.Set(QueryEngineCC, string(engine))
	return values
}

func parseNumericValue(value string) (decimal.Decimal, bool) {
	var v interface{}
	if err := hjson.Unmarshal([]byte(value), &v); err == nil {
		switch n := v.(type) {
		case float64:
			return decimal.NewFromFloat(n), true
		case json.Number:
			if d, err := decimal.NewFromString(n.String()); err == nil {
				return d, true
			}
		case bool:
			// a JSON literal that is not a number
			return decimal.Decimal{}, false
		}
	}

	prefix := strings.TrimSpace(leadingNumber.FindString(value))
	if prefix == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil || d.IsZero() {
		return decimal.Decimal{}, false
	}
	return d, true
}

func parseEngineValue(value string) (domain.EngineCategory, bool) {
	var v interface{}
	s := value
	if err := hjson.Unmarshal([]byte(value), &v); err == nil {
		if str, ok := v.(string); ok {
			s = str
		}
	}
	c, err := domain.ParseEngineCategory(s)
	if err != nil {
		return "", false
	}
	return c, true
}
