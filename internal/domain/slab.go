package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Slab table validation errors returned by ParseSlabTable.
var (
	ErrEmptySlabTable       = errors.New("slab table has no rows")
	ErrNegativeSlabLimit    = errors.New("slab limit cannot be negative")
	ErrSlabRateOutOfRange   = errors.New("slab rate must be between 0 and 1")
	ErrUnboundedNotLast     = errors.New("only the final slab may be unbounded")
	ErrMissingUnboundedSlab = errors.New("final slab must be unbounded")
)

const unboundedToken = "unbounded"

// Bound is the width of a tax slab: either a finite amount or "no upper bound".
// The zero value is Bounded(0).
type Bound struct {
	limit     decimal.Decimal
	unbounded bool
}

// Bounded returns a finite slab width.
func Bounded(limit decimal.Decimal) Bound { return Bound{limit: limit} }

// Unbounded returns the open-ended width used by the final slab.
func Unbounded() Bound { return Bound{unbounded: true} }

// IsUnbounded reports whether the bound has no upper limit.
func (b Bound) IsUnbounded() bool { return b.unbounded }

// Limit returns the finite width and true, or zero and false when unbounded.
func (b Bound) Limit() (decimal.Decimal, bool) {
	if b.unbounded {
		return decimal.Zero, false
	}
	return b.limit, true
}

// Equal compares two bounds by value.
func (b Bound) Equal(other Bound) bool {
	if b.unbounded || other.unbounded {
		return b.unbounded == other.unbounded
	}
	return b.limit.Equal(other.limit)
}

func (b Bound) String() string {
	if b.unbounded {
		return unboundedToken
	}
	return b.limit.String()
}

// MarshalJSON encodes a bounded width as a number and the unbounded variant as "unbounded".
func (b Bound) MarshalJSON() ([]byte, error) {
	if b.unbounded {
		return json.Marshal(unboundedToken)
	}
	return []byte(b.limit.String()), nil
}

// UnmarshalJSON accepts a number, a numeric string, null, or one of the unbounded tokens.
func (b *Bound) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*b = Unbounded()
		return nil
	}
	return b.parse(strings.Trim(raw, `"`))
}

// MarshalYAML mirrors MarshalJSON.
func (b Bound) MarshalYAML() (interface{}, error) {
	if b.unbounded {
		return unboundedToken, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: b.limit.String()}, nil
}

// UnmarshalYAML accepts the same spellings as UnmarshalJSON. An empty string is
// unbounded; a YAML null leaves the zero Bound untouched.
func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "" {
		*b = Unbounded()
		return nil
	}
	return b.parse(node.Value)
}

func (b *Bound) parse(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case unboundedToken, "inf", "infinity", "+inf", "none":
		*b = Unbounded()
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid slab limit %q: %w", s, err)
	}
	*b = Bounded(d)
	return nil
}

// SlabRow is one progressive tax bracket. Limit is the bracket width, not its upper edge.
type SlabRow struct {
	Limit Bound           `json:"limit" yaml:"limit"`
	Rate  decimal.Decimal `json:"rate" yaml:"rate"`
}

// SlabTable is an ordered list of brackets covering income from zero upward.
type SlabTable []SlabRow

// DefaultSlabTable returns the new-regime slabs for FY 2025-26.
func DefaultSlabTable() SlabTable {
	width := decimal.NewFromInt(400000)
	return SlabTable{
		{Limit: Bounded(width), Rate: decimal.Zero},
		{Limit: Bounded(width), Rate: decimal.NewFromFloat(0.05)},
		{Limit: Bounded(width), Rate: decimal.NewFromFloat(0.10)},
		{Limit: Bounded(width), Rate: decimal.NewFromFloat(0.15)},
		{Limit: Bounded(width), Rate: decimal.NewFromFloat(0.20)},
		{Limit: Bounded(width), Rate: decimal.NewFromFloat(0.25)},
		{Limit: Unbounded(), Rate: decimal.NewFromFloat(0.30)},
	}
}

// ParseSlabTable validates rows and returns them as a SlabTable.
// The projection engine itself never validates; callers that want the
// permissive behaviour can convert a []SlabRow directly.
func ParseSlabTable(rows []SlabRow) (SlabTable, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySlabTable
	}
	one := decimal.NewFromInt(1)
	for i, row := range rows {
		if limit, ok := row.Limit.Limit(); ok && limit.IsNegative() {
			return nil, fmt.Errorf("slab %d: %w", i+1, ErrNegativeSlabLimit)
		}
		if row.Rate.IsNegative() || row.Rate.GreaterThan(one) {
			return nil, fmt.Errorf("slab %d: %w", i+1, ErrSlabRateOutOfRange)
		}
		if row.Limit.IsUnbounded() && i != len(rows)-1 {
			return nil, fmt.Errorf("slab %d: %w", i+1, ErrUnboundedNotLast)
		}
	}
	if !rows[len(rows)-1].Limit.IsUnbounded() {
		return nil, ErrMissingUnboundedSlab
	}
	table := make(SlabTable, len(rows))
	copy(table, rows)
	return table, nil
}

// Capacity returns the total bounded width and whether the table is capped.
// A table containing an unbounded row has no cap.
func (t SlabTable) Capacity() (decimal.Decimal, bool) {
	total := decimal.Zero
	for _, row := range t {
		limit, ok := row.Limit.Limit()
		if !ok {
			return decimal.Zero, false
		}
		total = total.Add(limit)
	}
	return total, true
}

// IsProgressive reports whether rates never decrease from one slab to the next.
func (t SlabTable) IsProgressive() bool {
	for i := 1; i < len(t); i++ {
		if t[i].Rate.LessThan(t[i-1].Rate) {
			return false
		}
	}
	return true
}

// LowerEdges returns the income at which each slab starts.
// Rows after an unbounded row start where the unbounded row started.
func (t SlabTable) LowerEdges() []decimal.Decimal {
	edges := make([]decimal.Decimal, len(t))
	start := decimal.Zero
	for i, row := range t {
		edges[i] = start
		if limit, ok := row.Limit.Limit(); ok {
			start = start.Add(limit)
		}
	}
	return edges
}

// Clone returns an independent copy of the table.
func (t SlabTable) Clone() SlabTable {
	if t == nil {
		return nil
	}
	out := make(SlabTable, len(t))
	copy(out, t)
	return out
}

// WithScaledRates returns a copy with every rate multiplied by factor.
func (t SlabTable) WithScaledRates(factor decimal.Decimal) SlabTable {
	out := t.Clone()
	for i := range out {
		out[i].Rate = out[i].Rate.Mul(factor)
	}
	return out
}

// SlabBreakdown records the tax contributed by one consumed slab.
type SlabBreakdown struct {
	Width Bound           `json:"width" yaml:"width"`
	Rate  decimal.Decimal `json:"rate" yaml:"rate"`
	Chunk decimal.Decimal `json:"chunk" yaml:"chunk"`
	Tax   decimal.Decimal `json:"tax" yaml:"tax"`
}

// TaxResult is the output of a progressive tax computation.
type TaxResult struct {
	Tax       decimal.Decimal `json:"tax" yaml:"tax"`
	Cess      decimal.Decimal `json:"cess" yaml:"cess"`
	Total     decimal.Decimal `json:"total" yaml:"total"`
	Breakdown []SlabBreakdown `json:"breakdown" yaml:"breakdown"`
}

// TaxedIncome is the sum of the chunks consumed across the breakdown.
func (r TaxResult) TaxedIncome() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.Breakdown {
		total = total.Add(b.Chunk)
	}
	return total
}
