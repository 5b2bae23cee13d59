package calculation

import (
	"github.com/shopspring/decimal"
)

// BreakEvenTracker records the first year in which cumulative lease cost
// exceeds cumulative buy cost net of resale. Once set it is never overwritten.
type BreakEvenTracker struct {
	resale decimal.Decimal
	year   *int
}

// NewBreakEvenTracker creates a tracker that credits resale against the buy side.
func NewBreakEvenTracker(resale decimal.Decimal) *BreakEvenTracker {
	return &BreakEvenTracker{resale: resale}
}

// Observe feeds the running totals after year. It returns true the first time
// the crossing condition holds.
func (t *BreakEvenTracker) Observe(year int, leaseCumulative, buyCumulative decimal.Decimal) bool {
	if t.year != nil {
		return false
	}
	if leaseCumulative.GreaterThan(buyCumulative.Sub(t.resale)) {
		y := year
		t.year = &y
		return true
	}
	return false
}

// Year returns the recorded break-even year, or nil if none was observed.
func (t *BreakEvenTracker) Year() *int {
	if t.year == nil {
		return nil
	}
	y := *t.year
	return &y
}

// FindBreakEven scans two cumulative series and returns the first 1-based year
// in which lease exceeds buy minus resale. Series of unequal length are
// compared up to the shorter one.
func FindBreakEven(leaseCumulative, buyCumulative []decimal.Decimal, resale decimal.Decimal) *int {
	tracker := NewBreakEvenTracker(resale)
	n := len(leaseCumulative)
	if len(buyCumulative) < n {
		n = len(buyCumulative)
	}
	for i := 0; i < n; i++ {
		if tracker.Observe(i+1, leaseCumulative[i], buyCumulative[i]) {
			break
		}
	}
	return tracker.Year()
}
