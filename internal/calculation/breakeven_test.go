package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func series(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

// Test the first crossing wins even if the series later swap back
func TestFindBreakEven_FirstCrossing(t *testing.T) {
	lease := series(100, 100, 300)
	buy := series(150, 50, 400)

	year := FindBreakEven(lease, buy, decimal.Zero)
	if year == nil {
		t.Fatalf("expected crossover, got nil")
	}
	if *year != 2 {
		t.Fatalf("expected year 2, got %d", *year)
	}
}

// Test resale is credited against the buy side
func TestFindBreakEven_ResaleCredit(t *testing.T) {
	lease := series(100)
	buy := series(150)

	if got := FindBreakEven(lease, buy, decimal.Zero); got != nil {
		t.Fatalf("expected no crossover without resale, got %d", *got)
	}
	got := FindBreakEven(lease, buy, decimal.NewFromInt(60))
	if got == nil || *got != 1 {
		t.Fatalf("expected year 1 with resale credit, got %v", got)
	}
}

// Test equality is not a crossing
func TestFindBreakEven_EqualIsNotCrossing(t *testing.T) {
	if got := FindBreakEven(series(100, 200), series(100, 200), decimal.Zero); got != nil {
		t.Fatalf("expected nil, got %d", *got)
	}
}

func TestFindBreakEven_EmptyAndUneven(t *testing.T) {
	if got := FindBreakEven(nil, nil, decimal.Zero); got != nil {
		t.Fatalf("expected nil for empty series")
	}
	got := FindBreakEven(series(10, 500, 900), series(100, 200), decimal.Zero)
	if got == nil || *got != 2 {
		t.Fatalf("expected year 2 on uneven series, got %v", got)
	}
}

func TestBreakEvenTracker_NeverOverwritten(t *testing.T) {
	tr := NewBreakEvenTracker(decimal.Zero)
	if !tr.Observe(3, decimal.NewFromInt(10), decimal.NewFromInt(5)) {
		t.Fatalf("expected first observation to record")
	}
	if tr.Observe(4, decimal.NewFromInt(10), decimal.NewFromInt(5)) {
		t.Fatalf("second crossing must not record")
	}
	y := tr.Year()
	if y == nil || *y != 3 {
		t.Fatalf("expected year 3, got %v", y)
	}
	*y = 99
	if *tr.Year() != 3 {
		t.Fatalf("Year must return a copy")
	}
}
