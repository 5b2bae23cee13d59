package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/carlease-calculator/internal/calculation"
	"github.com/rpgo/carlease-calculator/internal/config"
	"github.com/rpgo/carlease-calculator/internal/domain"
)

// debug_break_even prints the cumulative lease and buy series of a scenario
// file and re-derives the break-even year from the rounded series.
func main() {
	p := config.NewInputParser()
	cfg := p.CreateExampleConfiguration()
	if len(os.Args) >= 2 {
		loaded, err := p.LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	engine := calc.NewEngineWithConfig(cfg)
	res := engine.RunConfiguration(cfg)
	if res.MaxYears <= 0 {
		fmt.Println("no projection data")
		return
	}

	fmt.Println("Year,Lease,Buy,LeaseCum,BuyCum,BuyCumNetResale,Diff")
	for i := range res.LeaseYears {
		netBuy := res.BuyCumulative[i].Sub(res.ResaleValue)
		fmt.Printf("%d,%s,%s,%s,%s,%s,%s\n", i+1,
			res.LeaseYears[i].StringFixed(0), res.BuyYears[i].StringFixed(0),
			res.LeaseCumulative[i].StringFixed(0), res.BuyCumulative[i].StringFixed(0),
			netBuy.StringFixed(0), res.LeaseCumulative[i].Sub(netBuy).StringFixed(0))
	}

	// The engine compares unrounded totals; the rounded series can disagree by a rupee.
	fromRounded := calc.FindBreakEven(res.LeaseCumulative, res.BuyCumulative, res.ResaleValue)
	fmt.Printf("\nBreakEven (engine): %s\nBreakEven (rounded series): %s\n", year(res.BreakEvenYear), year(fromRounded))
	if !sameYear(res.BreakEvenYear, fromRounded) {
		fmt.Println("WARNING: rounding moved the crossing year")
	}
	printTotals(res)
}

func printTotals(res domain.ProjectionResult) {
	fmt.Printf("Lease total %s, buy gross %s, buy net %s, saving %s\n",
		res.LeaseTotal.StringFixed(0), res.BuyTotalGross.StringFixed(0),
		res.BuyTotalNet.StringFixed(0), res.Saving().StringFixed(0))
}

func year(y *int) string {
	if y == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *y)
}

func sameYear(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
