package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/carlease-calculator/internal/domain"
	money "github.com/rpgo/carlease-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	decimalHundred = decimal.NewFromInt(100)
	decimalLakh    = decimal.NewFromInt(100000)
)

// FormatCurrency formats a decimal as whole rupees with Indian digit grouping (₹12,34,567).
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatShort abbreviates an amount in lakh/crore (₹7.00L).
func FormatShort(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-₹" + money.NewMoneyFromDecimal(amount.Abs()).Short()
	}
	return "₹" + money.NewMoneyFromDecimal(amount).Short()
}

// FormatRate formats a fraction as a percentage without trailing zeros (0.085 -> 8.5%).
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).String() + "%"
}

// FormatPercentage formats an already-scaled percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// SlabLabel describes a slab by its income range and rate ("₹4-8L @5%", "Above ₹24L @30%").
func SlabLabel(lower decimal.Decimal, width domain.Bound, rate decimal.Decimal) string {
	limit, bounded := width.Limit()
	if !bounded {
		return fmt.Sprintf("Above ₹%sL @%s", lakhs(lower), FormatRate(rate))
	}
	return fmt.Sprintf("₹%s-%sL @%s", lakhs(lower), lakhs(lower.Add(limit)), FormatRate(rate))
}

func lakhs(d decimal.Decimal) string {
	return d.DivRound(decimalLakh, 2).String()
}

// pdfText converts UTF-8 text to the Latin-1 subset understood by the core PDF fonts.
func pdfText(s string) string {
	return strings.NewReplacer("₹", "Rs.", "•", "-", "—", "-", "–", "-").Replace(s)
}
