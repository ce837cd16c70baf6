package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol prefixes formatted amounts.
const RupeeSymbol = "₹"

// FormatINR formats an amount as Indian rupees with no fraction digits.
// Example: 1234567.5 returns "₹12,34,568"
// Example: -950 returns "-₹950"
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + RupeeSymbol + groupIndian(rounded.String())
}

// FormatNumber formats a number with en-IN digit grouping and at most three fraction digits.
// Example: 123456.789 returns "1,23,456.789"
func FormatNumber(amount decimal.Decimal) string {
	s := amount.Round(3).String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	out := sign + groupIndian(intPart)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}

// groupIndian inserts separators the Indian way: the last three digits form one
// group and every two digits before them form another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
