// Package normalize converts raw statement substrings into typed amounts and
// calendar dates. Nothing here returns an error for malformed input: a value
// that cannot be read is reported with ok == false so callers can move on to
// their next source.
package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the sanity ceiling for any single statement figure (10 crore).
// Larger values are almost always several fields glued together by the text
// extractor.
var MaxAmount = decimal.NewFromInt(100_000_000)

var (
	// currency glyphs and tokens, stripped before separators so that the dot
	// in "Rs." never reaches the numeric run
	currencyMarkers = regexp.MustCompile(`(?i)(?:₹|rs\.?|inr|\$|€|£)`)
	// credit/debit markers, e.g. "1,200.00 Cr" or "540.00Dr"
	creditDebitMarkers = regexp.MustCompile(`(?i)(?:cr|dr)\.?`)
	creditSuffix       = regexp.MustCompile(`(?i)(?:^|[\d\s])cr\.?\s*$`)

	numericPattern = regexp.MustCompile(`^-?(?:\d+\.?\d*|\.\d+)$`)
	amountShape    = regexp.MustCompile(`\d[\d,]*(?:\.\d{1,2})?`)

	// 1,23,45,678: a trailing group of three preceded by groups of two
	indianGrouped = regexp.MustCompile(`^\d{1,2}(?:,\d{2})*,\d{3}$`)
	plainDigits   = regexp.MustCompile(`^\d+$`)
)

// ParseAmount converts strings such as "₹1,23,456.78", "Rs. 12,345.67",
// "$1,234.56" or "540.00 Cr" to a decimal. Grouping separators are removed
// regardless of convention.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := stripMarkers(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.Join(strings.Fields(cleaned), "")
	return parseNumeric(cleaned)
}

// ParseIndianAmount parses an amount written with the Indian digit grouping
// ("1,23,456.78"). Ungrouped digits are accepted too; Western-only groupings
// such as "1,234,567.00" are rejected.
func ParseIndianAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.Join(strings.Fields(stripMarkers(s)), "")
	if cleaned == "" {
		return decimal.Zero, false
	}

	sign := ""
	if strings.HasPrefix(cleaned, "-") {
		sign, cleaned = "-", cleaned[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(cleaned, ".")
	if !plainDigits.MatchString(intPart) && !indianGrouped.MatchString(intPart) {
		return decimal.Zero, false
	}

	number := sign + strings.ReplaceAll(intPart, ",", "")
	if hasFrac {
		number += "." + fracPart
	}
	return parseNumeric(number)
}

// FirstAmount parses the first amount-shaped run found in free text, e.g. the
// remainder of a line captured after a label.
func FirstAmount(text string) (decimal.Decimal, bool) {
	for _, m := range amountShape.FindAllString(text, -1) {
		if d, ok := ParseAmount(m); ok {
			return d, true
		}
	}
	return decimal.Zero, false
}

// ParseAmountLoose tries, in order, the plain parser, the Indian grouping
// parser and the first amount-shaped run of the string. Statements mix
// grouping conventions, so issuer strategies use this for every money field.
func ParseAmountLoose(s string) (decimal.Decimal, bool) {
	if d, ok := ParseAmount(s); ok {
		return d, true
	}
	if d, ok := ParseIndianAmount(s); ok {
		return d, true
	}
	return FirstAmount(s)
}

// IsCredit reports whether a raw amount carries a trailing "Cr" marker.
func IsCredit(s string) bool {
	return creditSuffix.MatchString(strings.TrimSpace(s))
}

// IsValidAmount reports whether d is strictly positive and below MaxAmount.
func IsValidAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.LessThan(MaxAmount)
}

// IsValidAmountOrZero is IsValidAmount but also accepts zero, for figures
// such as available credit that are legitimately nil on a maxed-out card.
func IsValidAmountOrZero(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThan(MaxAmount)
}

func stripMarkers(s string) string {
	s = strings.TrimSpace(s)
	s = currencyMarkers.ReplaceAllString(s, "")
	s = creditDebitMarkers.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func parseNumeric(s string) (decimal.Decimal, bool) {
	if !numericPattern.MatchString(s) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
