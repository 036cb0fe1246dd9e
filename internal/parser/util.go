package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/card-statement-parser/internal/pattern"
)

// Common label fragments shared by issuer profiles.
const (
	// datePart captures one date in any of the statement shapes.
	datePart = `(\d{1,2}[-/ ][A-Za-z]{3,9}[-/ ]\d{2,4}|\d{2}[-/]\d{2}[-/]\d{4}|\d{4}-\d{2}-\d{2}|[A-Za-z]{3,9}\s+\d{1,2},\s*\d{4})`
	// amountPart captures one amount after an optional currency marker.
	amountPart = `(?:Rs\.?|₹|INR)?\s*([\d,]+(?:\.\d{1,2})?)`
	sep        = `\s*:?\s*`
)

var (
	fourDigits   = regexp.MustCompile(`^\d{4}$`)
	digitGroups  = regexp.MustCompile(`\d{4}`)
	maskedCard   = regexp.MustCompile(`^[\dXx*•.\s-]+$`)
	variantChars = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+&' -]*$`)
	nameChars    = regexp.MustCompile(`^[A-Za-z][A-Za-z.' ]*$`)
	salutation   = regexp.MustCompile(`(?i)^(?:mr|mrs|ms|miss|dr|shri|smt)\.?\s+`)
)

// lastFour accepts four digits, or the last four-digit group of a masked
// card number such as "XXXX XXXX XXXX 4321".
func lastFour(raw string) string {
	raw = strings.TrimSpace(raw)
	if fourDigits.MatchString(raw) {
		return raw
	}
	if !maskedCard.MatchString(raw) {
		return ""
	}
	groups := digitGroups.FindAllString(raw, -1)
	if len(groups) == 0 {
		return ""
	}
	return groups[len(groups)-1]
}

// cleanVariant trims a captured product name down to something short and
// printable, or rejects it.
func cleanVariant(raw string) string {
	v := pattern.Clean(strings.Trim(raw, " :-\t"))
	if v == "" || len(v) > 40 || !variantChars.MatchString(v) {
		return ""
	}
	return v
}

// cleanName accepts two to five words of letters, dropping a salutation.
func cleanName(raw string) string {
	n := pattern.Clean(salutation.ReplaceAllString(strings.TrimSpace(raw), ""))
	if !nameChars.MatchString(n) || len(n) > 60 {
		return ""
	}
	if words := len(strings.Fields(n)); words < 2 || words > 5 {
		return ""
	}
	return n
}
