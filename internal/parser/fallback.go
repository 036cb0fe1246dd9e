package parser

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/insightdelivered/card-statement-parser/internal/normalize"
	"github.com/insightdelivered/card-statement-parser/internal/pattern"
	"github.com/shopspring/decimal"
)

// LargestAmount returns the largest valid currency-prefixed amount in text
// and its raw form. It assumes the balance owed is the biggest figure on a
// statement, which is often but not always true; strategies use it only
// after every labelled lookup has failed.
func LargestAmount(text string) (decimal.Decimal, string, bool) {
	var (
		best    decimal.Decimal
		bestRaw string
		found   bool
	)
	for _, raw := range pattern.AllAmounts(text) {
		d, ok := normalize.ParseAmountLoose(raw)
		if !ok || !normalize.IsValidAmount(d) {
			continue
		}
		if !found || d.GreaterThan(best) {
			best, bestRaw, found = d, raw, true
		}
	}
	return best, bestRaw, found
}

// FirstDate returns the first date in text that parses and falls inside the
// recency window. Statement dates usually come before due dates, so this is
// the statement date fallback.
func FirstDate(text string, now time.Time) (civil.Date, string, bool) {
	for _, raw := range pattern.AllDates(text) {
		d, ok := normalize.ParseDate(raw)
		if ok && normalize.IsValidDate(d, now) {
			return d, raw, true
		}
	}
	return civil.Date{}, "", false
}
