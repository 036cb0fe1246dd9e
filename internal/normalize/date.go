package normalize

import (
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// dateLayouts are tried in order and the first successful parse wins, so an
// ambiguous "01-02-2024" always reads as 1 February (day first).
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"02 Jan 2006",
	"02-Jan-2006",
	"02 January 2006",
	"2006-01-02",
	"01/02/2006",
	"2 Jan 2006",
	"2-Jan-2006",
	"Jan 02, 2006",
	"January 02, 2006",
	"02-Jan-06",
	"02/Jan/2006",
	"02/Jan/06",
}

// dateShapes locate a date inside free text before it is handed to ParseDate.
var dateShapes = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{2}-\d{2}-\d{4}\b`),
	regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}-[A-Za-z]{3}-\d{4}\b`),
	regexp.MustCompile(`\b\d{2}-[A-Za-z]{3}-\d{2}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b[A-Za-z]{3,9}\s+\d{1,2},\s*\d{4}\b`),
	regexp.MustCompile(`\b\d{2}/[A-Za-z]{3}/\d{2,4}\b`),
}

// ParseDate reads s using the known statement date layouts.
func ParseDate(s string) (civil.Date, bool) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return civil.Date{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return civil.DateOf(t), true
		}
	}
	return civil.Date{}, false
}

// ExtractDate finds the first date-shaped substring of text and parses it.
// Shapes are tried in a fixed order; within a shape only the first match is
// considered.
func ExtractDate(text string) (civil.Date, bool) {
	for _, shape := range dateShapes {
		m := shape.FindString(text)
		if m == "" {
			continue
		}
		if d, ok := ParseDate(m); ok {
			return d, true
		}
	}
	return civil.Date{}, false
}

// ParseDateLoose parses s as a whole and, failing that, the first date found
// inside it.
func ParseDateLoose(s string) (civil.Date, bool) {
	if d, ok := ParseDate(s); ok {
		return d, true
	}
	return ExtractDate(s)
}

// IsValidDate reports whether d falls inside the window a live statement can
// carry: after ten years before now and before one year after now.
func IsValidDate(d civil.Date, now time.Time) bool {
	if !d.IsValid() {
		return false
	}
	oldest := civil.DateOf(now.AddDate(-10, 0, 0))
	latest := civil.DateOf(now.AddDate(1, 0, 0))
	return d.After(oldest) && d.Before(latest)
}
