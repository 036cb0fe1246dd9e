// Package pattern holds the regex and keyword primitives every issuer
// strategy is built from. All lookups are case-insensitive and multiline and
// none of them fail loudly: a bad pattern is logged and treated as no match.
package pattern

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

var cache sync.Map // pattern string -> compiled

type compiled struct {
	re  *regexp.Regexp
	err error
}

// compile returns the case-insensitive, multiline form of expr, caching both
// successes and failures.
func compile(expr string) (*regexp.Regexp, error) {
	if c, ok := cache.Load(expr); ok {
		cc := c.(compiled)
		return cc.re, cc.err
	}
	re, err := regexp.Compile("(?im)" + expr)
	if err != nil {
		log.Error().Err(err).Str("pattern", expr).Msg("invalid extraction pattern")
	}
	cache.Store(expr, compiled{re: re, err: err})
	return re, err
}

// ExtractFirst returns the trimmed text of capture group `group` from the
// first match of expr in text. Group 0 is the whole match.
func ExtractFirst(text, expr string, group int) (string, bool) {
	re, err := compile(expr)
	if err != nil {
		return "", false
	}
	if group < 0 || group > re.NumSubexp() {
		log.Error().Str("pattern", expr).Int("group", group).Msg("capture group out of range")
		return "", false
	}

	m := re.FindStringSubmatchIndex(text)
	if m == nil || m[2*group] < 0 {
		return "", false
	}
	value := strings.TrimSpace(text[m[2*group]:m[2*group+1]])
	log.Debug().Str("pattern", expr).Str("value", value).Msg("pattern matched")
	return value, true
}

// ExtractAll returns the trimmed capture group of every match, in document
// order. Matches where the group did not participate are skipped.
func ExtractAll(text, expr string, group int) []string {
	re, err := compile(expr)
	if err != nil {
		return nil
	}
	if group < 0 || group > re.NumSubexp() {
		log.Error().Str("pattern", expr).Int("group", group).Msg("capture group out of range")
		return nil
	}

	var results []string
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if m[2*group] < 0 {
			continue
		}
		results = append(results, strings.TrimSpace(text[m[2*group]:m[2*group+1]]))
	}
	return results
}

// ExtractGroups returns the trimmed capture groups of up to limit matches
// (limit < 0 means all). Index 0 of each result is the whole match; groups
// that did not participate are empty.
func ExtractGroups(text, expr string, limit int) [][]string {
	re, err := compile(expr)
	if err != nil {
		return nil
	}

	var results [][]string
	for _, m := range re.FindAllStringSubmatch(text, limit) {
		groups := make([]string, len(m))
		for i, g := range m {
			groups[i] = strings.TrimSpace(g)
		}
		results = append(results, groups)
	}
	return results
}

// Matches reports whether expr matches anywhere in text.
func Matches(text, expr string) bool {
	re, err := compile(expr)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// Between returns the text between the first start marker and the next end
// marker. Markers are literal.
func Between(text, start, end string) (string, bool) {
	return ExtractFirst(text, regexp.QuoteMeta(start)+`(.*?)`+regexp.QuoteMeta(end), 1)
}

// Clean collapses runs of whitespace into single spaces.
func Clean(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// FindValueAfterKeyword returns the remainder of the line following the first
// keyword found in text, skipping an optional colon. Every keyword is first
// tried as an exact phrase; only when none matches is the list retried with
// the keyword's internal whitespace made flexible, which catches labels that
// the extractor split across lines or padded with extra spaces.
func FindValueAfterKeyword(text string, keywords ...string) (string, bool) {
	for _, kw := range keywords {
		if v, ok := ExtractFirst(text, regexp.QuoteMeta(kw)+`\s*:?\s*([^\n]+)`, 1); ok {
			return v, true
		}
	}
	for _, kw := range keywords {
		if v, ok := ExtractFirst(text, flexible(kw)+`\s*:?\s*([^\n]+)`, 1); ok {
			return v, true
		}
	}
	return "", false
}

func flexible(keyword string) string {
	words := strings.Fields(keyword)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `\s*`)
}

var (
	amountScan = regexp.MustCompile(`(?i)(?:₹|rs\.?|inr)\s*(\d[\d,]*(?:\.\d{1,2})?)`)

	dateScans = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{2}[-/]\d{2}[-/]\d{4}\b`),
		regexp.MustCompile(`\b\d{2}[-/][A-Za-z]{3}[-/]\d{4}\b`),
		regexp.MustCompile(`\b\d{2}\s+[A-Za-z]{3}\s+\d{4}\b`),
	}
)

// AllAmounts returns every currency-prefixed amount in text, in document
// order, without the currency marker.
func AllAmounts(text string) []string {
	var amounts []string
	for _, m := range amountScan.FindAllStringSubmatch(text, -1) {
		amounts = append(amounts, m[1])
	}
	return amounts
}

// AllDates returns every date-shaped substring of text in document order.
func AllDates(text string) []string {
	type hit struct {
		pos int
		s   string
	}
	var hits []hit
	for _, re := range dateScans {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			hits = append(hits, hit{pos: loc[0], s: text[loc[0]:loc[1]]})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	dates := make([]string, 0, len(hits))
	for _, h := range hits {
		dates = append(dates, h.s)
	}
	return dates
}
