package parser

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Detection describes how an issuer is recognised. Any Strong marker is
// enough on its own; a Brand mention also needs one Context keyword so that
// an incidental brand name (a payment to that bank, say) does not match.
type Detection struct {
	Strong  []string
	Brand   []string
	Context []string
}

const (
	markStrong = 1 << iota
	markBrand
	markContext
)

// detector matches all markers of a Detection in one pass.
type detector struct {
	matcher *ahocorasick.Matcher
	marks   []int // per dictionary word
}

func newDetector(d Detection) *detector {
	index := make(map[string]int)
	var words []string
	var marks []int
	add := func(list []string, mark int) {
		for _, w := range list {
			w = strings.ToUpper(w)
			if i, ok := index[w]; ok {
				marks[i] |= mark
				continue
			}
			index[w] = len(words)
			words = append(words, w)
			marks = append(marks, mark)
		}
	}
	add(d.Strong, markStrong)
	add(d.Brand, markBrand)
	add(d.Context, markContext)

	return &detector{matcher: ahocorasick.NewStringMatcher(words), marks: marks}
}

// detect is case-insensitive and safe for concurrent use.
func (d *detector) detect(text string) bool {
	if text == "" {
		return false
	}
	found := 0
	for _, i := range d.matcher.MatchThreadSafe([]byte(strings.ToUpper(text))) {
		found |= d.marks[i]
	}
	return found&markStrong != 0 || (found&markBrand != 0 && found&markContext != 0)
}

// phraseMatcher finds which of a fixed list of phrases occur in a text,
// ignoring case.
type phraseMatcher struct {
	phrases []string
	matcher *ahocorasick.Matcher
}

func newPhraseMatcher(phrases []string) *phraseMatcher {
	upper := make([]string, len(phrases))
	for i, p := range phrases {
		upper[i] = strings.ToUpper(p)
	}
	return &phraseMatcher{phrases: phrases, matcher: ahocorasick.NewStringMatcher(upper)}
}

// longest returns the longest phrase present in text, so "Regalia Gold" wins
// over "Regalia".
func (m *phraseMatcher) longest(text string) (string, bool) {
	if len(m.phrases) == 0 || text == "" {
		return "", false
	}
	best := ""
	for _, i := range m.matcher.MatchThreadSafe([]byte(strings.ToUpper(text))) {
		if len(m.phrases[i]) > len(best) {
			best = m.phrases[i]
		}
	}
	return best, best != ""
}
