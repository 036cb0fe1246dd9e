package parser

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/insightdelivered/card-statement-parser/internal/normalize"
	"github.com/insightdelivered/card-statement-parser/internal/pattern"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Tier names recorded in a FieldTrace.
const (
	TierRule          = "rule"
	TierKeyword       = "keyword"
	TierLargestAmount = "largest-amount"
	TierFirstDate     = "first-date"
	TierKnownVariant  = "known-variant"
)

// Rule is one field-specific regex and the capture group holding the value.
type Rule struct {
	Pattern string
	Group   int
}

// Fallback selects the last-resort heuristic for a field.
type Fallback int

const (
	NoFallback Fallback = iota
	// FallbackLargestAmount takes the largest currency amount in the text.
	FallbackLargestAmount
	// FallbackFirstDate takes the first plausible date in the text.
	FallbackFirstDate
)

// Field declares the fallback chain for one record field. The chain runs
// every rule over each of RuleViews in turn, then the keyword search over
// each of KeywordViews, then the Fallback heuristic over FallbackView. The
// first candidate that normalizes and validates wins.
type Field struct {
	Name         string
	Rules        []Rule
	RuleViews    []View // default: linear, layout
	Keywords     []string
	KeywordViews []View // default: linear, layout
	Fallback     Fallback
	FallbackView View // default: linear
}

func (f Field) ruleViews() []View {
	if len(f.RuleViews) == 0 {
		return []View{ViewLinear, ViewLayout}
	}
	return f.RuleViews
}

func (f Field) keywordViews() []View {
	if len(f.KeywordViews) == 0 {
		return []View{ViewLinear, ViewLayout}
	}
	return f.KeywordViews
}

func (f Field) fallbackView() View {
	if f.FallbackView == "" {
		return ViewLinear
	}
	return f.FallbackView
}

// resolve runs the rule and keyword tiers of f, handing every raw candidate
// to accept. It stops at the first accepted value.
func resolve[T any](v *views, f Field, accept func(raw string) (T, bool)) (T, models.FieldTrace, bool) {
	for _, view := range f.ruleViews() {
		text := v.text(view)
		if text == "" {
			continue
		}
		for _, r := range f.Rules {
			raw, ok := pattern.ExtractFirst(text, r.Pattern, r.Group)
			if !ok {
				continue
			}
			if val, ok := accept(raw); ok {
				return val, models.FieldTrace{Field: f.Name, Tier: TierRule, View: string(view), Raw: raw}, true
			}
			log.Debug().Str("field", f.Name).Str("raw", raw).Msg("rule candidate rejected")
		}
	}

	if len(f.Keywords) > 0 {
		for _, view := range f.keywordViews() {
			text := v.text(view)
			if text == "" {
				continue
			}
			raw, ok := pattern.FindValueAfterKeyword(text, f.Keywords...)
			if !ok {
				continue
			}
			if val, ok := accept(raw); ok {
				return val, models.FieldTrace{Field: f.Name, Tier: TierKeyword, View: string(view), Raw: raw}, true
			}
			log.Debug().Str("field", f.Name).Str("raw", raw).Msg("keyword candidate rejected")
		}
	}

	var zero T
	return zero, models.FieldTrace{}, false
}

// extraction carries the state of one Extract call.
type extraction struct {
	views  *views
	record *models.StatementRecord
	now    time.Time
}

func newExtraction(src TextSource, issuer string, now time.Time) *extraction {
	return &extraction{
		views:  newViews(src),
		record: models.NewStatementRecord(issuer),
		now:    now,
	}
}

func (e *extraction) trace(t models.FieldTrace) {
	e.record.Trace = append(e.record.Trace, t)
}

// date resolves a date field. Candidates must fall inside the recency window.
func (e *extraction) date(f Field) *civil.Date {
	d, t, ok := resolve(e.views, f, func(raw string) (civil.Date, bool) {
		d, ok := normalize.ParseDateLoose(raw)
		return d, ok && normalize.IsValidDate(d, e.now)
	})
	if !ok && f.Fallback == FallbackFirstDate {
		var raw string
		if d, raw, ok = FirstDate(e.views.text(f.fallbackView()), e.now); ok {
			t = models.FieldTrace{Field: f.Name, Tier: TierFirstDate, View: string(f.fallbackView()), Raw: raw}
		}
	}
	if !ok {
		return nil
	}
	e.trace(t)
	return &d
}

func (e *extraction) amount(f Field) *decimal.Decimal {
	return e.money(f, normalize.IsValidAmount)
}

// amountOrZero accepts zero, for balances such as available credit.
func (e *extraction) amountOrZero(f Field) *decimal.Decimal {
	return e.money(f, normalize.IsValidAmountOrZero)
}

func (e *extraction) money(f Field, valid func(decimal.Decimal) bool) *decimal.Decimal {
	d, t, ok := resolve(e.views, f, func(raw string) (decimal.Decimal, bool) {
		d, ok := normalize.ParseAmountLoose(raw)
		return d, ok && valid(d)
	})
	if !ok && f.Fallback == FallbackLargestAmount {
		var raw string
		if d, raw, ok = LargestAmount(e.views.text(f.fallbackView())); ok {
			t = models.FieldTrace{Field: f.Name, Tier: TierLargestAmount, View: string(f.fallbackView()), Raw: raw}
		}
	}
	if !ok {
		return nil
	}
	e.trace(t)
	return &d
}

// text resolves a free-text field through clean, which returns "" to reject.
func (e *extraction) text(f Field, clean func(string) string) string {
	s, t, ok := resolve(e.views, f, func(raw string) (string, bool) {
		s := clean(raw)
		return s, s != ""
	})
	if !ok {
		return ""
	}
	e.trace(t)
	return s
}
