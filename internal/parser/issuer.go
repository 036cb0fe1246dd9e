package parser

import (
	"regexp"
	"time"

	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/rs/zerolog/log"
)

// Profile is the declarative description of one issuer's statement format.
// Every field is a fallback chain; see Field.
type Profile struct {
	Name      string
	Detection Detection

	Card             Field
	Variant          Field
	Cardholder       Field
	StatementDate    Field
	PaymentDueDate   Field
	TotalAmountDue   Field
	MinimumAmountDue Field
	CreditLimit      Field
	AvailableCredit  Field

	// VariantNoise is removed from a captured variant, e.g. "card|credit".
	VariantNoise string
	// KnownVariants are scanned for when no labelled variant is found.
	KnownVariants []string

	// TableTransactions reads transactions from positioned rows before
	// falling back to TransactionPattern over the linear text.
	TableTransactions  bool
	TransactionPattern string
}

// Option configures the strategies built by this package.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock sets the clock used for the date recency window.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// issuer is the Strategy for a Profile.
type issuer struct {
	p        Profile
	now      func() time.Time
	detector *detector
	variants *phraseMatcher
	noise    *regexp.Regexp
}

// NewStrategy builds a Strategy from a profile.
func NewStrategy(p Profile, opts ...Option) Strategy {
	o := buildOptions(opts)
	s := &issuer{
		p:        p,
		now:      o.now,
		detector: newDetector(p.Detection),
		variants: newPhraseMatcher(p.KnownVariants),
	}
	if p.VariantNoise != "" {
		s.noise = regexp.MustCompile(`(?i)\b(?:` + p.VariantNoise + `)\b`)
	}
	if s.p.TransactionPattern == "" {
		s.p.TransactionPattern = DirectTransactionPattern
	}
	return s
}

func (s *issuer) Name() string { return s.p.Name }

func (s *issuer) Detect(text string) bool { return s.detector.detect(text) }

func (s *issuer) Extract(src TextSource) *models.StatementRecord {
	e := newExtraction(src, s.p.Name, s.now())
	r := e.record

	r.CardLastFour = e.text(s.p.Card, lastFour)
	r.CardVariant = s.variant(e)
	r.CardholderName = e.text(s.p.Cardholder, cleanName)
	r.StatementDate = e.date(s.p.StatementDate)
	r.PaymentDueDate = e.date(s.p.PaymentDueDate)
	r.TotalAmountDue = e.amount(s.p.TotalAmountDue)
	r.MinimumAmountDue = e.amount(s.p.MinimumAmountDue)
	r.CreditLimit = e.amount(s.p.CreditLimit)
	r.AvailableCredit = e.amountOrZero(s.p.AvailableCredit)

	s.transactions(e)

	if missing := r.Missing(); len(missing) > 0 {
		log.Warn().Str("issuer", s.p.Name).Strs("missing", missing).Msg("required fields not found")
	}
	log.Debug().
		Str("issuer", s.p.Name).
		Int("transactions", len(r.Transactions)).
		Bool("valid", r.IsValid()).
		Msg("statement extracted")
	return r
}

func (s *issuer) variant(e *extraction) string {
	if v := e.text(s.p.Variant, s.cleanVariant); v != "" {
		return v
	}
	text := e.views.text(ViewLinear)
	if v, ok := s.variants.longest(text); ok {
		e.record.AddTrace(s.p.Variant.Name, TierKnownVariant, string(ViewLinear), v)
		return v
	}
	return ""
}

func (s *issuer) cleanVariant(raw string) string {
	v := raw
	if s.noise != nil {
		v = s.noise.ReplaceAllString(v, " ")
	}
	return cleanVariant(v)
}

func (s *issuer) transactions(e *extraction) {
	if s.p.TableTransactions {
		if n := tableTransactions(e.record, e.views.positioned()); n > 0 {
			return
		}
	}
	directTransactions(e.record, e.views.text(ViewLinear), s.p.TransactionPattern)
}
