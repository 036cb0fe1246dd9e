package parser

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// UnknownIssuer is reported by DetectIssuer when no strategy matches.
const UnknownIssuer = "Unknown"

// Registry is an ordered, immutable list of strategies. Order is priority:
// when several strategies detect the same text, the one registered first
// wins. A Registry is safe for concurrent use.
type Registry struct {
	strategies []Strategy
}

// NewRegistry returns a registry holding strategies in the given order.
func NewRegistry(strategies ...Strategy) *Registry {
	s := make([]Strategy, len(strategies))
	copy(s, strategies)
	return &Registry{strategies: s}
}

// DefaultRegistry returns the built-in issuers in priority order: HDFC Bank,
// ICICI Bank, SBI Card, Axis Bank, American Express.
func DefaultRegistry(opts ...Option) *Registry {
	return NewRegistry(
		NewHDFC(opts...),
		NewICICI(opts...),
		NewSBI(opts...),
		NewAxis(opts...),
		NewAmex(opts...),
	)
}

// With returns a new registry with strategies appended after the existing
// ones. The receiver is unchanged.
func (r *Registry) With(strategies ...Strategy) *Registry {
	all := make([]Strategy, 0, len(r.strategies)+len(strategies))
	all = append(all, r.strategies...)
	all = append(all, strategies...)
	return &Registry{strategies: all}
}

// Select returns the first strategy that detects text.
func (r *Registry) Select(text string) (Strategy, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	for _, s := range r.strategies {
		if s.Detect(text) {
			return s, true
		}
	}
	return nil, false
}

// DetectIssuer returns the name of the selected strategy, or UnknownIssuer.
func (r *Registry) DetectIssuer(text string) string {
	if s, ok := r.Select(text); ok {
		return s.Name()
	}
	return UnknownIssuer
}

// Issuers returns the registered issuer names in priority order.
func (r *Registry) Issuers() []string {
	names := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name()
	}
	return names
}

// Lookup finds a strategy by name. An exact, case-insensitive match wins;
// otherwise the closest fuzzy match is used, so "hdfc" or "amex" work.
func (r *Registry) Lookup(name string) (Strategy, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	for _, s := range r.strategies {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(name, r.Issuers())
	if len(ranks) == 0 {
		return nil, false
	}
	sort.Stable(ranks)
	return r.strategies[ranks[0].OriginalIndex], true
}
