// Package service ties a document, the issuer registry and a strategy
// together into one parse call. It owns the document lifecycle and the
// only cancellation point of a parse.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/insightdelivered/card-statement-parser/internal/extractor"
	"github.com/insightdelivered/card-statement-parser/internal/logger"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/insightdelivered/card-statement-parser/internal/parser"
)

var (
	// ErrInvalidDocument means the input could not be read as a statement
	// document at all.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrUnknownIssuer means a forced issuer name matched no strategy.
	ErrUnknownIssuer = errors.New("unknown issuer")
)

// Document is a readable statement. *extractor.Document satisfies it.
type Document interface {
	parser.TextSource
	Valid() bool
	Close() error
}

// Service parses documents with a fixed registry. It is safe for
// concurrent use.
type Service struct {
	registry *parser.Registry
}

// New returns a service dispatching over registry. A nil registry means
// parser.DefaultRegistry().
func New(registry *parser.Registry) *Service {
	if registry == nil {
		registry = parser.DefaultRegistry()
	}
	return &Service{registry: registry}
}

// Registry returns the registry the service dispatches over.
func (s *Service) Registry() *parser.Registry {
	return s.registry
}

// DetectIssuer returns the issuer name for text, or parser.UnknownIssuer.
func (s *Service) DetectIssuer(text string) string {
	return s.registry.DetectIssuer(text)
}

// Parse detects the issuer of doc and extracts its record. It returns
// (nil, nil) when no issuer matches, and the record whether or not it is
// valid otherwise. The caller keeps ownership of doc.
func (s *Service) Parse(ctx context.Context, doc Document) (*models.StatementRecord, error) {
	return s.parse(ctx, doc, nil)
}

// ParseAs extracts doc with the strategy named issuer, skipping detection.
// An empty name behaves like Parse.
func (s *Service) ParseAs(ctx context.Context, doc Document, issuer string) (*models.StatementRecord, error) {
	if issuer == "" {
		return s.Parse(ctx, doc)
	}
	strategy, ok := s.registry.Lookup(issuer)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIssuer, issuer)
	}
	return s.parse(ctx, doc, strategy)
}

// ParseFile opens path, parses it and closes it.
func (s *Service) ParseFile(ctx context.Context, path string) (*models.StatementRecord, error) {
	return s.ParseFileAs(ctx, path, "")
}

// ParseFileAs is ParseFile with an optional forced issuer.
func (s *Service) ParseFileAs(ctx context.Context, path, issuer string) (*models.StatementRecord, error) {
	doc, err := extractor.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	defer doc.Close()
	return s.ParseAs(ctx, doc, issuer)
}

// ParseBytes parses an in-memory document.
func (s *Service) ParseBytes(ctx context.Context, data []byte) (*models.StatementRecord, error) {
	return s.ParseBytesAs(ctx, data, "")
}

// ParseBytesAs is ParseBytes with an optional forced issuer.
func (s *Service) ParseBytesAs(ctx context.Context, data []byte, issuer string) (*models.StatementRecord, error) {
	doc, err := extractor.OpenBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	defer doc.Close()
	return s.ParseAs(ctx, doc, issuer)
}

func (s *Service) parse(ctx context.Context, doc Document, strategy parser.Strategy) (*models.StatementRecord, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil || !doc.Valid() {
		return nil, ErrInvalidDocument
	}

	if strategy == nil {
		text, err := doc.LinearText()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var ok bool
		strategy, ok = s.registry.Select(text)
		if !ok {
			log.Info().Int("text_len", len(text)).Msg("no issuer detected")
			return nil, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug().Str("issuer", strategy.Name()).Msg("extracting statement")
	record := strategy.Extract(doc)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Info().
		Str("issuer", record.IssuerName).
		Bool("valid", record.IsValid()).
		Int("transactions", len(record.Transactions)).
		Msg("statement parsed")
	return record, nil
}

// previewLen bounds the text previews returned by Inspect.
const previewLen = 2000

// Inspection is a debug view of what the extractor sees in a document.
type Inspection struct {
	Pages         int      `json:"pages"`
	Issuer        string   `json:"detectedIssuer"`
	LinearLength  int      `json:"linearLength"`
	LinearPreview string   `json:"linearPreview"`
	LayoutPreview string   `json:"layoutPreview"`
	Regions       []string `json:"regions"`
	Lines         int      `json:"lines"`
}

// InspectBytes opens data and reports its text views without extracting.
func (s *Service) InspectBytes(ctx context.Context, data []byte) (*Inspection, error) {
	doc, err := extractor.OpenBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	defer doc.Close()

	in, err := s.Inspect(ctx, doc)
	if err != nil {
		return nil, err
	}
	in.Pages = doc.NumPages()
	return in, nil
}

// Inspect reports the text views of doc. View failures leave that part of
// the inspection empty.
func (s *Service) Inspect(ctx context.Context, doc Document) (*Inspection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil || !doc.Valid() {
		return nil, ErrInvalidDocument
	}
	log := logger.FromContext(ctx)

	in := &Inspection{Regions: []string{}}
	linear, err := doc.LinearText()
	if err != nil {
		log.Warn().Err(err).Msg("linear text unavailable")
	}
	in.LinearLength = len(linear)
	in.LinearPreview = truncate(linear, previewLen)
	in.Issuer = s.registry.DetectIssuer(linear)

	if layout, err := doc.LayoutText(); err == nil {
		in.LayoutPreview = truncate(layout, previewLen)
	} else {
		log.Warn().Err(err).Msg("layout text unavailable")
	}

	if regions, err := doc.Regions(); err == nil {
		for name, text := range regions {
			if text != "" {
				in.Regions = append(in.Regions, name)
			}
		}
		sort.Strings(in.Regions)
	}
	if lines, err := doc.Lines(); err == nil {
		in.Lines = len(lines)
	}
	return in, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
