// Package parser holds the issuer strategies that turn statement text into a
// StatementRecord, and the Registry that picks one for a document.
package parser

import (
	"github.com/insightdelivered/card-statement-parser/internal/extractor"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/rs/zerolog/log"
)

// TextSource supplies the views of a document that strategies read from.
// *extractor.Document satisfies it.
type TextSource interface {
	LinearText() (string, error)
	LayoutText() (string, error)
	Regions() (map[string]string, error)
	Lines() ([]extractor.TextLine, error)
}

// Strategy detects and extracts one issuer's statement format.
type Strategy interface {
	// Name returns the human-readable issuer name, e.g. "HDFC Bank".
	Name() string
	// Detect reports whether text looks like this issuer's statement.
	Detect(text string) bool
	// Extract reads every field it can find. Missing fields stay empty; the
	// record is returned whether or not it is valid.
	Extract(src TextSource) *models.StatementRecord
}

// View names one text view of a document.
type View string

const (
	ViewLinear       View = "linear"
	ViewLayout       View = "layout"
	ViewHeader       View = View(extractor.RegionHeader)
	ViewAccount      View = View(extractor.RegionAccount)
	ViewTransactions View = View(extractor.RegionTransactions)
)

// views fetches each view of a TextSource at most once. A view that fails
// to load is logged and read as empty.
type views struct {
	src     TextSource
	texts   map[View]string
	regions map[string]string
	lines   []extractor.TextLine
	loaded  map[string]bool
}

func newViews(src TextSource) *views {
	return &views{
		src:    src,
		texts:  make(map[View]string),
		loaded: make(map[string]bool),
	}
}

func (v *views) text(view View) string {
	if t, ok := v.texts[view]; ok {
		return t
	}

	var (
		t   string
		err error
	)
	switch view {
	case ViewLinear:
		t, err = v.src.LinearText()
	case ViewLayout:
		t, err = v.src.LayoutText()
	default:
		t = v.region(string(view))
	}
	if err != nil {
		log.Warn().Err(err).Str("view", string(view)).Msg("text view unavailable")
		t = ""
	}
	v.texts[view] = t
	return t
}

func (v *views) region(name string) string {
	if !v.loaded["regions"] {
		v.loaded["regions"] = true
		regions, err := v.src.Regions()
		if err != nil {
			log.Warn().Err(err).Msg("page regions unavailable")
		}
		v.regions = regions
	}
	return v.regions[name]
}

func (v *views) positioned() []extractor.TextLine {
	if !v.loaded["lines"] {
		v.loaded["lines"] = true
		lines, err := v.src.Lines()
		if err != nil {
			log.Warn().Err(err).Msg("positioned lines unavailable")
		}
		v.lines = lines
	}
	return v.lines
}
