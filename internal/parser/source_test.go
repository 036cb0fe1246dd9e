package parser

import (
	"errors"
	"time"

	"github.com/insightdelivered/card-statement-parser/internal/extractor"
)

// textSource is an in-memory TextSource.
type textSource struct {
	linear  string
	layout  string
	regions map[string]string
	lines   []extractor.TextLine
	err     error // returned by every view except LinearText
}

func (s textSource) LinearText() (string, error) { return s.linear, nil }

func (s textSource) LayoutText() (string, error) { return s.layout, s.err }

func (s textSource) Regions() (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.regions, nil
}

func (s textSource) Lines() ([]extractor.TextLine, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.lines, nil
}

var errViewBroken = errors.New("view broken")

func clockAt(year int, month time.Month, day int) Option {
	return WithClock(func() time.Time {
		return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
	})
}
