package extractor

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	// LineTolerance is how far (in points) a glyph may sit from its row's
	// anchor and still belong to the same row.
	LineTolerance = 5.0
	// ColumnGap is the horizontal gap (in points) treated as a column break.
	ColumnGap = 20.0
	// wordGapRatio of the font size separates words within a cell.
	wordGapRatio = 0.2

	defaultPageHeight = 792.0
)

// Region names returned by Document.Regions.
const (
	RegionHeader       = "header"
	RegionAccount      = "account"
	RegionTransactions = "transactions"
)

// regionBands are fractions of the first page height measured from the top.
// The account and transactions bands overlap on purpose so that a summary
// box sitting between them is visible from both.
var regionBands = []struct {
	name   string
	lo, hi float64
}{
	{RegionHeader, 0, 0.19},
	{RegionAccount, 0.19, 0.57},
	{RegionTransactions, 0.38, 1.0},
}

// TextLine is one run of text with its position. Y is measured from the top
// of the first page and keeps growing across pages.
type TextLine struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"fontSize"`
	Page     int     `json:"page"`
}

// glyphRow is a set of glyphs sharing a baseline, sorted left to right.
type glyphRow struct {
	y      float64 // top-origin
	glyphs []pdf.Text
}

// buildRows groups glyphs into rows. PDF y grows upwards, so it is flipped
// against the page height first.
func buildRows(texts []pdf.Text, height float64) []glyphRow {
	glyphs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		glyphs = append(glyphs, t)
	}
	if len(glyphs) == 0 {
		return nil
	}

	sort.SliceStable(glyphs, func(i, j int) bool {
		yi, yj := height-glyphs[i].Y, height-glyphs[j].Y
		if yi != yj {
			return yi < yj
		}
		return glyphs[i].X < glyphs[j].X
	})

	var rows []glyphRow
	for _, g := range glyphs {
		y := height - g.Y
		if n := len(rows); n > 0 && y-rows[n-1].y <= LineTolerance {
			rows[n-1].glyphs = append(rows[n-1].glyphs, g)
			continue
		}
		rows = append(rows, glyphRow{y: y, glyphs: []pdf.Text{g}})
	}

	for i := range rows {
		g := rows[i].glyphs
		sort.SliceStable(g, func(a, b int) bool { return g[a].X < g[b].X })
	}
	return rows
}

// gapBefore returns the horizontal space between glyph prev and glyph next.
func gapBefore(prev, next pdf.Text) float64 {
	w := prev.W
	if w <= 0 {
		// some fonts carry no width table; estimate half an em per rune
		w = 0.5 * prev.FontSize * float64(utf8.RuneCountInString(prev.S))
	}
	return next.X - (prev.X + w)
}

func isWordGap(prev pdf.Text, gap float64) bool {
	size := prev.FontSize
	if size <= 0 {
		size = 10
	}
	return gap > wordGapRatio*size
}

// renderRow joins a row's glyphs, using sep at column gaps and a single
// space at word gaps.
func renderRow(row glyphRow, sep string) string {
	var b strings.Builder
	for i, g := range row.glyphs {
		if i > 0 {
			prev := row.glyphs[i-1]
			gap := gapBefore(prev, g)
			switch {
			case gap > ColumnGap:
				b.WriteString(sep)
			case isWordGap(prev, gap):
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return strings.TrimSpace(b.String())
}

// splitCells breaks a row at column gaps into positioned lines.
func splitCells(row glyphRow, offset float64, page int) []TextLine {
	var lines []TextLine
	var b strings.Builder
	var start pdf.Text

	flush := func() {
		if text := strings.TrimSpace(b.String()); text != "" {
			lines = append(lines, TextLine{
				Text:     text,
				X:        start.X,
				Y:        offset + row.y,
				FontSize: start.FontSize,
				Page:     page,
			})
		}
		b.Reset()
	}

	for i, g := range row.glyphs {
		if i == 0 {
			start = g
		} else {
			prev := row.glyphs[i-1]
			gap := gapBefore(prev, g)
			switch {
			case gap > ColumnGap:
				flush()
				start = g
			case isWordGap(prev, gap):
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	flush()
	return lines
}

// renderRows renders every row and joins them with newlines.
func renderRows(rows []glyphRow, sep string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		if line := renderRow(row, sep); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// regionTexts slices the rows of a page into the named bands.
func regionTexts(rows []glyphRow, height float64) map[string]string {
	if height <= 0 {
		height = defaultPageHeight
	}
	regions := make(map[string]string, len(regionBands))
	for _, band := range regionBands {
		var picked []glyphRow
		for _, row := range rows {
			frac := row.y / height
			if frac >= band.lo && (frac < band.hi || band.hi >= 1 && frac <= band.hi) {
				picked = append(picked, row)
			}
		}
		regions[band.name] = renderRows(picked, " ")
	}
	return regions
}
