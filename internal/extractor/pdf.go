// Package extractor turns a PDF statement into the text views the issuer
// strategies read: linear text, layout text with column breaks, fixed page
// regions and positioned lines.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// ErrUnreadable is returned when the PDF cannot be decoded at all.
var ErrUnreadable = errors.New("unreadable PDF")

// Document is an opened PDF. Views are computed on first use and cached, so a
// Document must not be shared between requests.
type Document struct {
	reader *pdf.Reader
	closer io.Closer

	pagesOnce sync.Once
	pages     []pageGlyphs
	pagesErr  error

	linearOnce sync.Once
	linear     string
	linearErr  error
}

type pageGlyphs struct {
	rows   []glyphRow
	height float64
}

// Open opens the PDF at path. The caller must Close the document.
func Open(path string) (doc *Document, err error) {
	var f io.Closer
	defer func() {
		if r := recover(); r != nil {
			if f != nil {
				f.Close()
			}
			doc, err = nil, fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	file, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	f = file
	return &Document{reader: r, closer: file}, nil
}

// NewDocument reads a PDF of the given size from ra.
func NewDocument(ra io.ReaderAt, size int64) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w: %v", ErrUnreadable, r)
		}
	}()

	r, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return &Document{reader: r}, nil
}

// OpenBytes reads a PDF held in memory, e.g. an uploaded file.
func OpenBytes(data []byte) (*Document, error) {
	return NewDocument(bytes.NewReader(data), int64(len(data)))
}

// Close releases the underlying file, if any.
func (d *Document) Close() error {
	if d.closer == nil {
		return nil
	}
	err := d.closer.Close()
	d.closer = nil
	return err
}

// NumPages returns the page count, or 0 when the page tree is broken.
func (d *Document) NumPages() (n int) {
	if d == nil || d.reader == nil {
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			n = 0
		}
	}()
	return d.reader.NumPage()
}

// Valid reports whether the document parsed and has at least one page.
func (d *Document) Valid() bool {
	return d.NumPages() > 0
}

// LinearText returns the document text in reading order, one row per line.
// Like the layout view it is built from glyph rows; when that comes out
// unreadable the library's own plain-text paths are tried.
func (d *Document) LinearText() (string, error) {
	d.linearOnce.Do(func() {
		d.linear, d.linearErr = d.extractLinear()
	})
	return d.linear, d.linearErr
}

// LayoutText returns the document text with a tab wherever two glyphs on a
// row are further apart than ColumnGap.
func (d *Document) LayoutText() (string, error) {
	pages, err := d.glyphPages()
	if err != nil {
		return "", err
	}
	texts := make([]string, 0, len(pages))
	for _, p := range pages {
		texts = append(texts, renderRows(p.rows, "\t"))
	}
	return strings.Join(texts, "\n"), nil
}

// Regions returns the header, account and transactions bands of the first
// page.
func (d *Document) Regions() (map[string]string, error) {
	pages, err := d.glyphPages()
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return map[string]string{RegionHeader: "", RegionAccount: "", RegionTransactions: ""}, nil
	}
	return regionTexts(pages[0].rows, pages[0].height), nil
}

// Lines returns positioned text runs for every page in reading order. Each
// table cell becomes its own line.
func (d *Document) Lines() ([]TextLine, error) {
	pages, err := d.glyphPages()
	if err != nil {
		return nil, err
	}
	var lines []TextLine
	offset := 0.0
	for i, p := range pages {
		for _, row := range p.rows {
			lines = append(lines, splitCells(row, offset, i+1)...)
		}
		offset += p.height
	}
	return lines, nil
}

func (d *Document) glyphPages() ([]pageGlyphs, error) {
	d.pagesOnce.Do(func() {
		d.pages, d.pagesErr = d.loadPages()
	})
	return d.pages, d.pagesErr
}

func (d *Document) loadPages() ([]pageGlyphs, error) {
	n := d.NumPages()
	if n == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrUnreadable)
	}
	pages := make([]pageGlyphs, 0, n)
	for i := 1; i <= n; i++ {
		texts, height, err := d.pageContent(i)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Msg("skipping undecodable page")
			continue
		}
		pages = append(pages, pageGlyphs{rows: buildRows(texts, height), height: height})
	}
	return pages, nil
}

// pageContent decodes one page. The PDF library panics on malformed content
// streams, so each page is isolated.
func (d *Document) pageContent(i int) (texts []pdf.Text, height float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed on page %d: %v", i, r)
		}
	}()

	page := d.reader.Page(i)
	if page.V.IsNull() {
		return nil, 0, fmt.Errorf("page %d missing", i)
	}
	return page.Content().Text, pageHeight(page), nil
}

// pageHeight reads the MediaBox, which a page may inherit from any ancestor
// in the page tree.
func pageHeight(page pdf.Page) float64 {
	var box pdf.Value
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		if b := v.Key("MediaBox"); !b.IsNull() {
			box = b
			break
		}
	}
	if box.Kind() != pdf.Array || box.Len() != 4 {
		return defaultPageHeight
	}
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if h <= 0 {
		return defaultPageHeight
	}
	return h
}

func (d *Document) extractLinear() (string, error) {
	pages, err := d.glyphPages()
	if err != nil {
		return "", err
	}

	// Method 1: glyph rows joined with spaces
	rowTexts := make([]string, 0, len(pages))
	for _, p := range pages {
		rowTexts = append(rowTexts, renderRows(p.rows, " "))
	}
	if isReadableText(rowTexts) {
		return strings.Join(rowTexts, "\n"), nil
	}

	// Method 2: Page.GetPlainText with the page's fonts
	pageTexts := d.extractByPagePlainText()
	if isReadableText(pageTexts) {
		return strings.Join(pageTexts, "\n"), nil
	}

	// Method 3: Reader.GetPlainText, a different decoding path
	plain := d.extractByReaderPlainText()
	if isReadableText([]string{plain}) {
		return plain, nil
	}

	// Nothing looks like a statement; hand back whatever text there is and
	// let issuer detection decide.
	for _, candidate := range []string{strings.Join(rowTexts, "\n"), strings.Join(pageTexts, "\n"), plain} {
		if strings.TrimSpace(candidate) != "" {
			return candidate, nil
		}
	}
	return "", nil
}

func (d *Document) extractByPagePlainText() (pages []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("page plain text extraction crashed")
		}
	}()

	for i := 1; i <= d.NumPages(); i++ {
		page := d.reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

func (d *Document) extractByReaderPlainText() (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("reader plain text extraction crashed")
			text = ""
		}
	}()

	reader, err := d.reader.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// textQuality returns the ratio of basic readable characters (ASCII letters,
// digits, common punctuation, whitespace and currency signs) to all
// characters. unicode.IsLetter is too broad: identity-encoded fonts decode to
// accented garbage.
func textQuality(pages []string) float64 {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(".,-/:;()'\"₹$€£%&@#!?+=*", r) {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// commonWords appear on virtually every card statement. Text containing none
// of them is most likely undecoded glyph ids.
var commonWords = []string{
	"card", "statement", "payment", "due", "amount", "credit", "limit",
	"total", "date", "transaction", "minimum", "balance", "reward",
}

func containsCommonWords(pages []string) bool {
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range commonWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// isReadableText requires more than 50 characters, more than 60% readable
// characters and at least one common statement word.
func isReadableText(pages []string) bool {
	if totalTextLen(pages) <= 50 {
		return false
	}
	if textQuality(pages) <= 0.6 {
		return false
	}
	return containsCommonWords(pages)
}

func totalTextLen(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}
