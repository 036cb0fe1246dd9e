package extractor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF assembles a one-page US Letter PDF with a fixed-pitch font so that
// glyph positions are predictable.
func buildPDF(content string) []byte {
	return buildPDFWith(content, "", "/MediaBox [0 0 612 792]")
}

// buildPDFWith is buildPDF with extra entries for the Pages node and the
// page dictionary.
func buildPDFWith(content, pagesExtra, pageExtra string) []byte {
	widths := strings.TrimSpace(strings.Repeat("600 ", 95))
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 " + pagesExtra + " >>",
		"<< /Type /Page /Parent 2 0 R " + pageExtra + " /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [" + widths + "] >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

const statementContent = `BT
/F1 12 Tf
1 0 0 1 72 750 Tm
(HDFC BANK Credit Card Statement) Tj
1 0 0 1 72 700 Tm
(Total Amount Due) Tj
1 0 0 1 400 700 Tm
(Rs. 12,345.67) Tj
ET`

func TestDocument_Views(t *testing.T) {
	doc, err := OpenBytes(buildPDF(statementContent))
	require.NoError(t, err)
	defer doc.Close()

	assert.True(t, doc.Valid())
	assert.Equal(t, 1, doc.NumPages())

	linear, err := doc.LinearText()
	require.NoError(t, err)
	assert.Contains(t, linear, "HDFC BANK Credit Card Statement")
	assert.Contains(t, linear, "Total Amount Due Rs. 12,345.67")

	layout, err := doc.LayoutText()
	require.NoError(t, err)
	assert.Contains(t, layout, "Total Amount Due\tRs. 12,345.67")

	regions, err := doc.Regions()
	require.NoError(t, err)
	assert.Contains(t, regions[RegionHeader], "HDFC BANK")
	assert.Empty(t, regions[RegionAccount])

	lines, err := doc.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "Total Amount Due", lines[1].Text)
	assert.Equal(t, "Rs. 12,345.67", lines[2].Text)
	assert.Equal(t, lines[1].Y, lines[2].Y)
	assert.Less(t, lines[0].Y, lines[1].Y)
}

func TestDocument_InheritedMediaBox(t *testing.T) {
	// A4 page whose size is only declared on the page tree node
	content := `BT
/F1 12 Tf
1 0 0 1 72 810 Tm
(HDFC BANK Credit Card Statement) Tj
ET`
	doc, err := OpenBytes(buildPDFWith(content, "/MediaBox [0 0 595 842]", ""))
	require.NoError(t, err)
	defer doc.Close()

	regions, err := doc.Regions()
	require.NoError(t, err)
	assert.Contains(t, regions[RegionHeader], "HDFC BANK Credit Card Statement")

	lines, err := doc.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.InDelta(t, 32.0, lines[0].Y, 0.5)
}

func TestDocument_OpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF(statementContent), 0o600))

	doc, err := Open(path)
	require.NoError(t, err)
	assert.True(t, doc.Valid())
	assert.NoError(t, doc.Close())
	assert.NoError(t, doc.Close())
}

func TestDocument_Unreadable(t *testing.T) {
	_, err := OpenBytes([]byte("this is not a pdf"))
	assert.ErrorIs(t, err, ErrUnreadable)

	_, err = Open(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrUnreadable)

	var nilDoc *Document
	assert.False(t, nilDoc.Valid())
}
