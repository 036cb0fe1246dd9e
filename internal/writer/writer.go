// Package writer exports a parsed statement as CSV, XLSX or JSON.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/shopspring/decimal"
)

// Writer serializes a statement record.
type Writer interface {
	Write(out io.Writer, r *models.StatementRecord) error
	WriteToFile(path string, r *models.StatementRecord) error
}

// Formats lists the supported output formats.
var Formats = []string{"csv", "xlsx", "json"}

// New returns the writer for format. includeHeader adds the statement
// summary where the format has room for it.
func New(format string, includeHeader bool) (Writer, error) {
	switch strings.ToLower(format) {
	case "csv", "":
		return &CSVWriter{IncludeHeader: includeHeader}, nil
	case "xlsx", "excel":
		return &XLSXWriter{IncludeSummary: includeHeader}, nil
	case "json":
		return &JSONWriter{Indent: true}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use %s)", format, strings.Join(Formats, ", "))
	}
}

// JSONWriter writes the whole record as JSON, including the trace.
type JSONWriter struct {
	Indent bool
}

// Write encodes r to out.
func (w *JSONWriter) Write(out io.Writer, r *models.StatementRecord) error {
	enc := json.NewEncoder(out)
	if w.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteToFile writes r as JSON to path.
func (w *JSONWriter) WriteToFile(path string, r *models.StatementRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, r)
}

// summary returns the populated statement-level fields as label/value pairs
// in a fixed order.
func summary(r *models.StatementRecord) [][2]string {
	var out [][2]string
	add := func(label, value string) {
		if value != "" {
			out = append(out, [2]string{label, value})
		}
	}
	add("Issuer", r.IssuerName)
	add("Cardholder", r.CardholderName)
	if r.CardLastFour != "" {
		add("Card", "XXXX "+r.CardLastFour)
	}
	add("Variant", r.CardVariant)
	add("Statement Date", formatDate(r.StatementDate))
	add("Payment Due Date", formatDate(r.PaymentDueDate))
	add("Total Amount Due", formatOptional(r.TotalAmountDue))
	add("Minimum Amount Due", formatOptional(r.MinimumAmountDue))
	add("Credit Limit", formatOptional(r.CreditLimit))
	add("Available Credit", formatOptional(r.AvailableCredit))
	return out
}

// formatDate renders d day first, as it appears on the statement.
func formatDate(d *civil.Date) string {
	if d == nil || !d.IsValid() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func formatAmount(amount decimal.Decimal) string {
	if amount.IsZero() {
		return ""
	}
	return amount.StringFixed(2)
}

func formatOptional(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return amount.StringFixed(2)
}
