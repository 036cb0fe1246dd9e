package writer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/shopspring/decimal"
)

func sampleRecord() *models.StatementRecord {
	stmt := civil.Date{Year: 2024, Month: time.January, Day: 1}
	due := civil.Date{Year: 2024, Month: time.January, Day: 15}
	posted := civil.Date{Year: 2024, Month: time.January, Day: 3}
	total := decimal.RequireFromString("12345.67")

	r := models.NewStatementRecord("HDFC Bank")
	r.CardholderName = "Jane Doe"
	r.CardLastFour = "4321"
	r.StatementDate = &stmt
	r.PaymentDueDate = &due
	r.TotalAmountDue = &total
	r.AddTransaction(models.Transaction{
		Date:        civil.Date{Year: 2024, Month: time.January, Day: 2},
		PostingDate: &posted,
		Description: "AMAZON, MUMBAI",
		Merchant:    "AMAZON",
		Amount:      decimal.RequireFromString("540"),
		Type:        models.Debit,
	})
	r.AddTransaction(models.Transaction{
		Date:        civil.Date{Year: 2024, Month: time.January, Day: 5},
		Description: "PAYMENT RECEIVED",
		Amount:      decimal.RequireFromString("10000.5"),
		Type:        models.Credit,
	})
	return r
}

func TestCSVWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}
	if err := w.Write(&buf, sampleRecord()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "# Issuer,HDFC Bank") {
		t.Error("expected issuer metadata header")
	}
	if !strings.Contains(output, "# Card,XXXX 4321") {
		t.Error("expected masked card metadata")
	}
	if !strings.Contains(output, "# Total Amount Due,12345.67") {
		t.Error("expected total amount due metadata")
	}
	if !strings.Contains(output, "Date,Posting Date,Description,Merchant,Type,Amount") {
		t.Error("expected column headers")
	}
	if !strings.Contains(output, `02/01/2024,03/01/2024,"AMAZON, MUMBAI",AMAZON,DEBIT,540.00`) {
		t.Errorf("expected first transaction row, got:\n%s", output)
	}
	if !strings.Contains(output, "05/01/2024,,PAYMENT RECEIVED,,CREDIT,10000.50") {
		t.Errorf("expected second transaction row, got:\n%s", output)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	// 6 metadata lines + 1 header + 2 transactions = 9
	if len(lines) != 9 {
		t.Errorf("expected 9 lines, got %d", len(lines))
	}
}

func TestCSVWriter_WriteNoHeader(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: false}
	if err := w.Write(&buf, sampleRecord()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	if strings.Contains(output, "# Issuer") {
		t.Error("should not have issuer metadata when header=false")
	}
	if !strings.HasPrefix(output, "Date,Posting Date,Description,Merchant,Type,Amount") {
		t.Error("expected column headers first")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"25.99", "25.99"},
		{"1234.5", "1234.50"},
		{"0", ""},
		{"2500", "2500.00"},
	}

	for _, tt := range tests {
		got := formatAmount(decimal.RequireFromString(tt.input))
		if got != tt.expected {
			t.Errorf("formatAmount(%s): got %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(nil); got != "" {
		t.Errorf("formatDate(nil): got %q", got)
	}
	d := civil.Date{Year: 2024, Month: time.March, Day: 9}
	if got := formatDate(&d); got != "09/03/2024" {
		t.Errorf("formatDate: got %q, want 09/03/2024", got)
	}
}

func TestNew(t *testing.T) {
	for _, format := range Formats {
		if _, err := New(format, true); err != nil {
			t.Errorf("New(%q): unexpected error %v", format, err)
		}
	}
	if _, err := New("pdf", true); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestJSONWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, sampleRecord()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := buf.String()
	for _, want := range []string{`"issuerName":"HDFC Bank"`, `"paymentDueDate":"2024-01-15"`, `"totalAmountDue":"12345.67"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in %s", want, output)
		}
	}
}
