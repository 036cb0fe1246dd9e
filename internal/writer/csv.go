package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/insightdelivered/card-statement-parser/internal/models"
)

// CSVWriter writes transactions to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// csvRow is one transaction as written to CSV.
type csvRow struct {
	Date        string `csv:"Date"`
	PostingDate string `csv:"Posting Date"`
	Description string `csv:"Description"`
	Merchant    string `csv:"Merchant"`
	Type        string `csv:"Type"`
	Amount      string `csv:"Amount"`
}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, r *models.StatementRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, r)
}

// Write writes transactions in CSV format to the given writer. With
// IncludeHeader the statement summary goes first as "# " rows.
func (w *CSVWriter) Write(out io.Writer, r *models.StatementRecord) error {
	if w.IncludeHeader {
		meta := csv.NewWriter(out)
		for _, kv := range summary(r) {
			if err := meta.Write([]string{"# " + kv[0], kv[1]}); err != nil {
				return fmt.Errorf("failed to write CSV metadata: %w", err)
			}
		}
		meta.Flush()
		if err := meta.Error(); err != nil {
			return fmt.Errorf("failed to write CSV metadata: %w", err)
		}
	}

	rows := make([]csvRow, 0, len(r.Transactions))
	for _, txn := range r.Transactions {
		rows = append(rows, csvRow{
			Date:        formatDate(&txn.Date),
			PostingDate: formatDate(txn.PostingDate),
			Description: txn.Description,
			Merchant:    txn.Merchant,
			Type:        string(txn.Type),
			Amount:      formatAmount(txn.Amount),
		})
	}
	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}
