package writer

import (
	"fmt"
	"io"

	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	transactionsSheet = "Transactions"
	summarySheet      = "Summary"
)

// XLSXWriter writes a workbook with a Transactions sheet and, with
// IncludeSummary, a Summary sheet.
type XLSXWriter struct {
	IncludeSummary bool
}

// WriteToFile saves the workbook at path.
func (w *XLSXWriter) WriteToFile(path string, r *models.StatementRecord) error {
	f, err := w.build(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", path, err)
	}
	return nil
}

// Write streams the workbook to out.
func (w *XLSXWriter) Write(out io.Writer, r *models.StatementRecord) error {
	f, err := w.build(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (w *XLSXWriter) build(r *models.StatementRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", transactionsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Date", "Posting Date", "Description", "Merchant", "Type", "Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(transactionsSheet, cell, h)
	}

	for i, txn := range r.Transactions {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(transactionsSheet, cell, v)
		}
		write(1, formatDate(&txn.Date))
		write(2, formatDate(txn.PostingDate))
		write(3, txn.Description)
		write(4, txn.Merchant)
		write(5, string(txn.Type))
		// numeric so the sheet can sum it
		write(6, txn.Amount.InexactFloat64())
	}

	_ = f.SetColWidth(transactionsSheet, "A", "B", 12)
	_ = f.SetColWidth(transactionsSheet, "C", "C", 42)
	_ = f.SetColWidth(transactionsSheet, "D", "D", 24)

	if w.IncludeSummary {
		if _, err := f.NewSheet(summarySheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet: %w", err)
		}
		for i, kv := range summary(r) {
			label, _ := excelize.CoordinatesToCellName(1, i+1)
			value, _ := excelize.CoordinatesToCellName(2, i+1)
			_ = f.SetCellValue(summarySheet, label, kv[0])
			_ = f.SetCellValue(summarySheet, value, kv[1])
		}
		_ = f.SetColWidth(summarySheet, "A", "B", 22)
	}

	idx, _ := f.GetSheetIndex(transactionsSheet)
	f.SetActiveSheet(idx)
	return f, nil
}
