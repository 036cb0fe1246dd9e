package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/insightdelivered/card-statement-parser/internal/extractor"
	"github.com/insightdelivered/card-statement-parser/internal/models"
	"github.com/insightdelivered/card-statement-parser/internal/normalize"
	"github.com/insightdelivered/card-statement-parser/internal/pattern"
)

// DirectTransactionPattern matches "date  description  amount [Cr]" within
// one line of linear text. Groups: 1 date, 2 description, 3 amount, 4 credit
// marker.
const DirectTransactionPattern = `(\d{2}[-/][A-Za-z]{3}[-/]\d{2,4})[ \t]+(.{10,60}?)[ \t]+(?:Rs\.?|₹|INR)?[ \t]*([\d,]+\.\d{2})([ \t]*Cr\b)?`

var (
	feePattern = regexp.MustCompile(`(?i)\b(?:fee|fees|charges?|gst|igst|cgst|sgst|interest|finance charges?|surcharge)\b`)

	merchantPrefix = regexp.MustCompile(`(?i)^(?:pos|ecom|upi|nfc|imps|neft)[\s\-/*]+`)
	merchantRef    = regexp.MustCompile(`(?i)(?:\s+(?:[#*]?\d[\d\-/]*|ref\S*))+$`)
)

// Row is one table row of positioned cells, left to right.
type Row []extractor.TextLine

// Cells returns the trimmed text of each cell.
func (r Row) Cells() []string {
	cells := make([]string, len(r))
	for i, l := range r {
		cells[i] = strings.TrimSpace(l.Text)
	}
	return cells
}

// GroupRows groups positioned lines into rows: lines whose Y lies within
// tolerance of a row's first line join that row. Rows come out top to bottom
// and cells left to right.
func GroupRows(lines []extractor.TextLine, tolerance float64) []Row {
	if len(lines) == 0 {
		return nil
	}
	sorted := make([]extractor.TextLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows []Row
	anchor := 0.0
	for _, l := range sorted {
		if n := len(rows); n > 0 && l.Y-anchor <= tolerance {
			rows[n-1] = append(rows[n-1], l)
			continue
		}
		anchor = l.Y
		rows = append(rows, Row{l})
	}

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
	return rows
}

// TransactionFromCells reads a table row. The first cell must be a date and
// some later cell a positive amount; the cells in between form the
// description. An optional second date cell is taken as the posting date.
func TransactionFromCells(cells []string) (models.Transaction, bool) {
	if len(cells) < 2 {
		return models.Transaction{}, false
	}
	date, ok := normalize.ParseDate(cells[0])
	if !ok {
		return models.Transaction{}, false
	}

	amountAt := -1
	for i := len(cells) - 1; i >= 1; i-- {
		if d, ok := normalize.ParseAmount(cells[i]); ok && normalize.IsValidAmount(d) {
			amountAt = i
			break
		}
	}
	if amountAt < 0 {
		return models.Transaction{}, false
	}
	amount, _ := normalize.ParseAmount(cells[amountAt])

	t := models.Transaction{Date: date, Amount: amount}
	descFrom := 1
	if amountAt > 1 {
		if posted, ok := normalize.ParseDate(cells[1]); ok {
			t.PostingDate = &posted
			descFrom = 2
		}
	}
	if descFrom < amountAt {
		t.Description = pattern.Clean(strings.Join(cells[descFrom:amountAt], " "))
	}

	credit := normalize.IsCredit(cells[amountAt])
	if amountAt+1 < len(cells) && strings.EqualFold(strings.TrimSuffix(cells[amountAt+1], "."), "cr") {
		credit = true
	}
	t.Type = classify(t.Description, credit)
	t.Merchant = merchantName(t.Description)
	t.ParseMethod = "table"
	return t, true
}

// tableTransactions adds every qualifying row of lines to record.
func tableTransactions(record *models.StatementRecord, lines []extractor.TextLine) int {
	added := 0
	for _, row := range GroupRows(lines, extractor.LineTolerance) {
		t, ok := TransactionFromCells(row.Cells())
		if !ok {
			continue
		}
		if !record.AddTransaction(t) {
			break
		}
		added++
	}
	return added
}

// directTransactions matches expr (see DirectTransactionPattern for the
// group layout) against text and adds the results to record.
func directTransactions(record *models.StatementRecord, text, expr string) int {
	added := 0
	for _, m := range pattern.ExtractGroups(text, expr, models.MaxTransactions) {
		if len(m) < 4 {
			return added
		}
		date, ok := normalize.ParseDate(m[1])
		if !ok {
			continue
		}
		amount, ok := normalize.ParseAmount(m[3])
		if !ok || !normalize.IsValidAmount(amount) {
			continue
		}
		credit := len(m) > 4 && m[4] != ""

		desc := pattern.Clean(m[2])
		t := models.Transaction{
			Date:        date,
			Description: desc,
			Merchant:    merchantName(desc),
			Amount:      amount,
			Type:        classify(desc, credit),
			ParseMethod: "regex",
		}
		if !record.AddTransaction(t) {
			break
		}
		added++
	}
	return added
}

// classify defaults to DEBIT. Credits are marked "Cr" on the amount; fees
// and taxes are recognised by their description.
func classify(description string, credit bool) models.TransactionType {
	switch {
	case credit:
		return models.Credit
	case feePattern.MatchString(description):
		return models.Fee
	default:
		return models.Debit
	}
}

// merchantName strips channel prefixes and trailing reference numbers from
// a description.
func merchantName(description string) string {
	m := merchantPrefix.ReplaceAllString(description, "")
	m = merchantRef.ReplaceAllString(m, "")
	return strings.TrimSpace(m)
}
