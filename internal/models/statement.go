package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// MaxTransactions caps the number of transactions kept per statement.
const MaxTransactions = 50

// StatementRecord holds the facts extracted from one card statement. Every
// field is optional; IsValid tells whether the minimum useful set is present.
type StatementRecord struct {
	IssuerName     string `json:"issuerName"`
	CardholderName string `json:"cardholderName,omitempty"`
	CardLastFour   string `json:"cardLastFour,omitempty"`
	CardVariant    string `json:"cardVariant,omitempty"`

	StatementDate  *civil.Date `json:"statementDate,omitempty"`
	PaymentDueDate *civil.Date `json:"paymentDueDate,omitempty"`

	TotalAmountDue   *decimal.Decimal `json:"totalAmountDue,omitempty"`
	MinimumAmountDue *decimal.Decimal `json:"minimumAmountDue,omitempty"`
	CreditLimit      *decimal.Decimal `json:"creditLimit,omitempty"`
	AvailableCredit  *decimal.Decimal `json:"availableCredit,omitempty"`

	Transactions []Transaction `json:"transactions"`

	// Trace records where each populated field came from.
	Trace []FieldTrace `json:"trace,omitempty"`
}

// FieldTrace captures which fallback tier produced a field.
type FieldTrace struct {
	Field string `json:"field"`
	Tier  string `json:"tier"` // "rule", "keyword", "largest-amount", "first-date", "known-variant"
	View  string `json:"view"`
	Raw   string `json:"raw"`
}

// NewStatementRecord returns an empty record for the named issuer.
func NewStatementRecord(issuer string) *StatementRecord {
	return &StatementRecord{
		IssuerName:   issuer,
		Transactions: []Transaction{},
	}
}

// IsValid reports whether the card identifier, total amount due and payment
// due date are all present.
func (r *StatementRecord) IsValid() bool {
	return r.CardLastFour != "" && r.TotalAmountDue != nil && r.PaymentDueDate != nil
}

// AddTransaction appends t unless the record already holds MaxTransactions.
func (r *StatementRecord) AddTransaction(t Transaction) bool {
	if len(r.Transactions) >= MaxTransactions {
		return false
	}
	r.Transactions = append(r.Transactions, t)
	return true
}

// Missing lists the required fields that are absent.
func (r *StatementRecord) Missing() []string {
	var missing []string
	if r.CardLastFour == "" {
		missing = append(missing, "cardLastFour")
	}
	if r.TotalAmountDue == nil {
		missing = append(missing, "totalAmountDue")
	}
	if r.PaymentDueDate == nil {
		missing = append(missing, "paymentDueDate")
	}
	return missing
}

// AddTrace appends a provenance entry.
func (r *StatementRecord) AddTrace(field, tier, view, raw string) {
	r.Trace = append(r.Trace, FieldTrace{Field: field, Tier: tier, View: view, Raw: raw})
}
