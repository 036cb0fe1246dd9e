package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a statement line item.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
	Fee    TransactionType = "FEE"
)

// Transaction represents a single line item on a card statement.
type Transaction struct {
	Date        civil.Date      `json:"date"`
	PostingDate *civil.Date     `json:"postingDate,omitempty"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`                  // DEBIT, CREDIT or FEE
	ParseMethod string          `json:"parseMethod,omitempty"` // debug: "table" or "regex"
}
