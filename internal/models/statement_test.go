package models

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatementRecord_IsValid(t *testing.T) {
	due := civil.Date{Year: 2024, Month: time.January, Day: 15}
	total := decimal.RequireFromString("12345.67")

	tests := []struct {
		name    string
		record  StatementRecord
		valid   bool
		missing []string
	}{
		{"empty", StatementRecord{}, false, []string{"cardLastFour", "totalAmountDue", "paymentDueDate"}},
		{"card only", StatementRecord{CardLastFour: "4321"}, false, []string{"totalAmountDue", "paymentDueDate"}},
		{"no due date", StatementRecord{CardLastFour: "4321", TotalAmountDue: &total}, false, []string{"paymentDueDate"}},
		{"complete", StatementRecord{CardLastFour: "4321", TotalAmountDue: &total, PaymentDueDate: &due}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.record.IsValid())
			assert.Equal(t, tt.missing, tt.record.Missing())
		})
	}
}

func TestStatementRecord_AddTransactionCap(t *testing.T) {
	r := NewStatementRecord("HDFC Bank")
	assert.Equal(t, "HDFC Bank", r.IssuerName)
	assert.NotNil(t, r.Transactions)

	for i := 0; i < MaxTransactions; i++ {
		assert.True(t, r.AddTransaction(Transaction{Description: "x", Amount: decimal.NewFromInt(1), Type: Debit}))
	}
	assert.False(t, r.AddTransaction(Transaction{Description: "overflow"}))
	assert.Len(t, r.Transactions, MaxTransactions)
}

func TestStatementRecord_AddTrace(t *testing.T) {
	r := NewStatementRecord("ICICI Bank")
	r.AddTrace("cardLastFour", "rule", "linear", "4321")
	assert.Equal(t, []FieldTrace{{Field: "cardLastFour", Tier: "rule", View: "linear", Raw: "4321"}}, r.Trace)
}
