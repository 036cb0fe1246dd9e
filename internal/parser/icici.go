package parser

var iciciProfile = Profile{
	Name: "ICICI Bank",
	Detection: Detection{
		Strong:  []string{"ICICI BANK", "ICICIBANK"},
		Brand:   []string{"ICICI"},
		Context: []string{"CREDIT CARD"},
	},

	Card: Field{
		Name: "cardLastFour",
		Rules: []Rule{
			{`(?:Card\s+Number|Card\s+ending\s+with)\s*:?\s*(?:X+\s*)*?(\d{4})`, 1},
			{`\d{4}\s*X{4}\s*X{4}\s*(\d{4})`, 1},
		},
		Keywords: []string{"Card Number", "Card No"},
	},
	Variant: Field{
		Name: "cardVariant",
		Rules: []Rule{
			{`(?:Card\s+Type|Product)\s*:?\s*([A-Za-z ]+?)(?:\n|Card|$)`, 1},
		},
		RuleViews: []View{ViewLinear},
	},
	Cardholder: Field{
		Name: "cardholderName",
		Rules: []Rule{
			{`^\s*((?:Mr|Mrs|Ms|Dr)\.?\s+[A-Za-z.]+(?:[ ]+[A-Za-z.]+){1,3})\s*$`, 1},
		},
		Keywords: []string{"Cardholder Name", "Customer Name"},
	},
	StatementDate: Field{
		Name: "statementDate",
		Rules: []Rule{
			{`(?:Statement\s+Date|Date)` + sep + `(\d{2}[-/][A-Za-z]{3}[-/]\d{4})`, 1},
			{`Statement\s+Date` + sep + datePart, 1},
		},
		Fallback: FallbackFirstDate,
	},
	PaymentDueDate: Field{
		Name: "paymentDueDate",
		Rules: []Rule{
			{`(?:Payment\s+Due\s+Date|Due\s+Date)` + sep + `(\d{2}[-/][A-Za-z]{3}[-/]\d{4})`, 1},
			{`(?:Payment\s+Due\s+Date|Due\s+Date)` + sep + datePart, 1},
		},
		Keywords: []string{"Payment Due Date", "Due Date"},
	},
	TotalAmountDue: Field{
		Name: "totalAmountDue",
		Rules: []Rule{
			{`(?:Total\s+Amount\s+Due|Amount\s+Payable)` + sep + amountPart, 1},
		},
		Keywords: []string{"Total Amount Due", "Amount Payable", "Total Outstanding"},
		Fallback: FallbackLargestAmount,
	},
	MinimumAmountDue: Field{
		Name: "minimumAmountDue",
		Rules: []Rule{
			{`Minimum\s+Amount\s+Due` + sep + amountPart, 1},
		},
	},
	CreditLimit: Field{
		Name: "creditLimit",
		Rules: []Rule{
			{`Credit\s+Limit` + sep + amountPart, 1},
		},
	},
	AvailableCredit: Field{
		Name: "availableCredit",
		Rules: []Rule{
			{`Available\s+Credit(?:\s+Limit)?` + sep + amountPart, 1},
		},
	},

	VariantNoise: "card|credit|icici|bank",
	KnownVariants: []string{
		"Amazon Pay", "Coral", "Rubyx", "Sapphiro", "Emeralde", "Platinum Chip",
		"HPCL Super Saver", "MakeMyTrip", "Manchester United",
	},
}

// NewICICI returns the ICICI Bank strategy.
func NewICICI(opts ...Option) Strategy {
	return NewStrategy(iciciProfile, opts...)
}
