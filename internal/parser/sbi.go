package parser

var sbiProfile = Profile{
	Name: "SBI Card",
	Detection: Detection{
		Strong:  []string{"SBI CARD", "SBICARD", "SBI CARDS AND PAYMENT"},
		Brand:   []string{"SBI", "STATE BANK OF INDIA"},
		Context: []string{"CREDIT CARD"},
	},

	Card: Field{
		Name: "cardLastFour",
		Rules: []Rule{
			{`Card\s+(?:Number|No\.?)\s*:?\s*(?:[X*]+\s*){3}(\d{4})`, 1},
			{`(?:X{4}\s+){3}(\d{4})`, 1},
		},
		Keywords: []string{"Card Number", "Card No"},
	},
	Variant: Field{
		Name:     "cardVariant",
		Keywords: []string{"Card Variant", "Card Type", "Product"},
	},
	Cardholder: Field{
		Name: "cardholderName",
		Rules: []Rule{
			{`^\s*((?:Mr|Mrs|Ms|Dr)\.?\s+[A-Za-z.]+(?:[ ]+[A-Za-z.]+){1,3})\s*$`, 1},
		},
		Keywords: []string{"Cardholder Name", "Name of Card Holder"},
	},
	StatementDate: Field{
		Name: "statementDate",
		Rules: []Rule{
			{`Statement\s+Date` + sep + datePart, 1},
			{`Statement\s+Generation\s+Date` + sep + datePart, 1},
		},
		Keywords: []string{"Statement Date", "Bill Date"},
		Fallback: FallbackFirstDate,
	},
	PaymentDueDate: Field{
		Name: "paymentDueDate",
		Rules: []Rule{
			{`Payment\s+Due\s+Date` + sep + datePart, 1},
		},
		Keywords: []string{"Payment Due Date", "Due Date", "Pay By"},
	},
	TotalAmountDue: Field{
		Name: "totalAmountDue",
		Rules: []Rule{
			{`Total\s+Amount\s+Due` + sep + amountPart, 1},
			{`Total\s+Outstanding` + sep + amountPart, 1},
		},
		Keywords: []string{"Total Amount Due", "Total Outstanding", "Amount Due"},
		Fallback: FallbackLargestAmount,
	},
	MinimumAmountDue: Field{
		Name: "minimumAmountDue",
		Rules: []Rule{
			{`Minimum\s+Amount\s+Due` + sep + amountPart, 1},
		},
		Keywords: []string{"Minimum Amount Due", "Minimum Due"},
	},
	CreditLimit: Field{
		Name: "creditLimit",
		Rules: []Rule{
			{`Credit\s+Limit` + sep + amountPart, 1},
		},
		Keywords: []string{"Credit Limit"},
	},
	AvailableCredit: Field{
		Name: "availableCredit",
		Rules: []Rule{
			{`Available\s+Credit\s+Limit` + sep + amountPart, 1},
		},
		Keywords: []string{"Available Credit Limit", "Available Credit"},
	},

	VariantNoise: "card|credit|sbi|state bank of india",
	KnownVariants: []string{
		"SimplyCLICK", "SimplySAVE", "Cashback", "PRIME", "ELITE", "BPCL Octane",
		"IRCTC Platinum", "Air India Signature", "Pulse",
	},
}

// NewSBI returns the SBI Card strategy.
func NewSBI(opts ...Option) Strategy {
	return NewStrategy(sbiProfile, opts...)
}
