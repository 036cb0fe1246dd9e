package parser

var axisProfile = Profile{
	Name: "Axis Bank",
	Detection: Detection{
		Strong:  []string{"AXIS BANK", "AXISBANK"},
		Brand:   []string{"AXIS"},
		Context: []string{"CREDIT CARD", "STATEMENT"},
	},

	Card: Field{
		Name: "cardLastFour",
		Rules: []Rule{
			{`Card\s+No\.?\s*:?\s*\d{4,6}\s*[X*]+\s*(\d{4})`, 1},
			{`Card\s+Number\s*:?\s*(?:[X*\d]{4}\s*){3}(\d{4})`, 1},
		},
		Keywords: []string{"Card No", "Card Number"},
	},
	Variant: Field{
		Name:     "cardVariant",
		Keywords: []string{"Card Type", "Card Variant"},
	},
	Cardholder: Field{
		Name:     "cardholderName",
		Keywords: []string{"Name", "Cardholder Name"},
	},
	StatementDate: Field{
		Name: "statementDate",
		Rules: []Rule{
			{`Statement\s+Date` + sep + datePart, 1},
			{`Statement\s+Period` + sep + datePart, 1},
		},
		Fallback: FallbackFirstDate,
	},
	PaymentDueDate: Field{
		Name: "paymentDueDate",
		Rules: []Rule{
			{`Payment\s+Due\s+Date` + sep + datePart, 1},
		},
		Keywords: []string{"Payment Due Date", "Due Date"},
	},
	TotalAmountDue: Field{
		Name: "totalAmountDue",
		Rules: []Rule{
			{`Total\s+Payment\s+Due` + sep + amountPart, 1},
			{`Total\s+Amount\s+Due` + sep + amountPart, 1},
		},
		Keywords: []string{"Total Payment Due", "Total Amount Due", "Amount Due"},
		Fallback: FallbackLargestAmount,
	},
	MinimumAmountDue: Field{
		Name: "minimumAmountDue",
		Rules: []Rule{
			{`Minimum\s+Payment\s+Due` + sep + amountPart, 1},
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
			{`Available\s+Credit\s+Limit` + sep + amountPart, 1},
		},
	},

	VariantNoise: "card|credit|axis|bank",
	KnownVariants: []string{
		"Flipkart", "ACE", "Magnus", "Atlas", "Vistara", "Neo", "My Zone",
		"Select", "Privilege", "Reserve",
	},
}

// NewAxis returns the Axis Bank strategy.
func NewAxis(opts ...Option) Strategy {
	return NewStrategy(axisProfile, opts...)
}
