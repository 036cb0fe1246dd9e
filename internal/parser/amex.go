package parser

var amexProfile = Profile{
	Name: "American Express",
	Detection: Detection{
		Strong: []string{"AMERICAN EXPRESS", "AMERICANEXPRESS", "AMEX"},
	},

	Card: Field{
		Name: "cardLastFour",
		Rules: []Rule{
			{`(?:Card\s+ending\s+in|Account\s+ending\s+in)\s*:?\s*(\d{4})`, 1},
			{`X{4}-X{6}-X(\d{4})`, 1},
		},
	},
	Variant: Field{
		Name: "cardVariant",
		Rules: []Rule{
			{`(?:Card\s+Product|Membership)\s*:?\s*([A-Za-z ]+?)\s*$`, 1},
		},
		RuleViews: []View{ViewLinear},
	},
	Cardholder: Field{
		Name:     "cardholderName",
		Keywords: []string{"Card Member", "Cardmember", "Prepared for"},
	},
	StatementDate: Field{
		Name: "statementDate",
		Rules: []Rule{
			{`(?:Statement\s+Date|Closing\s+Date)` + sep + datePart, 1},
		},
		Fallback: FallbackFirstDate,
	},
	PaymentDueDate: Field{
		Name: "paymentDueDate",
		Rules: []Rule{
			{`(?:Payment\s+Due\s+Date|Due\s+Date)` + sep + datePart, 1},
		},
		Keywords: []string{"Payment Due Date", "Due Date", "Please pay by"},
	},
	TotalAmountDue: Field{
		Name: "totalAmountDue",
		Rules: []Rule{
			{`(?:Total\s+Amount\s+Due|New\s+Balance|Amount\s+Due)` + sep + amountPart, 1},
		},
		Keywords: []string{"Closing Balance", "New Balance"},
		Fallback: FallbackLargestAmount,
	},
	MinimumAmountDue: Field{
		Name: "minimumAmountDue",
		Rules: []Rule{
			{`Minimum\s+(?:Amount|Payment)\s+Due` + sep + amountPart, 1},
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
			{`Available\s+(?:Credit|Limit)` + sep + amountPart, 1},
		},
	},

	VariantNoise: "card|credit|american express|amex",
	KnownVariants: []string{
		"Platinum Travel", "Platinum Reserve", "Platinum", "Gold Charge",
		"SmartEarn",
	},
}

// NewAmex returns the American Express strategy.
func NewAmex(opts ...Option) Strategy {
	return NewStrategy(amexProfile, opts...)
}
