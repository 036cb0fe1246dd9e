package parser

// HDFC statements are read from every view: the summary box often lands in
// the account band with its labels and values split into columns, and the
// transaction list is a positioned table.
var hdfcProfile = Profile{
	Name: "HDFC Bank",
	Detection: Detection{
		Strong:  []string{"HDFC BANK", "HDFCBANK"},
		Brand:   []string{"HDFC"},
		Context: []string{"CREDIT CARD", "STATEMENT"},
	},

	Card: Field{
		Name: "cardLastFour",
		Rules: []Rule{
			{`Card\s+Number\s*:?\s*(?:X+\s*){3}(\d{4})`, 1},
			{`Card\s+No\.?\s*:?\s*(?:[X*]\s*){12}(\d{4})`, 1},
			{`(?:ending|ends)\s+(?:in|with)\s*:?\s*(\d{4})`, 1},
			{`\*{12}(\d{4})`, 1},
			{`XXXX\s+XXXX\s+XXXX\s+(\d{4})`, 1},
		},
		Keywords: []string{"Card Number", "Card No"},
	},
	Variant: Field{
		Name:         "cardVariant",
		Keywords:     []string{"Card Type", "Product", "Card Variant", "Card Name", "Card Product"},
		KeywordViews: []View{ViewLinear, ViewLayout, ViewHeader},
	},
	Cardholder: Field{
		Name: "cardholderName",
		Rules: []Rule{
			{`^\s*((?:Mr|Mrs|Ms|Dr)\.?\s+[A-Za-z.]+(?:[ ]+[A-Za-z.]+){1,3})\s*$`, 1},
		},
		Keywords:     []string{"Cardholder Name", "Card Holder Name", "Customer Name", "Name of Card Holder"},
		KeywordViews: []View{ViewHeader, ViewLinear},
	},
	StatementDate: Field{
		Name: "statementDate",
		Rules: []Rule{
			{`Statement\s+Date` + sep + datePart, 1},
			{`Statement\s+Period` + sep + datePart + `\s+(?:to|-)`, 1},
		},
		Keywords:     []string{"Statement Date", "Date of Statement", "Statement Period", "Bill Date"},
		KeywordViews: []View{ViewLinear, ViewLayout, ViewHeader},
		Fallback:     FallbackFirstDate,
	},
	PaymentDueDate: Field{
		Name: "paymentDueDate",
		Rules: []Rule{
			{`Payment\s+Due\s+Date` + sep + datePart, 1},
			{`Due\s+Date` + sep + datePart, 1},
		},
		Keywords:     []string{"Payment Due Date", "Due Date", "Pay By", "Payment Due By", "Last Date of Payment", "Payment Deadline"},
		KeywordViews: []View{ViewLinear, ViewLayout, ViewAccount},
	},
	TotalAmountDue: Field{
		Name: "totalAmountDue",
		Rules: []Rule{
			{`Total\s+Amount\s+Due` + sep + amountPart, 1},
			{`Total\s+Dues` + sep + amountPart, 1},
		},
		Keywords:     []string{"Total Amount Due", "Amount Due", "Outstanding Balance", "Total Outstanding", "Payment Amount", "Amount Payable"},
		KeywordViews: []View{ViewLinear, ViewLayout, ViewAccount},
		Fallback:     FallbackLargestAmount,
		FallbackView: ViewLinear,
	},
	MinimumAmountDue: Field{
		Name: "minimumAmountDue",
		Rules: []Rule{
			{`Minimum\s+Amount\s+Due` + sep + amountPart, 1},
		},
		Keywords:     []string{"Minimum Amount Due", "Minimum Due", "Min. Amount Due", "Minimum Payment"},
		KeywordViews: []View{ViewLinear, ViewLayout, ViewAccount},
	},
	CreditLimit: Field{
		Name: "creditLimit",
		Rules: []Rule{
			{`Credit\s+Limit` + sep + amountPart, 1},
		},
		Keywords:     []string{"Credit Limit", "Total Limit", "Card Limit"},
		KeywordViews: []View{ViewLinear, ViewLayout, ViewAccount},
	},
	AvailableCredit: Field{
		Name: "availableCredit",
		Rules: []Rule{
			{`Available\s+Credit\s+Limit` + sep + amountPart, 1},
		},
		Keywords:     []string{"Available Credit", "Available Limit", "Credit Available"},
		KeywordViews: []View{ViewLinear, ViewLayout, ViewAccount},
	},

	VariantNoise: "card|credit|hdfc|bank",
	KnownVariants: []string{
		"MoneyBack+", "MoneyBack", "Regalia Gold", "Regalia First", "Regalia",
		"Diners Club Black", "Diners Club", "Infinia", "Millennia", "Freedom",
		"Platinum", "Titanium", "Visa Signature", "World MasterCard", "Swiggy",
		"Tata Neu",
	},

	TableTransactions: true,
}

// NewHDFC returns the HDFC Bank strategy.
func NewHDFC(opts ...Option) Strategy {
	return NewStrategy(hdfcProfile, opts...)
}
