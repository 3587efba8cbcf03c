package models

// AggregateTotals holds the five declaration totals of one successful
// pipeline run. TotalToDate includes the carried-forward prior amount, the
// category subtotals do not. Immutable once computed.
type AggregateTotals struct {
	TotalToDate     Decimal `json:"total_to_date"`
	Cash            Decimal `json:"cash"`
	POSTerminal     Decimal `json:"pos_terminal"`
	BankTransaction Decimal `json:"bank_transaction"`
	PaymentSystem   Decimal `json:"payment_system"`

	PriorAmount Decimal `json:"prior_amount"`
}

// DeclarationField pairs a declaration form field with its amount.
type DeclarationField struct {
	Field  string  `json:"field"`
	Amount Decimal `json:"amount"`
}

// DeclarationFields renders the totals as Georgia Revenue Service declaration
// fields: 15 is the year-to-date total, 18-21 are the category subtotals.
func (t AggregateTotals) DeclarationFields() []DeclarationField {
	return []DeclarationField{
		{Field: "Field 15", Amount: t.TotalToDate},
		{Field: "Field 18", Amount: t.Cash},
		{Field: "Field 19", Amount: t.POSTerminal},
		{Field: "Field 20", Amount: t.BankTransaction},
		{Field: "Field 21", Amount: t.PaymentSystem},
	}
}

// CategorySum adds the four category subtotals; it must equal
// TotalToDate minus PriorAmount.
func (t AggregateTotals) CategorySum() Decimal {
	return t.Cash.Add(t.POSTerminal).Add(t.BankTransaction).Add(t.PaymentSystem)
}
