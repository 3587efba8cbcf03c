package models

import "strings"

// BaseCurrency is the currency every declaration total is expressed in.
const BaseCurrency = "GEL"

// AllowedCurrencies lists the currencies a transaction row may carry.
var AllowedCurrencies = map[string]struct{}{
	"GEL": {},
	"USD": {},
	"EUR": {},
}

func IsAllowedCurrency(code string) bool {
	_, ok := AllowedCurrencies[code]
	return ok
}

// IncomeSource is one of the four fixed declaration categories.
type IncomeSource string

const (
	IncomeSourceBankTransaction IncomeSource = "Bank transaction"
	IncomeSourcePOSTerminal     IncomeSource = "POS terminal payment"
	IncomeSourceCash            IncomeSource = "Cash"
	IncomeSourcePaymentSystem   IncomeSource = "Payment system: PayPal, Wise, Deel, etc."
)

// IncomeSources in declaration field order (fields 20, 19, 18, 21).
var IncomeSources = []IncomeSource{
	IncomeSourceBankTransaction,
	IncomeSourcePOSTerminal,
	IncomeSourceCash,
	IncomeSourcePaymentSystem,
}

// ParseIncomeSource matches a cell value against the fixed category labels.
// The label must match exactly after trimming surrounding whitespace.
func ParseIncomeSource(s string) (IncomeSource, bool) {
	trimmed := strings.TrimSpace(s)
	for _, source := range IncomeSources {
		if trimmed == string(source) {
			return source, true
		}
	}
	return "", false
}
