package models

// Canonical column labels of the transaction schema, in semantic order.
const (
	ColumnAmount       = "Transaction amount"
	ColumnCurrency     = "Currency"
	ColumnDate         = "Transaction date"
	ColumnIncomeSource = "Income source"
)

// RequiredColumns must all be present after label normalization.
var RequiredColumns = []string{
	ColumnAmount,
	ColumnCurrency,
	ColumnDate,
	ColumnIncomeSource,
}

// AlternateColumnLabels maps the Russian template labels onto the canonical
// ones. Unmapped labels pass through untouched.
var AlternateColumnLabels = map[string]string{
	"Сумма транзакции": ColumnAmount,
	"Валюта":           ColumnCurrency,
	"Дата транзакции":  ColumnDate,
	"Источник дохода":  ColumnIncomeSource,
}

// LabeledTable is the generic labeled-table shape every ingestion source
// produces: a label row plus ordered data rows of raw cell text. Rows may be
// ragged; missing trailing cells read as empty.
type LabeledTable struct {
	Labels []string
	Rows   [][]string
}

// ColumnIndex returns the position of a label, or -1 when absent.
func (t LabeledTable) ColumnIndex(label string) int {
	for i, l := range t.Labels {
		if l == label {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed-to-existing cell value of a row, tolerating rows
// shorter than the label row.
func (t LabeledTable) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
