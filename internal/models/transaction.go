package models

import (
	"time"
)

// TransactionRecord is one validated row of input: sign-preserving amount,
// currency from the fixed set, calendar date (no time component) and income
// source category. Immutable once built.
type TransactionRecord struct {
	Amount   Decimal      `json:"amount"`
	Currency string       `json:"currency"`
	Date     time.Time    `json:"date"`
	Source   IncomeSource `json:"income_source"`
}

// RateKey identifies one point-in-time conversion rate. Comparable, so it can
// key the per-run memoization map.
type RateKey struct {
	Currency string
	Date     string // YYYY-MM-DD
}

func (r TransactionRecord) RateKey() RateKey {
	return RateKey{
		Currency: r.Currency,
		Date:     r.Date.Format("2006-01-02"),
	}
}

// RowRejection is a per-row, non-fatal parse defect. Row is the 1-based data
// row number (the label row excluded).
type RowRejection struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// PreparedTable is the outcome of normalizing and row-parsing one submission:
// the accepted records plus the rejections collected along the way. No
// conversion has happened yet.
type PreparedTable struct {
	SubmissionID string
	Records      []TransactionRecord
	Rejections   []RowRejection
}

// ConversionResult attaches the resolved rate and the base-currency amount to
// a record. Owned by the pipeline for the duration of one run.
type ConversionResult struct {
	Record          TransactionRecord
	Rate            Decimal
	ConvertedAmount Decimal
}

// TableReceipt is what the session surfaces after a table submission was
// validated and stored.
type TableReceipt struct {
	SubmissionID string         `json:"submission_id"`
	RowsAccepted int            `json:"rows_accepted"`
	Rejections   []RowRejection `json:"rejections,omitempty"`
}
