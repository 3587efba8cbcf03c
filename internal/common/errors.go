package common

import (
	"errors"
	"fmt"
)

var (
	ErrNoValidRows        = errors.New("no valid transaction rows in table")
	ErrRateUnavailable    = errors.New("no rate published for currency and date")
	ErrRateService        = errors.New("rate service request failed")
	ErrConversionFailed   = errors.New("currency conversion failed")
	ErrInvalidAmountInput = errors.New("carry-forward amount is not numeric")
	ErrInvalidTransition  = errors.New("input is not valid for the current session state")
	ErrUnknownLanguage    = errors.New("unknown language choice")
	ErrNoPendingTable     = errors.New("no validated table stored for this session")
	ErrEmptySubmission    = errors.New("submission carries neither a workbook nor a sheet link")
	ErrInvalidSheetLink   = errors.New("invalid google sheets link")
	ErrWorksheetMissing   = errors.New("workbook has no transaction data worksheet")
)

// MissingColumnError reports which required canonical column is absent after
// label normalization. User-correctable.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Column)
}
