package session

import (
	"errors"
	nethttp "net/http"

	"github.com/catebi/go-tax-declaration/internal/common"
)

// getHTTPStatusCode will return http status code based on error
func getHTTPStatusCode(err error) int {
	if err == nil {
		return nethttp.StatusOK
	}

	if errors.Is(err, common.ErrInvalidTransition) {
		return nethttp.StatusConflict
	}

	if errors.Is(err, common.ErrUnknownLanguage) ||
		errors.Is(err, common.ErrInvalidAmountInput) ||
		errors.Is(err, common.ErrEmptySubmission) ||
		errors.Is(err, common.ErrInvalidSheetLink) ||
		errors.Is(err, common.ErrWorksheetMissing) {
		return nethttp.StatusBadRequest
	}

	var missingColumn *common.MissingColumnError
	if errors.As(err, &missingColumn) || errors.Is(err, common.ErrNoValidRows) {
		return nethttp.StatusUnprocessableEntity
	}

	if errors.Is(err, common.ErrConversionFailed) ||
		errors.Is(err, common.ErrRateUnavailable) ||
		errors.Is(err, common.ErrRateService) {
		return nethttp.StatusBadGateway
	}

	return nethttp.StatusInternalServerError
}
