package common

import (
	"errors"
	"strings"
	"time"
)

// DateLayout
const (
	DateFormatDDMMYYYY = "02.01.2006"
	DateFormatYYYYMMDD = "2006-01-02"
)

var ErrInvalidDate = errors.New("invalid transaction date")

// transactionDateLayouts in match order: the template renders DD.MM.YYYY,
// collaborative sheets often re-render dates as ISO.
var transactionDateLayouts = []string{
	DateFormatDDMMYYYY,
	DateFormatYYYYMMDD,
}

// ParseTransactionDate parses a calendar date cell. The result carries no
// time component and no location offset.
func ParseTransactionDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range transactionDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
