package models

import (
	"strings"
)

// CoerceAmount parses a raw amount cell into a Decimal. Currency symbols and
// whitespace are treated as noise and dropped; a single comma with no decimal
// point is read as a decimal separator (1,23 -> 1.23). A cell that still does
// not parse yields ok=false instead of an error so one malformed cell cannot
// abort a whole table.
func CoerceAmount(raw string) (Decimal, bool) {
	cleaned := stripAmountNoise(raw)
	if cleaned == "" {
		return Decimal{}, false
	}

	if strings.Count(cleaned, ",") == 1 && !strings.Contains(cleaned, ".") {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	d, err := NewDecimal(cleaned)
	if err != nil {
		return Decimal{}, false
	}
	return d, true
}

// stripAmountNoise keeps digits, comma, dot and minus only.
func stripAmountNoise(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ',' || r == '.' || r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
