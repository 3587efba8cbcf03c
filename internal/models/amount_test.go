package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/catebi/go-tax-declaration/internal/models"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "plain integer", raw: "1000", want: "1000", wantOK: true},
		{name: "decimal point", raw: "1234.56", want: "1234.56", wantOK: true},
		{name: "single comma as decimal separator", raw: "1,23", want: "1.23", wantOK: true},
		{name: "currency symbol and spaces stripped", raw: "$ 1 000.50", want: "1000.50", wantOK: true},
		{name: "trailing currency code stripped", raw: "250 GEL", want: "250", wantOK: true},
		{name: "negative amount", raw: "-45.10", want: "-45.1", wantOK: true},
		{name: "zero is valid", raw: "0", want: "0", wantOK: true},
		{name: "empty cell", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "no digits", raw: "n/a"},
		{name: "comma and dot together", raw: "1,234.56"},
		{name: "two commas", raw: "1,234,567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := models.CoerceAmount(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}
