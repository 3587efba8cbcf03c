package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catebi/go-tax-declaration/internal/models"
)

func TestAggregateTotals_DeclarationFields(t *testing.T) {
	totals := models.AggregateTotals{
		TotalToDate:     models.NewDecimalFromInt(3400),
		Cash:            models.NewDecimalFromInt(200),
		POSTerminal:     models.NewDecimalFromInt(0),
		BankTransaction: models.NewDecimalFromInt(2700),
		PaymentSystem:   models.NewDecimalFromInt(0),
		PriorAmount:     models.NewDecimalFromInt(500),
	}

	fields := totals.DeclarationFields()
	require.Len(t, fields, 5)

	assert.Equal(t, "Field 15", fields[0].Field)
	assert.Equal(t, "3400", fields[0].Amount.String())
	assert.Equal(t, "Field 18", fields[1].Field)
	assert.Equal(t, "200", fields[1].Amount.String())
	assert.Equal(t, "Field 19", fields[2].Field)
	assert.Equal(t, "Field 20", fields[3].Field)
	assert.Equal(t, "2700", fields[3].Amount.String())
	assert.Equal(t, "Field 21", fields[4].Field)
}

func TestAggregateTotals_JSONNumbersUnquoted(t *testing.T) {
	totals := models.AggregateTotals{TotalToDate: models.NewDecimalFromInt(3400)}

	raw, err := json.Marshal(totals)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total_to_date":3400`)
}
