package services_test

import (
	"testing"
	"time"

	"github.com/catebi/go-tax-declaration/internal/models"
)

func TestAggregationService_Aggregate(t *testing.T) {
	testHelper := serviceTestHelper(t)

	day := time.Date(2025, time.August, 14, 0, 0, 0, 0, time.UTC)
	result := func(amount string, source models.IncomeSource) models.ConversionResult {
		return models.ConversionResult{
			Record:          models.TransactionRecord{Currency: "GEL", Date: day, Source: source},
			Rate:            mustDecimal(t, "1"),
			ConvertedAmount: mustDecimal(t, amount),
		}
	}

	tests := []struct {
		name      string
		results   []models.ConversionResult
		prior     string
		wantTotal string
		wantCash  string
		wantPOS   string
		wantBank  string
		wantPay   string
	}{
		{
			name: "each category buckets its own label",
			results: []models.ConversionResult{
				result("100", models.IncomeSourceCash),
				result("200", models.IncomeSourcePOSTerminal),
				result("300", models.IncomeSourceBankTransaction),
				result("400", models.IncomeSourcePaymentSystem),
				result("50", models.IncomeSourceCash),
			},
			prior:     "0",
			wantTotal: "1050",
			wantCash:  "150",
			wantPOS:   "200",
			wantBank:  "300",
			wantPay:   "400",
		},
		{
			name: "prior amount lands in the total only",
			results: []models.ConversionResult{
				result("100", models.IncomeSourceCash),
			},
			prior:     "900",
			wantTotal: "1000",
			wantCash:  "100",
			wantPOS:   "0",
			wantBank:  "0",
			wantPay:   "0",
		},
		{
			name: "negative amounts reduce their category",
			results: []models.ConversionResult{
				result("500", models.IncomeSourceBankTransaction),
				result("-120.50", models.IncomeSourceBankTransaction),
			},
			prior:     "0",
			wantTotal: "379.5",
			wantCash:  "0",
			wantPOS:   "0",
			wantBank:  "379.5",
			wantPay:   "0",
		},
		{
			name:      "no transactions means totals equal the prior amount",
			results:   nil,
			prior:     "42",
			wantTotal: "42",
			wantCash:  "0",
			wantPOS:   "0",
			wantBank:  "0",
			wantPay:   "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := testHelper.srv.Aggregation.Aggregate(tt.results, mustDecimal(t, tt.prior))

			assertDecimalEqual(t, tt.wantTotal, totals.TotalToDate)
			assertDecimalEqual(t, tt.wantCash, totals.Cash)
			assertDecimalEqual(t, tt.wantPOS, totals.POSTerminal)
			assertDecimalEqual(t, tt.wantBank, totals.BankTransaction)
			assertDecimalEqual(t, tt.wantPay, totals.PaymentSystem)
			assertDecimalEqual(t, tt.prior, totals.PriorAmount)
		})
	}
}
