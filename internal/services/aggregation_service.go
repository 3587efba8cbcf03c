package services

import (
	"github.com/catebi/go-tax-declaration/internal/models"
)

// AggregationService buckets converted transactions into the declaration
// categories and folds in the carried-forward prior total.
type AggregationService interface {
	Aggregate(results []models.ConversionResult, priorAmount models.Decimal) models.AggregateTotals
}

type aggregation service

var _ AggregationService = (*aggregation)(nil)

// Aggregate is deterministic: total-to-date is the sum of all converted
// amounts plus the prior amount; each category subtotal sums only its own
// label and excludes the prior amount. A category absent from the batch
// stays zero.
func (s *aggregation) Aggregate(results []models.ConversionResult, priorAmount models.Decimal) models.AggregateTotals {
	totals := models.AggregateTotals{PriorAmount: priorAmount}

	current := models.NewDecimalFromInt(0)
	for _, res := range results {
		current = current.Add(res.ConvertedAmount)

		switch res.Record.Source {
		case models.IncomeSourceCash:
			totals.Cash = totals.Cash.Add(res.ConvertedAmount)
		case models.IncomeSourcePOSTerminal:
			totals.POSTerminal = totals.POSTerminal.Add(res.ConvertedAmount)
		case models.IncomeSourceBankTransaction:
			totals.BankTransaction = totals.BankTransaction.Add(res.ConvertedAmount)
		case models.IncomeSourcePaymentSystem:
			totals.PaymentSystem = totals.PaymentSystem.Add(res.ConvertedAmount)
		}
	}

	totals.TotalToDate = current.Add(priorAmount)

	return totals
}
