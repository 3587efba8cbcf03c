package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/catebi/go-tax-declaration/internal/common"
	"github.com/catebi/go-tax-declaration/internal/models"
)

// rateResolveConcurrency bounds parallel lookups against the rate service.
const rateResolveConcurrency = 4

// PipelineService turns one raw table submission into declaration totals.
// Prepare and Process are split so the session can validate a table when it
// is submitted and convert it later, once the carry-forward amount arrives.
type PipelineService interface {
	Prepare(ctx context.Context, raw models.LabeledTable) (models.PreparedTable, error)
	Process(ctx context.Context, prepared models.PreparedTable, priorAmount models.Decimal) (models.AggregateTotals, error)
	ProcessTable(ctx context.Context, raw models.LabeledTable, priorAmount models.Decimal) (models.AggregateTotals, error)
}

type pipeline service

var _ PipelineService = (*pipeline)(nil)

// Prepare normalizes the table and parses every row into a transaction
// record, collecting per-row rejections without aborting. Only the case where
// every row is rejected fails the call.
func (s *pipeline) Prepare(ctx context.Context, raw models.LabeledTable) (models.PreparedTable, error) {
	normalized, err := s.srv.Normalizer.Normalize(raw)
	if err != nil {
		return models.PreparedTable{}, err
	}

	var (
		amountIdx = normalized.ColumnIndex(models.ColumnAmount)
		ccyIdx    = normalized.ColumnIndex(models.ColumnCurrency)
		dateIdx   = normalized.ColumnIndex(models.ColumnDate)
		srcIdx    = normalized.ColumnIndex(models.ColumnIncomeSource)
	)

	prepared := models.PreparedTable{SubmissionID: uuid.NewString()}

	for i, row := range normalized.Rows {
		rowNum := i + 1

		record, reason := parseRow(normalized, row, amountIdx, ccyIdx, dateIdx, srcIdx)
		if reason != "" {
			prepared.Rejections = append(prepared.Rejections, models.RowRejection{Row: rowNum, Reason: reason})
			continue
		}

		prepared.Records = append(prepared.Records, record)
	}

	if len(prepared.Rejections) > 0 {
		s.srv.metrics.AddRowsRejected(len(prepared.Rejections))
	}

	if len(prepared.Records) == 0 {
		return models.PreparedTable{}, common.ErrNoValidRows
	}

	s.srv.log.Info("table prepared",
		zap.String("submission_id", prepared.SubmissionID),
		zap.Int("accepted", len(prepared.Records)),
		zap.Int("rejected", len(prepared.Rejections)),
	)

	return prepared, nil
}

// parseRow validates one data row; a non-empty reason rejects it.
func parseRow(t models.LabeledTable, row []string, amountIdx, ccyIdx, dateIdx, srcIdx int) (models.TransactionRecord, string) {
	amount, ok := models.CoerceAmount(t.Cell(row, amountIdx))
	if !ok {
		return models.TransactionRecord{}, "transaction amount is not numeric"
	}

	currency := strings.ToUpper(strings.TrimSpace(t.Cell(row, ccyIdx)))
	if !models.IsAllowedCurrency(currency) {
		return models.TransactionRecord{}, fmt.Sprintf("unsupported currency %q", t.Cell(row, ccyIdx))
	}

	date, err := common.ParseTransactionDate(t.Cell(row, dateIdx))
	if err != nil {
		return models.TransactionRecord{}, fmt.Sprintf("unparseable transaction date %q", t.Cell(row, dateIdx))
	}

	source, ok := models.ParseIncomeSource(t.Cell(row, srcIdx))
	if !ok {
		return models.TransactionRecord{}, fmt.Sprintf("unknown income source %q", t.Cell(row, srcIdx))
	}

	return models.TransactionRecord{
		Amount:   amount,
		Currency: currency,
		Date:     date,
		Source:   source,
	}, ""
}

// Process resolves each distinct (currency, date) pair exactly once, converts
// every record into the base currency and aggregates the totals. Any resolver
// failure aborts the whole call; a partially-converted total is never
// returned.
func (s *pipeline) Process(ctx context.Context, prepared models.PreparedTable, priorAmount models.Decimal) (models.AggregateTotals, error) {
	if len(prepared.Records) == 0 {
		return models.AggregateTotals{}, common.ErrNoValidRows
	}

	rates, err := s.resolveRates(ctx, prepared.Records)
	if err != nil {
		return models.AggregateTotals{}, fmt.Errorf("%w: %w", common.ErrConversionFailed, err)
	}

	results := make([]models.ConversionResult, 0, len(prepared.Records))
	for _, record := range prepared.Records {
		rate := rates[record.RateKey()]
		results = append(results, models.ConversionResult{
			Record:          record,
			Rate:            rate,
			ConvertedAmount: record.Amount.Mul(rate),
		})
	}

	totals := s.srv.Aggregation.Aggregate(results, priorAmount)

	s.srv.log.Info("pipeline run done",
		zap.String("submission_id", prepared.SubmissionID),
		zap.Int("transactions", len(results)),
		zap.Int("distinct_rate_keys", len(rates)),
		zap.String("total_to_date", totals.TotalToDate.String()),
	)

	return totals, nil
}

// ProcessTable is the one-shot contract: normalize, parse, convert, aggregate.
func (s *pipeline) ProcessTable(ctx context.Context, raw models.LabeledTable, priorAmount models.Decimal) (models.AggregateTotals, error) {
	prepared, err := s.Prepare(ctx, raw)
	if err != nil {
		return models.AggregateTotals{}, err
	}
	return s.Process(ctx, prepared, priorAmount)
}

// resolveRates deduplicates (currency, date) pairs across all records and
// resolves each once, concurrently. Every lookup is awaited before conversion
// proceeds.
func (s *pipeline) resolveRates(ctx context.Context, records []models.TransactionRecord) (map[models.RateKey]models.Decimal, error) {
	distinct := make(map[models.RateKey]time.Time)
	for _, record := range records {
		key := record.RateKey()
		if _, seen := distinct[key]; seen {
			s.srv.metrics.IncRateMemoHit()
			continue
		}
		distinct[key] = record.Date
	}

	var (
		mu    sync.Mutex
		rates = make(map[models.RateKey]models.Decimal, len(distinct))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rateResolveConcurrency)

	for key, date := range distinct {
		g.Go(func() error {
			rate, err := s.srv.rateRepo.Lookup(gctx, key.Currency, date)
			if err != nil {
				return fmt.Errorf("resolve %s on %s: %w", key.Currency, key.Date, err)
			}

			mu.Lock()
			rates[key] = rate
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rates, nil
}
