package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/catebi/go-tax-declaration/internal/config"
	"github.com/catebi/go-tax-declaration/internal/models"
	"github.com/catebi/go-tax-declaration/internal/repositories"
	"github.com/catebi/go-tax-declaration/internal/repositories/mock"
	"github.com/catebi/go-tax-declaration/internal/services"
	"github.com/catebi/go-tax-declaration/internal/sessions"

	commonmetrics "github.com/catebi/go-tax-declaration/internal/common/metrics"
)

type testServiceHelper struct {
	mockCtrl      *gomock.Controller
	mockRateRepo  *mock.MockRateRepository
	fakeSheetRepo *fakeSheetRepository
	store         *sessions.Store
	srv           *services.Services
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	return serviceTestHelperWithInitial(t, models.StateAwaitingLanguage)
}

func serviceTestHelperWithInitial(t *testing.T, initial models.SessionState) testServiceHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockRateRepo := mock.NewMockRateRepository(mockCtrl)
	fakeSheetRepo := &fakeSheetRepository{}
	store := sessions.NewStore(initial)

	srv := services.New(
		config.Config{},
		zap.NewNop(),
		commonmetrics.New(prometheus.NewRegistry()),
		mockRateRepo,
		repositories.NewWorkbookRepository(),
		fakeSheetRepo,
		store,
	)

	return testServiceHelper{
		mockCtrl:      mockCtrl,
		mockRateRepo:  mockRateRepo,
		fakeSheetRepo: fakeSheetRepo,
		store:         store,
		srv:           srv,
	}
}

// fakeSheetRepository stands in for the remote spreadsheet source; the tests
// exercise the real workbook repository instead.
type fakeSheetRepository struct {
	table models.LabeledTable
	err   error
}

func (f *fakeSheetRepository) ReadTransactionTable(_ context.Context, _ string) (models.LabeledTable, error) {
	return f.table, f.err
}

// transactionTable builds a labeled table with the canonical column order:
// amount, currency, date, income source.
func transactionTable(rows ...[]string) models.LabeledTable {
	return models.LabeledTable{
		Labels: []string{models.ColumnAmount, models.ColumnCurrency, models.ColumnDate, models.ColumnIncomeSource},
		Rows:   rows,
	}
}

// buildWorkbook renders rows into an xlsx Data sheet, the way a user upload
// arrives over the wire.
func buildWorkbook(t *testing.T, labels []string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", repositories.TransactionSheetName))

	for col, label := range labels {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(repositories.TransactionSheetName, cell, label))
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(repositories.TransactionSheetName, cell, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func mustDecimal(t *testing.T, value string) models.Decimal {
	t.Helper()

	d, err := models.NewDecimal(value)
	require.NoError(t, err)
	return d
}

func assertDecimalEqual(t *testing.T, want string, got models.Decimal) {
	t.Helper()

	if !got.Equal(mustDecimal(t, want).Decimal) {
		t.Errorf("decimal mismatch: want %s, got %s", want, got.String())
	}
}
