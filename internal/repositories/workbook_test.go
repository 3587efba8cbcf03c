package repositories_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/catebi/go-tax-declaration/internal/common"
	"github.com/catebi/go-tax-declaration/internal/repositories"
)

func workbookBytes(t *testing.T, sheet string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestWorkbookRepository_ReadTransactionTable(t *testing.T) {
	repo := repositories.NewWorkbookRepository()

	t.Run("labels and data rows split", func(t *testing.T) {
		content := workbookBytes(t, repositories.TransactionSheetName, [][]string{
			{"Transaction amount", "Currency", "Transaction date", "Income source"},
			{"1000", "USD", "14.08.2025", "Bank transaction"},
			{"200", "GEL", "15.08.2025", "Cash"},
		})

		table, err := repo.ReadTransactionTable(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, []string{"Transaction amount", "Currency", "Transaction date", "Income source"}, table.Labels)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, []string{"1000", "USD", "14.08.2025", "Bank transaction"}, table.Rows[0])
	})

	t.Run("data worksheet missing", func(t *testing.T) {
		content := workbookBytes(t, "Expenses", [][]string{{"whatever"}})

		_, err := repo.ReadTransactionTable(context.Background(), content)
		require.ErrorIs(t, err, common.ErrWorksheetMissing)
	})

	t.Run("not a workbook", func(t *testing.T) {
		_, err := repo.ReadTransactionTable(context.Background(), []byte("definitely not xlsx"))
		require.Error(t, err)
	})

	t.Run("empty worksheet", func(t *testing.T) {
		content := workbookBytes(t, repositories.TransactionSheetName, nil)

		table, err := repo.ReadTransactionTable(context.Background(), content)
		require.NoError(t, err)
		assert.Empty(t, table.Labels)
		assert.Empty(t, table.Rows)
	})
}
