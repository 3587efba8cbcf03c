package repositories

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/catebi/go-tax-declaration/internal/common"
	"github.com/catebi/go-tax-declaration/internal/models"
)

// TransactionSheetName is the worksheet both the template and submissions use.
const TransactionSheetName = "Data"

// WorkbookRepository reads an uploaded xlsx byte buffer into the generic
// labeled-table shape.
type WorkbookRepository interface {
	ReadTransactionTable(ctx context.Context, content []byte) (models.LabeledTable, error)
}

type workbook struct {
	sheetName string
}

var _ WorkbookRepository = (*workbook)(nil)

func NewWorkbookRepository() WorkbookRepository {
	return &workbook{sheetName: TransactionSheetName}
}

func (w *workbook) ReadTransactionTable(_ context.Context, content []byte) (models.LabeledTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return models.LabeledTable{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(w.sheetName); err != nil || idx < 0 {
		return models.LabeledTable{}, fmt.Errorf("%w: want sheet %q", common.ErrWorksheetMissing, w.sheetName)
	}

	rows, err := f.GetRows(w.sheetName)
	if err != nil {
		return models.LabeledTable{}, fmt.Errorf("read sheet %q: %w", w.sheetName, err)
	}

	if len(rows) == 0 {
		return models.LabeledTable{}, nil
	}

	return models.LabeledTable{
		Labels: rows[0],
		Rows:   rows[1:],
	}, nil
}
