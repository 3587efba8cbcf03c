package repositories

import (
	"context"
	"fmt"
	"regexp"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/catebi/go-tax-declaration/internal/common"
	"github.com/catebi/go-tax-declaration/internal/config"
	"github.com/catebi/go-tax-declaration/internal/models"
)

// SheetRepository reads a remote collaborative spreadsheet, read-only, into
// the same labeled-table shape the workbook source yields.
type SheetRepository interface {
	ReadTransactionTable(ctx context.Context, link string) (models.LabeledTable, error)
}

type googleSheet struct {
	credentialsPath string
}

var _ SheetRepository = (*googleSheet)(nil)

func NewGoogleSheetRepository(cfg config.GoogleSheets) SheetRepository {
	return &googleSheet{credentialsPath: cfg.CredentialsPath}
}

var sheetIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)

// SpreadsheetID extracts the document ID from a Google Sheets URL.
func SpreadsheetID(link string) (string, error) {
	m := sheetIDPattern.FindStringSubmatch(link)
	if m == nil {
		return "", common.ErrInvalidSheetLink
	}
	return m[1], nil
}

func (g *googleSheet) ReadTransactionTable(ctx context.Context, link string) (models.LabeledTable, error) {
	spreadsheetID, err := SpreadsheetID(link)
	if err != nil {
		return models.LabeledTable{}, err
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(g.credentialsPath),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return models.LabeledTable{}, fmt.Errorf("init sheets client: %w", err)
	}

	// the used range of the first sheet; formulas come back evaluated
	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, "A:Z").
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return models.LabeledTable{}, fmt.Errorf("read spreadsheet %s: %w", spreadsheetID, err)
	}

	if len(resp.Values) == 0 {
		return models.LabeledTable{}, nil
	}

	table := models.LabeledTable{
		Labels: cellsToStrings(resp.Values[0]),
	}
	for _, row := range resp.Values[1:] {
		table.Rows = append(table.Rows, cellsToStrings(row))
	}

	return table, nil
}

func cellsToStrings(cells []interface{}) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		if cell == nil {
			continue
		}
		if s, ok := cell.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(cell)
	}
	return out
}
