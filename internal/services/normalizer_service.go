package services

import (
	"github.com/catebi/go-tax-declaration/internal/common"
	"github.com/catebi/go-tax-declaration/internal/models"
)

// NormalizerService maps an arbitrary labeled table onto the canonical
// transaction schema and crops trailing template-artifact rows.
type NormalizerService interface {
	Normalize(table models.LabeledTable) (models.LabeledTable, error)
}

type normalizer service

var _ NormalizerService = (*normalizer)(nil)

// Normalize renames alternate-language labels onto the canonical ones, fails
// with *common.MissingColumnError when a required column is absent after
// renaming, and drops every row after the last one whose amount cell parses.
func (s *normalizer) Normalize(table models.LabeledTable) (models.LabeledTable, error) {
	labels := make([]string, len(table.Labels))
	for i, label := range table.Labels {
		if canonical, ok := models.AlternateColumnLabels[label]; ok {
			labels[i] = canonical
			continue
		}
		labels[i] = label
	}

	out := models.LabeledTable{Labels: labels, Rows: table.Rows}

	for _, required := range models.RequiredColumns {
		if out.ColumnIndex(required) < 0 {
			return models.LabeledTable{}, &common.MissingColumnError{Column: required}
		}
	}

	out.Rows = cropToLastTransaction(out)

	return out, nil
}

// cropToLastTransaction scans the amount column from the last row upward and
// keeps everything up to the last parseable amount. Zero is a valid amount;
// only cells that do not parse at all count as blank. When no amount parses
// the rows are kept as-is and row parsing rejects them individually.
func cropToLastTransaction(table models.LabeledTable) [][]string {
	amountIdx := table.ColumnIndex(models.ColumnAmount)

	for i := len(table.Rows) - 1; i >= 0; i-- {
		if _, ok := models.CoerceAmount(table.Cell(table.Rows[i], amountIdx)); ok {
			return table.Rows[:i+1]
		}
	}
	return table.Rows
}
