package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/catebi/go-tax-declaration/internal/models"
	"github.com/catebi/go-tax-declaration/internal/repositories"
)

// TemplateService builds the data-entry workbook handed to the user: a Data
// sheet with localized headers, a few sample rows and dropdown validations
// for currency and income source.
type TemplateService interface {
	Build(lang models.Language) (models.TemplateFile, error)
}

type template service

var _ TemplateService = (*template)(nil)

const templateValidationRows = 1000

var templateHeaders = map[models.Language][]string{
	models.LanguageEN: {"Transaction amount", "Currency", "Transaction date", "Income source"},
	models.LanguageRU: {"Сумма транзакции", "Валюта", "Дата транзакции", "Источник дохода"},
}

var templateFilenames = map[models.Language]string{
	models.LanguageEN: "template.xlsx",
	models.LanguageRU: "налоговый_шаблон.xlsx",
}

type templateSampleRow struct {
	amount   int
	currency string
	date     time.Time
	source   models.IncomeSource
}

var templateSamples = []templateSampleRow{
	{1000, "USD", time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC), models.IncomeSourceBankTransaction},
	{500, "EUR", time.Date(1999, time.January, 2, 0, 0, 0, 0, time.UTC), models.IncomeSourcePaymentSystem},
	{200, "GEL", time.Date(1999, time.January, 3, 0, 0, 0, 0, time.UTC), models.IncomeSourceCash},
	{300, "USD", time.Date(1999, time.January, 4, 0, 0, 0, 0, time.UTC), models.IncomeSourcePOSTerminal},
}

func (s *template) Build(lang models.Language) (models.TemplateFile, error) {
	headers, ok := templateHeaders[lang]
	if !ok {
		headers = templateHeaders[models.LanguageEN]
		lang = models.LanguageEN
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := repositories.TransactionSheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return models.TemplateFile{}, err
	}

	headerStyle, cellStyle, dateStyle, err := templateStyles(f)
	if err != nil {
		return models.TemplateFile{}, err
	}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return models.TemplateFile{}, err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return models.TemplateFile{}, err
	}

	for _, w := range []struct {
		col   string
		width float64
	}{
		{"A", 18}, {"B", 10}, {"C", 18}, {"D", 42},
	} {
		if err := f.SetColWidth(sheet, w.col, w.col, w.width); err != nil {
			return models.TemplateFile{}, err
		}
	}

	for i, sample := range templateSamples {
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sample.amount); err != nil {
			return models.TemplateFile{}, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sample.currency); err != nil {
			return models.TemplateFile{}, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", row), sample.date); err != nil {
			return models.TemplateFile{}, err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", row), string(sample.source)); err != nil {
			return models.TemplateFile{}, err
		}

		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), cellStyle); err != nil {
			return models.TemplateFile{}, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), dateStyle); err != nil {
			return models.TemplateFile{}, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), cellStyle); err != nil {
			return models.TemplateFile{}, err
		}
	}

	if err := addDropList(f, sheet, fmt.Sprintf("B2:B%d", templateValidationRows+1), []string{"GEL", "USD", "EUR"}); err != nil {
		return models.TemplateFile{}, err
	}

	sources := make([]string, len(models.IncomeSources))
	for i, src := range models.IncomeSources {
		sources[i] = string(src)
	}
	if err := addDropList(f, sheet, fmt.Sprintf("D2:D%d", templateValidationRows+1), sources); err != nil {
		return models.TemplateFile{}, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return models.TemplateFile{}, fmt.Errorf("write template workbook: %w", err)
	}

	return models.TemplateFile{
		Filename: templateFilenames[lang],
		Content:  buf.Bytes(),
	}, nil
}

func templateStyles(f *excelize.File) (header, cell, date int, err error) {
	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"D7E4BC"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return 0, 0, 0, err
	}

	cell, err = f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return 0, 0, 0, err
	}

	dateFmt := "dd.mm.yyyy"
	date, err = f.NewStyle(&excelize.Style{Border: border, CustomNumFmt: &dateFmt})
	if err != nil {
		return 0, 0, 0, err
	}

	return header, cell, date, nil
}

func addDropList(f *excelize.File, sheet, sqref string, options []string) error {
	dv := excelize.NewDataValidation(true)
	dv.Sqref = sqref
	if err := dv.SetDropList(options); err != nil {
		return err
	}
	return f.AddDataValidation(sheet, dv)
}
