// pkg/report/excel.go
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dwiprasetyo/registry-qc/pkg/model"
)

const (
	summarySheet = "Summary"
	cleanSheet   = "Clean"
	messySheet   = "Messy"

	checkDescColumn = "CHECK_DESC"
)

// WriteReport writes the classification result to an Excel workbook with
// three sheets: headline counts, the clean partition, and the messy
// partition annotated with failure descriptions.
func WriteReport(path string, result *model.BatchResult, logger *zap.Logger) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}

	summary := NewSummary(result)
	summaryRows := [][]interface{}{
		{"Metric", "Count"},
		{"Total Records", summary.Total},
		{"Clean Records", summary.Clean},
		{"Messy Records", summary.Messy},
	}
	for i, row := range summaryRows {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}

	if err := writeRecordSheet(f, cleanSheet, result.Clean, nil); err != nil {
		return err
	}

	messyRecords := make([]model.Record, len(result.Messy))
	descriptions := make([]string, len(result.Messy))
	for i, annotated := range result.Messy {
		messyRecords[i] = annotated.Record
		descriptions[i] = annotated.CheckDesc
	}
	if err := writeRecordSheet(f, messySheet, messyRecords, descriptions); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}

	logger.Info("Report written",
		zap.String("path", path),
		zap.Int("total", summary.Total),
		zap.Int("clean", summary.Clean),
		zap.Int("messy", summary.Messy))

	return nil
}

// writeRecordSheet writes a header row plus one row per record. When
// descriptions is non-nil a trailing CHECK_DESC column carries the failure
// description of each record.
func writeRecordSheet(f *excelize.File, sheet string, records []model.Record, descriptions []string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	header := make([]interface{}, 0, len(model.RequiredFields)+1)
	for _, field := range model.RequiredFields {
		header = append(header, field)
	}
	if descriptions != nil {
		header = append(header, checkDescColumn)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of sheet %s: %w", sheet, err)
	}

	for i, rec := range records {
		row := make([]interface{}, 0, len(header))
		for _, field := range model.RequiredFields {
			row = append(row, rec.Get(field).Raw())
		}
		if descriptions != nil {
			row = append(row, descriptions[i])
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+2, sheet, err)
		}
	}

	return nil
}
