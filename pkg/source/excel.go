// pkg/source/excel.go

// Package source loads registry records and reference place lists from the
// supported inputs: Excel workbooks, CSV files, and SQL databases.
package source

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dwiprasetyo/registry-qc/pkg/model"
)

// ReadWorkbook loads registry records from every sheet of an Excel workbook.
// The first row of each sheet is the header; each sheet must carry all
// required columns or the whole read fails. Empty cells become missing
// values, everything else is kept as verbatim text.
func ReadWorkbook(path string, logger *zap.Logger) ([]model.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	var records []model.Record
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			logger.Warn("Skipping empty sheet", zap.String("sheet", sheet))
			continue
		}

		header := rows[0]
		columns := make(map[string]int, len(header))
		for i, name := range header {
			columns[strings.TrimSpace(name)] = i
		}

		var missing []string
		for _, field := range model.RequiredFields {
			if _, ok := columns[field]; !ok {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("sheet %s is missing required columns: %s",
				sheet, strings.Join(missing, ", "))
		}

		for _, row := range rows[1:] {
			rec := make(model.Record, len(model.RequiredFields))
			for _, field := range model.RequiredFields {
				idx := columns[field]
				if idx >= len(row) || row[idx] == "" {
					rec[field] = model.Missing()
					continue
				}
				rec[field] = model.Text(row[idx])
			}
			records = append(records, rec)
		}

		logger.Debug("Loaded sheet",
			zap.String("sheet", sheet),
			zap.Int("rows", len(rows)-1))
	}

	logger.Info("Loaded workbook",
		zap.String("path", path),
		zap.Int("records", len(records)))

	return records, nil
}
