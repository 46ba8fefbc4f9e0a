package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"partscope/internal/domain"
	"partscope/internal/logging"
)

// LoadExcel reads the first sheet of an xlsx workbook. The header row
// supplies the field keys; every following row becomes one record.
// Short rows yield empty values for the trailing columns.
func LoadExcel(path string) ([]domain.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]domain.Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := make(domain.Record, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				record[key] = row[i]
			} else {
				record[key] = ""
			}
		}
		records = append(records, record)
	}

	logging.Info("loaded excel data", "path", path, "sheet", sheets[0], "records", len(records))
	return records, nil
}
