package export

import (
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteDailySpendXLSX grava o agregado diário em uma planilha XLSX
func WriteDailySpendXLSX(path string, rows []*domain.DailySpend) error {
	file := excelize.NewFile()
	defer file.Close()

	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, []interface{}{
			row.Date,
			row.Spend,
			row.Impressions,
			row.Clicks,
			row.Installs,
			ratioCell(row.CPI),
			ratioCell(row.CTR),
			ratioCell(row.CVR),
		})
	}

	if err := writeSheet(file, DailySpendHeader, records); err != nil {
		return err
	}

	return file.SaveAs(path)
}

// WriteAppSpendXLSX grava o agregado por app em uma planilha XLSX
func WriteAppSpendXLSX(path string, rows []*domain.AppSpend) error {
	file := excelize.NewFile()
	defer file.Close()

	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, []interface{}{
			row.Date,
			row.AppID,
			row.Spend,
			row.Impressions,
			row.Clicks,
			row.Installs,
			row.Campaigns,
			ratioCell(row.CPI),
			ratioCell(row.CTR),
			ratioCell(row.CVR),
		})
	}

	if err := writeSheet(file, AppSpendHeader, records); err != nil {
		return err
	}

	return file.SaveAs(path)
}

func writeSheet(file *excelize.File, header []string, records [][]interface{}) error {
	headerRow := make([]interface{}, 0, len(header))
	for _, column := range header {
		headerRow = append(headerRow, column)
	}

	if err := file.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return err
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(sheetName, cell, &record); err != nil {
			return err
		}
	}

	return nil
}

// ratioCell deixa a célula vazia quando a razão é indisponível
func ratioCell(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
