package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/vfg2006/searchads-manager-api/pkg/utils"
)

// Cabeçalhos na mesma ordem das colunas produzidas pelos agregadores
var (
	DailySpendHeader = []string{"date", "spend", "impressions", "clicks", "installs", "cpi", "ctr", "cvr"}
	AppSpendHeader   = []string{"date", "app_id", "spend", "impressions", "clicks", "installs", "campaigns", "cpi", "ctr", "cvr"}
)

// WriteDailySpendCSV serializa o agregado diário em CSV, uma linha por grupo
func WriteDailySpendCSV(w io.Writer, rows []*domain.DailySpend) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(DailySpendHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Date,
			formatAmount(row.Spend),
			strconv.FormatInt(row.Impressions, 10),
			strconv.FormatInt(row.Clicks, 10),
			strconv.FormatInt(row.Installs, 10),
			formatRatio(row.CPI),
			formatRatio(row.CTR),
			formatRatio(row.CVR),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteAppSpendCSV serializa o agregado por app em CSV, uma linha por grupo
func WriteAppSpendCSV(w io.Writer, rows []*domain.AppSpend) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(AppSpendHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Date,
			row.AppID,
			formatAmount(row.Spend),
			strconv.FormatInt(row.Impressions, 10),
			strconv.FormatInt(row.Clicks, 10),
			strconv.FormatInt(row.Installs, 10),
			strconv.Itoa(row.Campaigns),
			formatRatio(row.CPI),
			formatRatio(row.CTR),
			formatRatio(row.CVR),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// DefaultFileName gera um nome de arquivo único para uma exportação
func DefaultFileName(prefix, extension string) string {
	id, err := utils.GenerateID()
	if err != nil {
		id = "export"
	}
	return fmt.Sprintf("%s-%s.%s", prefix, id, extension)
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// formatRatio devolve vazio quando a razão é indisponível (denominador zero)
func formatRatio(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', 2, 64)
}
