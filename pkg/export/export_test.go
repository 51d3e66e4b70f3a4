package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestWriteDailySpendCSV(t *testing.T) {
	rows := []*domain.DailySpend{
		{
			Date:        "2024-01-01",
			Spend:       150.0,
			Impressions: 1500,
			Clicks:      75,
			Installs:    15,
			CPI:         floatPtr(10.0),
			CTR:         floatPtr(5.0),
			CVR:         floatPtr(20.0),
		},
		{
			Date:  "2024-01-02",
			Spend: 75.0,
			// Razões indisponíveis (denominadores zero)
		},
	}

	var buffer bytes.Buffer
	require.NoError(t, WriteDailySpendCSV(&buffer, rows))

	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	// Cabeçalho na ordem das colunas do agregador
	assert.Equal(t, DailySpendHeader, records[0])
	assert.Equal(t, []string{"2024-01-01", "150.00", "1500", "75", "15", "10.00", "5.00", "20.00"}, records[1])
	// Razão indisponível vira célula vazia
	assert.Equal(t, []string{"2024-01-02", "75.00", "0", "0", "0", "", "", ""}, records[2])
}

func TestWriteAppSpendCSV(t *testing.T) {
	rows := []*domain.AppSpend{
		{
			Date:        "2024-01-01",
			AppID:       "123456",
			Spend:       100.0,
			Impressions: 1000,
			Clicks:      50,
			Installs:    10,
			Campaigns:   2,
			CPI:         floatPtr(10.0),
		},
		{
			Date:      "2024-01-01",
			AppID:     domain.UnknownAppID,
			Spend:     50.0,
			Campaigns: 1,
		},
	}

	var buffer bytes.Buffer
	require.NoError(t, WriteAppSpendCSV(&buffer, rows))

	records, err := csv.NewReader(&buffer).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, AppSpendHeader, records[0])
	assert.Equal(t, []string{"2024-01-01", "123456", "100.00", "1000", "50", "10", "2", "10.00", "", ""}, records[1])
	assert.Equal(t, "unknown", records[2][1])
}

func TestWriteDailySpendXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.xlsx")

	rows := []*domain.DailySpend{
		{Date: "2024-01-01", Spend: 150.0, Impressions: 1500, Clicks: 75, Installs: 15, CPI: floatPtr(10.0)},
	}
	require.NoError(t, WriteDailySpendXLSX(path, rows))

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	sheetRows, err := file.GetRows("Sheet1")
	require.NoError(t, err)

	require.Len(t, sheetRows, 2)
	assert.Equal(t, DailySpendHeader, sheetRows[0])
	assert.Equal(t, "2024-01-01", sheetRows[1][0])
	assert.Equal(t, "150", sheetRows[1][1])
}

func TestDefaultFileName(t *testing.T) {
	name := DefaultFileName("daily-spend", "csv")

	assert.Contains(t, name, "daily-spend-")
	assert.Contains(t, name, ".csv")
	assert.NotEqual(t, name, DefaultFileName("daily-spend", "csv"))
}
