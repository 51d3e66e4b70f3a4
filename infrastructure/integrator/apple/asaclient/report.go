package asaclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	appledomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/apple/domain"
	"github.com/vfg2006/searchads-manager-api/pkg/utils"
)

type ReportRequest struct {
	StartTime                  string         `json:"startTime"`
	EndTime                    string         `json:"endTime"`
	Granularity                string         `json:"granularity"`
	Selector                   ReportSelector `json:"selector"`
	TimeZone                   string         `json:"timeZone"`
	ReturnRecordsWithNoMetrics bool           `json:"returnRecordsWithNoMetrics"`
	ReturnRowTotals            bool           `json:"returnRowTotals"`
	ReturnGrandTotals          bool           `json:"returnGrandTotals"`
}

type ReportSelector struct {
	OrderBy    []ReportOrderBy  `json:"orderBy"`
	Pagination ReportPagination `json:"pagination"`
}

type ReportOrderBy struct {
	Field     string `json:"field"`
	SortOrder string `json:"sortOrder"`
}

type ReportPagination struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ResponseReport struct {
	Data appledomain.ReportData `json:"data"`
}

// FetchReport busca o relatório de performance de campanhas do período e
// achata a resposta aninhada (metadados + buckets de granularidade) em uma
// linha por (campanha, período). Períodos maiores que o limite da API são
// divididos em sub-períodos consecutivos. Relatório sem linhas devolve uma
// lista vazia, nunca erro
func (c *AppleAdsClient) FetchReport(ctx context.Context, startDate, endDate time.Time, granularity string, orgID int64) ([]appledomain.ReportRow, error) {
	maxRangeDays := c.Cfg.Report.MaxRangeDays
	if maxRangeDays <= 0 {
		maxRangeDays = 90
	}

	rows := make([]appledomain.ReportRow, 0)
	for _, dateRange := range utils.SplitDateRange(startDate, endDate, maxRangeDays) {
		chunkRows, err := c.fetchReportChunk(ctx, dateRange[0], dateRange[1], granularity, orgID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, chunkRows...)
	}

	return rows, nil
}

func (c *AppleAdsClient) fetchReportChunk(ctx context.Context, startDate, endDate time.Time, granularity string, orgID int64) ([]appledomain.ReportRow, error) {
	endpoint := fmt.Sprintf("%s/reports/campaigns", c.Cfg.AppleAds.BaseURL)

	pageSize := c.Cfg.Report.PageSize
	if pageSize <= 0 {
		pageSize = 1000
	}

	request := ReportRequest{
		StartTime:   startDate.Format(time.DateOnly),
		EndTime:     endDate.Format(time.DateOnly),
		Granularity: granularity,
		Selector: ReportSelector{
			OrderBy: []ReportOrderBy{
				{Field: "localSpend", SortOrder: "DESCENDING"},
			},
			Pagination: ReportPagination{Offset: 0, Limit: pageSize},
		},
		TimeZone:                   "UTC",
		ReturnRecordsWithNoMetrics: false,
		ReturnRowTotals:            false,
		ReturnGrandTotals:          false,
	}

	var response ResponseReport
	if err := c.makeRequest(ctx, http.MethodPost, endpoint, request, nil, orgID, &response); err != nil {
		return nil, err
	}

	return flattenReport(response.Data.ReportingDataResponse.Row), nil
}

// flattenReport transforma a estrutura aninhada da API em linhas tabulares:
// spend = localSpend.amount, installs = totalInstalls; taps é renomeado para
// "clicks" apenas na camada de agregação
func flattenReport(responseRows []appledomain.ReportResponseRow) []appledomain.ReportRow {
	rows := make([]appledomain.ReportRow, 0, len(responseRows))

	for _, responseRow := range responseRows {
		for _, bucket := range responseRow.Granularity {
			rows = append(rows, appledomain.ReportRow{
				Date:         bucket.Date,
				CampaignID:   responseRow.Metadata.CampaignID,
				CampaignName: responseRow.Metadata.CampaignName,
				AdamID:       responseRow.Metadata.AdamID,
				Impressions:  bucket.Impressions,
				Taps:         bucket.Taps,
				Installs:     bucket.TotalInstalls,
				Spend:        bucket.LocalSpend.Amount,
			})
		}
	}

	return rows
}
