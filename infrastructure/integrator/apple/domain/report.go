package appledomain

// GranularityDaily é a granularidade de bucket diário dos relatórios
const GranularityDaily = "DAILY"

// SpendAmount é o valor gasto de um bucket do relatório
type SpendAmount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// GranularityBucket é um bucket de métricas por período (ex.: um dia)
type GranularityBucket struct {
	Date          string      `json:"date"`
	Impressions   int64       `json:"impressions"`
	Taps          int64       `json:"taps"`
	TotalInstalls int64       `json:"totalInstalls"`
	LocalSpend    SpendAmount `json:"localSpend"`
}

// ReportMetadata identifica a campanha dona de uma linha do relatório
type ReportMetadata struct {
	CampaignID   int64  `json:"campaignId"`
	CampaignName string `json:"campaignName"`
	AdamID       int64  `json:"adamId"`
}

// ReportResponseRow é uma linha aninhada da resposta de relatório:
// metadados da campanha + um bucket por período da granularidade pedida
type ReportResponseRow struct {
	Metadata    ReportMetadata      `json:"metadata"`
	Granularity []GranularityBucket `json:"granularity"`
}

type ReportingDataResponse struct {
	Row []ReportResponseRow `json:"row"`
}

type ReportData struct {
	ReportingDataResponse ReportingDataResponse `json:"reportingDataResponse"`
}

// ReportRow é a linha achatada produzida pelo cliente: uma por (campanha, período).
// Spend vem de localSpend.amount e Taps é exposto adiante como "clicks".
type ReportRow struct {
	Date         string  `json:"date"`
	CampaignID   int64   `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	AdamID       int64   `json:"adam_id"`
	Impressions  int64   `json:"impressions"`
	Taps         int64   `json:"taps"`
	Installs     int64   `json:"installs"`
	Spend        float64 `json:"spend"`
}
